package model

import "net/url"

// ValidURL reports whether s is an absolute http or https URL with a
// non-empty host. Anything else is rejected before any network resource is
// spent on it.
func ValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
