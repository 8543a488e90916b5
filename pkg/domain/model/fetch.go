package model

// FetchResult is the final state of fetching one URL: the response of the
// last attempt. A transport failure on the last attempt is reported as an
// error by the Fetcher instead, so a FetchResult always carries a status
// code.
type FetchResult struct {
	StatusCode int
	Body       []byte
	Attempts   int
}
