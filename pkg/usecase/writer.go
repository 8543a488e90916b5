package usecase

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// SaveFile writes body into dir under a name derived from the URL: the text
// after the last '/'. An existing file of the same name is overwritten
// without warning; URLs sharing a final path segment are last-write-wins.
// Returns the derived filename and the number of bytes written.
func SaveFile(dir, rawURL string, body []byte) (string, int64, error) {
	name := rawURL[strings.LastIndexByte(rawURL, '/')+1:]
	if name == "" {
		return "", 0, goerr.New("URL has no filename segment", goerr.V("url", rawURL))
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", 0, goerr.Wrap(err, "failed to create file", goerr.V("path", path))
	}

	n, err := f.Write(body)
	if err != nil {
		f.Close()
		return "", 0, goerr.Wrap(err, "failed to write file", goerr.V("path", path))
	}

	if err := f.Close(); err != nil {
		return "", 0, goerr.Wrap(err, "failed to close file", goerr.V("path", path))
	}

	return name, int64(n), nil
}
