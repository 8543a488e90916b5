package usecase_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/bulkget/pkg/usecase"
)

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()

	name, size, err := usecase.SaveFile(dir, "http://example.com/images/photo.jpg", []byte("jpeg-bytes"))

	gt.NoError(t, err)
	gt.Value(t, name).Equal("photo.jpg")
	gt.Value(t, size).Equal(int64(len("jpeg-bytes")))

	content, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
	gt.NoError(t, err)
	gt.Value(t, string(content)).Equal("jpeg-bytes")
}

func TestSaveFileOverwrites(t *testing.T) {
	dir := t.TempDir()

	_, _, err := usecase.SaveFile(dir, "http://a.example.com/file.bin", []byte("first version, longer"))
	gt.NoError(t, err)

	// Same derived filename from a different URL: last write wins.
	_, _, err = usecase.SaveFile(dir, "http://b.example.com/file.bin", []byte("second"))
	gt.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "file.bin"))
	gt.NoError(t, err)
	gt.Value(t, string(content)).Equal("second")
}

func TestSaveFileNoFilenameSegment(t *testing.T) {
	dir := t.TempDir()

	_, _, err := usecase.SaveFile(dir, "http://example.com/images/", []byte("x"))
	gt.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	gt.NoError(t, readErr)
	gt.Value(t, len(entries)).Equal(0)
}

func TestSaveFileUnwritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	_, _, err := usecase.SaveFile(dir, "http://example.com/file.bin", []byte("x"))
	gt.Error(t, err)
}
