package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/bulkget/pkg/domain/model"
)

func TestValidURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "http URL",
			input: "http://example.com/file.png",
			want:  true,
		},
		{
			name:  "https URL",
			input: "https://example.com/a/b/c.tar.gz",
			want:  true,
		},
		{
			name:  "https URL with port and query",
			input: "https://example.com:8443/file.bin?version=2",
			want:  true,
		},
		{
			name:  "empty string",
			input: "",
			want:  false,
		},
		{
			name:  "plain text",
			input: "not a url",
			want:  false,
		},
		{
			name:  "missing scheme",
			input: "example.com/file.png",
			want:  false,
		},
		{
			name:  "missing host",
			input: "http:///file.png",
			want:  false,
		},
		{
			name:  "unsupported scheme",
			input: "ftp://example.com/file.png",
			want:  false,
		},
		{
			name:  "relative path",
			input: "/just/a/path.png",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, model.ValidURL(tt.input)).Equal(tt.want)
		})
	}
}
