package model

import "fmt"

// OutcomeKind classifies how the processing of one URL ended
type OutcomeKind string

const (
	// OutcomeSuccess means the response body was written to disk
	OutcomeSuccess OutcomeKind = "success"

	// OutcomeInvalidURL means the input line failed validation and no
	// network attempt was made
	OutcomeInvalidURL OutcomeKind = "invalid_url"

	// OutcomeConnectionError means every attempt failed at the transport
	// level
	OutcomeConnectionError OutcomeKind = "connection_error"

	// OutcomeTerminalHTTPError means the server answered with a status code
	// that is never retried (403, 404)
	OutcomeTerminalHTTPError OutcomeKind = "terminal_http_error"

	// OutcomeRetriesExhausted means every attempt ended with a retryable
	// status code and the attempt budget ran out
	OutcomeRetriesExhausted OutcomeKind = "retries_exhausted"

	// OutcomeWriteError means the download succeeded but the body could not
	// be written to the destination directory
	OutcomeWriteError OutcomeKind = "write_error"
)

// Outcome is the terminal result of processing one input URL. Exactly one
// Outcome is produced per URL in a DownloadJob.
type Outcome struct {
	URL        string
	Kind       OutcomeKind
	Filename   string // set for OutcomeSuccess
	Bytes      int64  // bytes written, set for OutcomeSuccess
	StatusCode int    // set for the HTTP error kinds
	Err        error  // set for connection and write errors
}

// OK reports whether the URL was downloaded and written successfully
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// Reason returns a short human-readable description of a failure, suitable
// for the per-URL error log line
func (o Outcome) Reason() string {
	switch o.Kind {
	case OutcomeSuccess:
		return "ok"
	case OutcomeInvalidURL:
		return "not a valid URL"
	case OutcomeConnectionError:
		return fmt.Sprintf("connection error: %v", o.Err)
	case OutcomeTerminalHTTPError:
		return fmt.Sprintf("terminal HTTP status %d", o.StatusCode)
	case OutcomeRetriesExhausted:
		return fmt.Sprintf("retries exhausted with HTTP status %d", o.StatusCode)
	case OutcomeWriteError:
		return fmt.Sprintf("write failed: %v", o.Err)
	default:
		return string(o.Kind)
	}
}
