package model

import "github.com/google/uuid"

// DefaultConcurrency bounds the number of simultaneously active download
// tasks when the caller does not specify one.
const DefaultConcurrency = 100

// DownloadJob describes one batch run: the URL list in input order, the
// shared retry policy, the destination directory and the concurrency bound.
// A job is executed once and holds no state that survives the run.
type DownloadJob struct {
	ID          uuid.UUID
	URLs        []string
	Policy      RetryPolicy
	Dir         string
	Concurrency int
}

// NewDownloadJob creates a job with a fresh ID. Duplicate URLs are kept and
// processed independently. A non-positive concurrency falls back to
// DefaultConcurrency.
func NewDownloadJob(urls []string, policy RetryPolicy, dir string, concurrency int) *DownloadJob {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &DownloadJob{
		ID:          uuid.New(),
		URLs:        urls,
		Policy:      policy,
		Dir:         dir,
		Concurrency: concurrency,
	}
}
