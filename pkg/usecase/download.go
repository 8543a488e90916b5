package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"golang.org/x/sync/semaphore"

	"github.com/m-mizutani/bulkget/pkg/domain/interfaces"
	"github.com/m-mizutani/bulkget/pkg/domain/model"
	"github.com/m-mizutani/bulkget/pkg/utils/async"
)

type downloadUseCase struct {
	fetcher interfaces.Fetcher
}

// NewDownload creates a new instance of DownloadUseCase
func NewDownload(fetcher interfaces.Fetcher) interfaces.DownloadUseCase {
	return &downloadUseCase{
		fetcher: fetcher,
	}
}

// Run fans the job's URLs out over a bounded worker pool and streams one
// Outcome per URL over the returned channel. Admission is bounded by a
// weighted semaphore; cancelling ctx switches the batch into drain mode:
// no new task starts, tasks already in flight finish on a detached context
// and their Outcomes are still delivered before the channel closes.
func (uc *downloadUseCase) Run(ctx context.Context, job *model.DownloadJob) <-chan model.Outcome {
	out := make(chan model.Outcome)

	async.Dispatch(ctx, func(ctx context.Context) error {
		defer close(out)

		logger := ctxlog.From(ctx)

		concurrency := job.Concurrency
		if concurrency <= 0 {
			concurrency = model.DefaultConcurrency
		}
		sem := semaphore.NewWeighted(int64(concurrency))

		// In-flight tasks must not be aborted by batch cancellation.
		taskCtx := async.Detach(ctx)

		var wg sync.WaitGroup
		for _, rawURL := range job.URLs {
			if err := sem.Acquire(ctx, 1); err != nil {
				break
			}
			if ctx.Err() != nil {
				// A slot freed up after cancellation; do not admit.
				sem.Release(1)
				break
			}

			wg.Add(1)
			go func(rawURL string) {
				defer wg.Done()
				defer sem.Release(1)

				out <- uc.process(taskCtx, job, rawURL)
			}(rawURL)
		}

		if ctx.Err() != nil {
			logger.Info("stopping admission of new downloads, draining in-flight tasks",
				"job_id", job.ID,
			)
		}

		wg.Wait()
		return nil
	})

	return out
}

// process runs the full pipeline for one URL: validate, fetch, classify,
// write. It always returns an Outcome, never panics or drops a URL.
func (uc *downloadUseCase) process(ctx context.Context, job *model.DownloadJob, rawURL string) model.Outcome {
	if !model.ValidURL(rawURL) {
		return model.Outcome{URL: rawURL, Kind: model.OutcomeInvalidURL}
	}

	result, err := uc.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return model.Outcome{URL: rawURL, Kind: model.OutcomeConnectionError, Err: err}
	}

	return uc.classify(job, rawURL, result)
}

// classify maps the final fetch attempt to an Outcome. Bodies of non-error
// responses are handed to the file writer; its result decides between
// success and write failure.
func (uc *downloadUseCase) classify(job *model.DownloadJob, rawURL string, result *model.FetchResult) model.Outcome {
	switch {
	case model.Terminal(result.StatusCode):
		return model.Outcome{
			URL:        rawURL,
			Kind:       model.OutcomeTerminalHTTPError,
			StatusCode: result.StatusCode,
		}

	case result.StatusCode >= 400:
		return model.Outcome{
			URL:        rawURL,
			Kind:       model.OutcomeRetriesExhausted,
			StatusCode: result.StatusCode,
		}
	}

	filename, size, err := SaveFile(job.Dir, rawURL, result.Body)
	if err != nil {
		return model.Outcome{URL: rawURL, Kind: model.OutcomeWriteError, Err: err}
	}

	return model.Outcome{
		URL:        rawURL,
		Kind:       model.OutcomeSuccess,
		Filename:   filename,
		Bytes:      size,
		StatusCode: result.StatusCode,
	}
}
