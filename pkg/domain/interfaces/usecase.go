package interfaces

import (
	"context"

	"github.com/m-mizutani/bulkget/pkg/domain/model"
)

// DownloadUseCase defines the download batch engine
type DownloadUseCase interface {
	// Run executes the job with a bounded worker pool and streams one
	// Outcome per input URL over the returned channel, in completion order.
	// The channel is closed when the batch is done. Cancelling ctx stops
	// admission of new tasks; tasks already in flight finish naturally.
	Run(ctx context.Context, job *model.DownloadJob) <-chan model.Outcome
}
