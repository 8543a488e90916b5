package interfaces

import (
	"context"

	"github.com/m-mizutani/bulkget/pkg/domain/model"
)

// Fetcher performs the network side of a download task. Implementations
// apply the retry policy internally; callers see only the final attempt.
type Fetcher interface {
	// Fetch issues a GET request for url, retrying transport failures and
	// retryable status codes up to the policy budget. It returns the final
	// response, or an error if the last attempt failed at the transport
	// level.
	Fetch(ctx context.Context, url string) (*model.FetchResult, error)
}
