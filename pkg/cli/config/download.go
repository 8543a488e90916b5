package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/bulkget/pkg/domain/model"
)

// Download holds the configuration of one download batch. It is validated
// once by the CLI layer; the engine receives only already-checked values.
type Download struct {
	Input       string
	Dir         string
	Concurrency int
	Retries     int
	Backoff     time.Duration
}

// Flags returns CLI flags for download configuration
func (c *Download) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Text file containing URLs to download, one per line",
			Required:    true,
			Destination: &c.Input,
			Sources:     cli.EnvVars("BULKGET_INPUT"),
		},
		&cli.StringFlag{
			Name:        "dir",
			Aliases:     []string{"d"},
			Usage:       "Destination directory for downloaded files",
			Required:    true,
			Destination: &c.Dir,
			Sources:     cli.EnvVars("BULKGET_DIR"),
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Aliases:     []string{"c"},
			Usage:       "Maximum number of concurrent downloads",
			Value:       model.DefaultConcurrency,
			Destination: &c.Concurrency,
			Sources:     cli.EnvVars("BULKGET_CONCURRENCY"),
		},
		&cli.IntFlag{
			Name:        "retries",
			Usage:       "Total attempts per URL, including the first one",
			Value:       model.DefaultMaxAttempts,
			Destination: &c.Retries,
			Sources:     cli.EnvVars("BULKGET_RETRIES"),
		},
		&cli.DurationFlag{
			Name:        "backoff",
			Usage:       "Base delay between retry attempts, doubled per attempt",
			Value:       model.DefaultBackoff,
			Destination: &c.Backoff,
			Sources:     cli.EnvVars("BULKGET_BACKOFF"),
		},
	}
}

// Validate checks the configuration before any task is scheduled. A failure
// here aborts the whole run.
func (c *Download) Validate() error {
	if _, err := os.Stat(c.Input); err != nil {
		return goerr.Wrap(err, "input file is not accessible", goerr.V("path", c.Input))
	}

	info, err := os.Stat(c.Dir)
	if err != nil {
		return goerr.Wrap(err, "destination directory is not accessible", goerr.V("path", c.Dir))
	}
	if !info.IsDir() {
		return goerr.New("destination is not a directory", goerr.V("path", c.Dir))
	}

	if c.Retries < 1 {
		return goerr.New("retries must be at least 1", goerr.V("retries", c.Retries))
	}
	if c.Backoff < 0 {
		return goerr.New("backoff must not be negative", goerr.V("backoff", c.Backoff))
	}

	return nil
}

// Policy builds the retry policy shared by all workers of the batch
func (c *Download) Policy() model.RetryPolicy {
	return model.NewRetryPolicy(c.Retries, c.Backoff, model.RetryableStatusCodes())
}
