package cli

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/bulkget/pkg/cli/config"
	"github.com/m-mizutani/bulkget/pkg/domain/model"
	"github.com/m-mizutani/bulkget/pkg/infra/httpc"
	"github.com/m-mizutani/bulkget/pkg/usecase"
)

func cmdGet() *cli.Command {
	var dlCfg config.Download

	return &cli.Command{
		Name:    "get",
		Aliases: []string{"g"},
		Usage:   "Download every URL listed in a text file into a directory",
		Flags:   dlCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := dlCfg.Validate(); err != nil {
				return err
			}

			urls, err := readURLList(dlCfg.Input)
			if err != nil {
				return err
			}

			policy := dlCfg.Policy()
			job := model.NewDownloadJob(urls, policy, dlCfg.Dir, dlCfg.Concurrency)

			logger.Info("starting download batch",
				"job_id", job.ID,
				"urls", len(job.URLs),
				"dir", job.Dir,
				"concurrency", job.Concurrency,
				"max_attempts", policy.MaxAttempts,
				"backoff", policy.Backoff,
			)

			// SIGINT/SIGTERM switches the batch into drain mode: queued
			// URLs are dropped, in-flight downloads finish.
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			dl := usecase.NewDownload(httpc.New(policy))
			printer := newProgressPrinter(os.Stdout)

			start := time.Now()
			var succeeded, failed int
			var totalBytes int64

			for outcome := range dl.Run(ctx, job) {
				printer.Mark(outcome)

				if outcome.OK() {
					succeeded++
					totalBytes += outcome.Bytes
					continue
				}

				failed++
				logger.Error("download failed",
					"url", outcome.URL,
					"reason", outcome.Reason(),
				)
			}
			printer.Finish()

			logger.Info("download batch finished",
				"job_id", job.ID,
				"succeeded", succeeded,
				"failed", failed,
				"skipped", len(job.URLs)-succeeded-failed,
				"bytes", totalBytes,
				"duration", time.Since(start),
			)

			return nil
		},
	}
}

// readURLList reads a newline-delimited URL list. Lines are passed through
// untouched; validation happens per task so every line still yields an
// Outcome.
func readURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open input file", goerr.V("path", path))
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		urls = append(urls, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read input file", goerr.V("path", path))
	}

	return urls, nil
}
