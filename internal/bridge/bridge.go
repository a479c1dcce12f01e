// Package bridge holds the commands exposed to the TubeSonic front-end.
package bridge

import (
	"context"
	"fmt"
	"time"
	"tubesonic/internal/command/builder"
	"tubesonic/internal/command/execute"
	"tubesonic/internal/domain/command"
	"tubesonic/internal/domain/consts"
	"tubesonic/internal/domain/errconsts"
	"tubesonic/internal/domain/logger"
	"tubesonic/internal/models"
	"tubesonic/internal/parsing"

	"github.com/google/uuid"
)

// Bridge runs front-end commands. It holds no per-call state and is safe for concurrent use.
type Bridge struct {
	binary             string
	outputDir          string
	cookiesFromBrowser string
	timeout            time.Duration

	runner execute.Runner
	parser parsing.DestinationParser
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithBinary sets the downloader executable, resolved via PATH if not a path.
func WithBinary(name string) Option {
	return func(b *Bridge) {
		if name != "" {
			b.binary = name
		}
	}
}

// WithOutputDir makes yt-dlp write files into dir.
func WithOutputDir(dir string) Option {
	return func(b *Bridge) { b.outputDir = dir }
}

// WithCookiesFromBrowser makes yt-dlp load cookies from the named browser.
func WithCookiesFromBrowser(browser string) Option {
	return func(b *Bridge) { b.cookiesFromBrowser = browser }
}

// WithTimeout bounds each download. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(b *Bridge) { b.timeout = d }
}

// WithRunner replaces the process runner.
func WithRunner(r execute.Runner) Option {
	return func(b *Bridge) { b.runner = r }
}

// WithParser replaces the destination parser.
func WithParser(p parsing.DestinationParser) Option {
	return func(b *Bridge) { b.parser = p }
}

// New returns a Bridge running yt-dlp from PATH unless configured otherwise.
func New(opts ...Option) *Bridge {
	b := &Bridge{
		binary: command.YTDLP,
		runner: execute.ExecRunner{},
		parser: parsing.NewDestinationParser(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Greet returns a greeting for name.
func (b *Bridge) Greet(name string) string {
	return fmt.Sprintf(consts.GreetTemplate, name)
}

type outcome struct {
	result *models.DownloadResult
	err    error
}

// DownloadVideo downloads url with yt-dlp.
//
// The subprocess runs on its own goroutine. DownloadVideo returns when it exits or when
// ctx is done, in which case the subprocess is killed.
func (b *Bridge) DownloadVideo(ctx context.Context, url, format, quality string) (*models.DownloadResult, error) {
	pl := logger.Pl.With("request", uuid.NewString())
	pl.I("Downloading: %s as %s with quality %s", url, format, quality)

	vb := builder.NewVideoDLCommandBuilder(&models.DownloadRequest{
		URL:     url,
		Format:  format,
		Quality: quality,
	})
	vb.OutputDir = b.outputDir
	vb.CookiesFromBrowser = b.cookiesFromBrowser

	args, err := vb.VideoFetchArgs()
	if err != nil {
		return nil, err
	}

	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if b.timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, b.timeout)
	}
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		res, err := execute.ExecuteVideoDownload(runCtx, b.runner, b.parser, b.binary, args)
		done <- outcome{result: res, err: err}
	}()

	select {
	case o := <-done:
		if o.err != nil {
			if ctxErr := runCtx.Err(); ctxErr != nil {
				return nil, fmt.Errorf(errconsts.DownloadCanceled, url, ctxErr)
			}
			pl.E("%v", o.err)
			return nil, o.err
		}
		if o.result.FilePath != nil {
			pl.S("Downloaded %q to %q", url, *o.result.FilePath)
		} else {
			pl.S("Downloaded %q", url)
		}
		return o.result, nil

	case <-runCtx.Done():
		return nil, fmt.Errorf(errconsts.DownloadCanceled, url, runCtx.Err())
	}
}
