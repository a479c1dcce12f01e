// Package execute runs yt-dlp and maps its outcome to a download result.
package execute

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"tubesonic/internal/domain/consts"
	"tubesonic/internal/domain/logger"
	"tubesonic/internal/models"
	"tubesonic/internal/parsing"
)

// ExecuteVideoDownload runs the downloader binary with args and blocks until it exits.
//
// On success the destination path is parsed from stdout. A missing destination is not an error.
func ExecuteVideoDownload(ctx context.Context, r Runner, p parsing.DestinationParser, binary string, args []string) (*models.DownloadResult, error) {
	if r == nil {
		r = ExecRunner{}
	}
	if p == nil {
		p = parsing.NewDestinationParser()
	}

	logger.Pl.D(1, "Executing download command: %s %s", binary, strings.Join(args, " "))

	stdout, stderr, err := r.Run(ctx, binary, args)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &DownloadError{
				Kind:   KindExit,
				Stderr: lossyString(stderr),
				Err:    exitErr,
			}
		}
		return nil, &DownloadError{
			Kind: KindSpawn,
			Err:  err,
		}
	}

	result := &models.DownloadResult{
		Success: true,
		Message: consts.DownloadSuccessMsg,
	}

	if path, found := p.ParseDestination(lossyString(stdout)); found {
		result.FilePath = &path
		logger.Pl.D(2, "Parsed destination %q from yt-dlp output", path)
	} else {
		logger.Pl.D(2, "No destination found in yt-dlp output")
	}
	return result, nil
}

// lossyString decodes b as UTF-8, replacing invalid sequences with U+FFFD.
func lossyString(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}
