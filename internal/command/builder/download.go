// Package builder builds yt-dlp argument lists.
package builder

import (
	"errors"
	"tubesonic/internal/domain/command"
	"tubesonic/internal/domain/consts"
	"tubesonic/internal/domain/errconsts"
	"tubesonic/internal/domain/logger"
	"tubesonic/internal/models"
)

// qualitySelectors maps a requested video quality to its yt-dlp format selector.
var qualitySelectors = map[string]string{
	consts.Quality1080p: command.Selector1080,
	consts.Quality720p:  command.Selector720,
	consts.Quality480p:  command.Selector480,
	consts.Quality360p:  command.Selector360,
}

// VideoDLCommandBuilder builds the yt-dlp arguments for a download request.
type VideoDLCommandBuilder struct {
	Request *models.DownloadRequest

	// Optional, omitted from the arguments when empty.
	OutputDir          string
	CookiesFromBrowser string
}

// NewVideoDLCommandBuilder returns a builder for the request.
func NewVideoDLCommandBuilder(r *models.DownloadRequest) *VideoDLCommandBuilder {
	return &VideoDLCommandBuilder{
		Request: r,
	}
}

// VideoFetchArgs builds the argument list for yt-dlp.
//
// The URL is always the last argument and is passed through unvalidated.
func (vb *VideoDLCommandBuilder) VideoFetchArgs() ([]string, error) {
	if vb.Request == nil {
		return nil, errors.New(errconsts.NilRequest)
	}
	r := vb.Request

	args := make([]string, 0, 8)
	args = append(args, command.NoPlaylist)

	if r.Format == consts.FormatAudio {
		// Quality does not apply to audio extraction.
		args = append(args, command.ExtractAudio, command.AudioFormat, command.AudioMP3)
	} else if r.Quality != consts.QualityHighest {
		args = append(args, command.FormatSelect, FormatSelector(r.Quality))
	}

	if vb.OutputDir != "" {
		args = append(args, command.P, vb.OutputDir)
	}
	if vb.CookiesFromBrowser != "" {
		args = append(args, command.CookiesFromBrowser, vb.CookiesFromBrowser)
	}

	args = append(args, r.URL)

	logger.Pl.D(1, "Built argument list: %v", args)
	return args, nil
}

// FormatSelector returns the yt-dlp format selector for a video quality.
//
// Unrecognized qualities select "best". Callers skip the selector entirely for "highest".
func FormatSelector(quality string) string {
	if sel, ok := qualitySelectors[quality]; ok {
		return sel
	}
	return command.FormatBest
}
