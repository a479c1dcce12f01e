package execute

import (
	"fmt"
	"tubesonic/internal/domain/errconsts"
)

// ErrKind classifies a failed download.
type ErrKind int

const (
	// KindSpawn means yt-dlp could not be started.
	KindSpawn ErrKind = iota + 1
	// KindExit means yt-dlp ran and exited unsuccessfully.
	KindExit
)

// DownloadError is returned when a download fails.
type DownloadError struct {
	Kind   ErrKind
	Stderr string
	Err    error
}

// Error returns the message shown to the front-end.
func (e *DownloadError) Error() string {
	if e.Kind == KindExit {
		return fmt.Sprintf(errconsts.YTDLPDownloadFailure, e.Stderr)
	}
	return fmt.Sprintf(errconsts.YTDLPExecuteFailure, e.Err)
}

// Unwrap returns the underlying process error.
func (e *DownloadError) Unwrap() error {
	return e.Err
}
