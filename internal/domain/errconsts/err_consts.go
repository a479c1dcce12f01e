// Package errconsts holds constant error messages
package errconsts

// Programs
const (
	YTDLPExecuteFailure  = "Failed to execute yt-dlp: %v"
	YTDLPDownloadFailure = "Download failed: %s"
)

// Bridge
const (
	DownloadCanceled = "download of %q canceled: %w"
	NilRequest       = "download request is nil"
)

// File
const (
	ConfigFileLoadFail = "failed to load config file %q: %w"
	ConfigFileIsDir    = "config file %q is a directory, should be a file"
	InvalidCookieSrc   = "invalid cookie source %q, yt-dlp supports: %s"
)
