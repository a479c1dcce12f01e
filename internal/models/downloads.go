// Package models holds the data passed between the bridge and the front-end.
package models

// DownloadRequest holds the inputs of a single download bridge call.
type DownloadRequest struct {
	URL     string `json:"url"`
	Format  string `json:"format"`
	Quality string `json:"quality"`
}

// DownloadResult is returned to the front-end once a download completes.
//
// FilePath is nil when yt-dlp did not announce a destination.
type DownloadResult struct {
	Success  bool    `json:"success"`
	Message  string  `json:"message"`
	FilePath *string `json:"file_path"`
}

// Path returns the destination path, or an empty string if none was found.
func (r *DownloadResult) Path() string {
	if r == nil || r.FilePath == nil {
		return ""
	}
	return *r.FilePath
}
