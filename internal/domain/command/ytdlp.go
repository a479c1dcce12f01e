// Package command holds yt-dlp command-line tokens.
package command

// General
const (
	YTDLP              = "yt-dlp"
	NoPlaylist         = "--no-playlist"
	P                  = "-P"
	CookiesFromBrowser = "--cookies-from-browser"
)

// Audio
const (
	ExtractAudio = "-x"
	AudioFormat  = "--audio-format"
	AudioMP3     = "mp3"
)

// Video
const (
	FormatSelect = "-f"
	FormatBest   = "best"
)

// Height-bounded format selectors, keyed by requested quality.
const (
	Selector1080 = "bestvideo[height<=1080]+bestaudio/best[height<=1080]"
	Selector720  = "bestvideo[height<=720]+bestaudio/best[height<=720]"
	Selector480  = "bestvideo[height<=480]+bestaudio/best[height<=480]"
	Selector360  = "bestvideo[height<=360]+bestaudio/best[height<=360]"
)
