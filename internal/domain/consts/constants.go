// Package consts holds various global, unchanging values.
package consts

// Formats
const (
	FormatAudio = "audio"
	FormatVideo = "video"
)

// Qualities
const (
	QualityHighest = "highest"
	Quality1080p   = "1080p"
	Quality720p    = "720p"
	Quality480p    = "480p"
	Quality360p    = "360p"
	QualityBest    = "best"
)

// Formats lists the format values the front-end offers.
var Formats = [...]string{FormatVideo, FormatAudio}

// Qualities lists the quality values the front-end offers, highest first.
var Qualities = [...]string{QualityHighest, Quality1080p, Quality720p, Quality480p, Quality360p}

// yt-dlp output
const (
	DestinationMarker = "Destination:"
)

// Bridge messages
const (
	GreetTemplate      = "Hello, %s! You've been greeted from Go!"
	DownloadSuccessMsg = "Download completed successfully"
)

// Browsers yt-dlp can read cookies from.
var CookieBrowsers = map[string]struct{}{
	"brave":    {},
	"chrome":   {},
	"chromium": {},
	"edge":     {},
	"firefox":  {},
	"opera":    {},
	"safari":   {},
	"vivaldi":  {},
	"whale":    {},
}
