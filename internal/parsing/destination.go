package parsing

import (
	"strings"
	"tubesonic/internal/domain/consts"
)

// DestinationParser recovers the output file path from yt-dlp's standard output.
type DestinationParser interface {
	ParseDestination(stdout string) (path string, found bool)
}

// MarkerParser finds the path following a fixed marker, e.g. "Destination:".
type MarkerParser struct {
	Marker string
}

// NewDestinationParser returns the parser for yt-dlp's "Destination:" lines.
func NewDestinationParser() *MarkerParser {
	return &MarkerParser{Marker: consts.DestinationMarker}
}

// ParseDestination returns the trimmed remainder of the first line following the first marker.
//
// A present marker followed by nothing yields an empty path with found set to true.
func (p *MarkerParser) ParseDestination(stdout string) (path string, found bool) {
	_, after, ok := strings.Cut(stdout, p.Marker)
	if !ok {
		return "", false
	}
	line, _, _ := strings.Cut(after, "\n")
	return strings.TrimSpace(line), true
}

// ParseDestination parses stdout with the default "Destination:" parser.
func ParseDestination(stdout string) (string, bool) {
	return NewDestinationParser().ParseDestination(stdout)
}
