package parsing

import "testing"

// TestParseDestination checks file path recovery from yt-dlp output.
func TestParseDestination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		stdout    string
		wantPath  string
		wantFound bool
	}{
		{
			name:      "simple",
			stdout:    "Destination: /tmp/video.mp4\n",
			wantPath:  "/tmp/video.mp4",
			wantFound: true,
		},
		{
			name: "yt-dlp download log",
			stdout: "[youtube] Extracting URL: https://www.youtube.com/watch?v=abc\n" +
				"[info] abc: Downloading 1 format(s): 22\n" +
				"[download] Destination: /home/me/Some Video [abc].mp4\n" +
				"[download] 100% of   10.00MiB in 00:00:01\n",
			wantPath:  "/home/me/Some Video [abc].mp4",
			wantFound: true,
		},
		{
			name: "first occurrence wins",
			stdout: "[download] Destination: /tmp/a.f137.mp4\n" +
				"[download] Destination: /tmp/a.f140.m4a\n",
			wantPath:  "/tmp/a.f137.mp4",
			wantFound: true,
		},
		{
			name:      "crlf and padding",
			stdout:    "[ExtractAudio] Destination:   C:\\Music\\song.mp3  \r\nDeleting original file\r\n",
			wantPath:  `C:\Music\song.mp3`,
			wantFound: true,
		},
		{
			name:      "no trailing newline",
			stdout:    "Destination: /tmp/x.webm",
			wantPath:  "/tmp/x.webm",
			wantFound: true,
		},
		{
			name:      "marker without path",
			stdout:    "Destination:\nmore",
			wantPath:  "",
			wantFound: true,
		},
		{
			name:      "absent",
			stdout:    "[download] abc has already been downloaded\n",
			wantFound: false,
		},
		{
			name:      "empty",
			stdout:    "",
			wantFound: false,
		},
		{
			name:      "case sensitive",
			stdout:    "destination: /tmp/video.mp4\n",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotPath, gotFound := ParseDestination(tt.stdout)
			if gotFound != tt.wantFound {
				t.Fatalf("expected found=%v, got %v", tt.wantFound, gotFound)
			}
			if gotPath != tt.wantPath {
				t.Fatalf("expected path %q, got %q", tt.wantPath, gotPath)
			}
		})
	}
}

// TestMarkerParser_CustomMarker checks the parser follows its configured marker.
func TestMarkerParser_CustomMarker(t *testing.T) {
	t.Parallel()

	p := &MarkerParser{Marker: "after_move:"}
	path, found := p.ParseDestination("Destination: /tmp/ignored.mp4\nafter_move: /tmp/final.mkv\n")
	if !found || path != "/tmp/final.mkv" {
		t.Fatalf("expected /tmp/final.mkv, got %q (found=%v)", path, found)
	}
}
