// Package keys holds various keys for software operations, such as terminal input keys and internal Viper keys.
package keys

// Program.
const (
	ConfigFile  string = "config-file"
	DebugLevel  string = "debug"
	YtdlpPath   string = "ytdlp-path"
	Timeout     string = "timeout"
	EnvPrefix   string = "TUBESONIC"
	ProgramName string = "tubesonic"
)

// Download behavior.
const (
	OutputDir          string = "output-dir"
	CookiesFromBrowser string = "cookies-from-browser"
)

// Bridge command inputs.
const (
	Format  string = "format"
	Quality string = "quality"
)
