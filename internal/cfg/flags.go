package cfg

import (
	"tubesonic/internal/domain/command"
	"tubesonic/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initProgramFlags initializes user flag settings related to the core program. E.g. logging level.
func initProgramFlags(rootCmd *cobra.Command) error {
	// Config file
	rootCmd.PersistentFlags().String(keys.ConfigFile, "", "Config file supplying defaults for unset flags (yaml, toml, json, ...)")
	if err := viper.BindPFlag(keys.ConfigFile, rootCmd.PersistentFlags().Lookup(keys.ConfigFile)); err != nil {
		return err
	}

	// Debug level
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debugging level (0 - 5)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}
	return nil
}

// initDownloadFlags initializes user flag settings for yt-dlp invocations.
func initDownloadFlags(rootCmd *cobra.Command) error {
	// yt-dlp executable
	rootCmd.PersistentFlags().String(keys.YtdlpPath, command.YTDLP, "yt-dlp executable name or path")
	if err := viper.BindPFlag(keys.YtdlpPath, rootCmd.PersistentFlags().Lookup(keys.YtdlpPath)); err != nil {
		return err
	}

	// Output directory
	rootCmd.PersistentFlags().StringP(keys.OutputDir, "o", "", "Directory yt-dlp writes downloads into (default: yt-dlp's working directory)")
	if err := viper.BindPFlag(keys.OutputDir, rootCmd.PersistentFlags().Lookup(keys.OutputDir)); err != nil {
		return err
	}

	// Cookies
	rootCmd.PersistentFlags().String(keys.CookiesFromBrowser, "", "Browser yt-dlp loads cookies from (e.g. 'firefox')")
	if err := viper.BindPFlag(keys.CookiesFromBrowser, rootCmd.PersistentFlags().Lookup(keys.CookiesFromBrowser)); err != nil {
		return err
	}

	// Timeout
	rootCmd.PersistentFlags().Duration(keys.Timeout, 0, "Kill yt-dlp after this long (e.g. 30m, 0 disables)")
	if err := viper.BindPFlag(keys.Timeout, rootCmd.PersistentFlags().Lookup(keys.Timeout)); err != nil {
		return err
	}
	return nil
}
