// Package cfg provides configuration and command-line interface setup for TubeSonic.
package cfg

import (
	"context"
	"strings"
	"tubesonic/internal/bridge"
	"tubesonic/internal/domain/keys"
	"tubesonic/internal/domain/logger"
	"tubesonic/internal/validation"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the command tree with all flags bound to Viper.
func NewRootCmd() (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:           keys.ProgramName,
		Short:         "TubeSonic downloads videos and audio with yt-dlp.",
		Long:          "TubeSonic exposes the greet and download commands used by the TubeSonic front-end.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile := viper.GetString(keys.ConfigFile); configFile != "" {
				if err := loadDefaultsFromConfig(cmd, configFile); err != nil {
					return err
				}
			}
			logger.Pl.SetLevel(viper.GetInt(keys.DebugLevel))
			return nil
		},
	}

	viper.SetEnvPrefix(keys.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // Convert "output-dir" to "TUBESONIC_OUTPUT_DIR"
	viper.AutomaticEnv()

	if err := initProgramFlags(rootCmd); err != nil {
		return nil, err
	}
	if err := initDownloadFlags(rootCmd); err != nil {
		return nil, err
	}

	rootCmd.AddCommand(greetCmd())
	rootCmd.AddCommand(downloadCmd())
	rootCmd.AddCommand(formatsCmd())

	return rootCmd, nil
}

// Execute builds and runs the command tree.
func Execute(ctx context.Context, args []string) error {
	rootCmd, err := NewRootCmd()
	if err != nil {
		return err
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// newBridge validates download flags and returns a bridge configured from Viper.
func newBridge() (*bridge.Bridge, error) {
	cookieSrc, err := validation.ValidateCookieSource(viper.GetString(keys.CookiesFromBrowser))
	if err != nil {
		return nil, err
	}

	outDir := viper.GetString(keys.OutputDir)
	if outDir != "" {
		if _, err := validation.ValidateDirectory(outDir, true); err != nil {
			return nil, err
		}
	}

	return bridge.New(
		bridge.WithBinary(viper.GetString(keys.YtdlpPath)),
		bridge.WithOutputDir(outDir),
		bridge.WithCookiesFromBrowser(cookieSrc),
		bridge.WithTimeout(viper.GetDuration(keys.Timeout)),
	), nil
}
