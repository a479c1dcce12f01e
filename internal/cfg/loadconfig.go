package cfg

import (
	"tubesonic/internal/file"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// loadDefaultsFromConfig loads in variables from a config file.
//
// Values only apply to flags not set on the command line.
func loadDefaultsFromConfig(cmd *cobra.Command, configFile string) error {
	v := viper.New()
	if err := file.LoadConfigFile(v, configFile); err != nil {
		return err
	}

	var errOrNil error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) || errOrNil != nil {
			return
		}

		switch f.Value.Type() {
		case "stringSlice", "stringArray":
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				errOrNil = sv.Replace(v.GetStringSlice(f.Name))
				return
			}
			errOrNil = f.Value.Set(v.GetString(f.Name))
		default:
			errOrNil = f.Value.Set(v.GetString(f.Name))
		}
	})
	return errOrNil
}
