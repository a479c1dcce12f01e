// Package file contains utilities related to file operations (e.g. reading files).
package file

import (
	"fmt"
	"path/filepath"
	"strings"
	"tubesonic/internal/domain/errconsts"
	"tubesonic/internal/domain/logger"
	"tubesonic/internal/validation"

	"github.com/spf13/viper"
)

// Viper supported extensions
var validConfigExts = map[string]bool{
	".yaml":       true,
	".yml":        true,
	".toml":       true,
	".json":       true,
	".hcl":        true,
	".properties": true,
	".props":      true,
	".prop":       true,
	".ini":        true,
	".env":        true,
}

// LoadConfigFile loads the configuration file into v.
func LoadConfigFile(v *viper.Viper, file string) error {
	if _, err := validation.ValidateFile(file); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(file))
	if !validConfigExts[ext] {
		return fmt.Errorf(errconsts.ConfigFileLoadFail, file, fmt.Errorf("unsupported extension %q", ext))
	}

	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf(errconsts.ConfigFileLoadFail, file, err)
	}
	logger.Pl.D(1, "Loaded config file %q", file)
	return nil
}
