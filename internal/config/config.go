package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/geodrop/geodrop/pkg/core"
)

// Load reads configuration from an optional JSON file and sets default
// values. configDir is the directory searched for geodrop.cfg.json; a
// missing file leaves the defaults in place.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("parse.format", "auto")
	viper.SetDefault("parse.unescapePolylines", true)
	viper.SetDefault("parse.sourceEPSG", 4326)

	viper.SetDefault("clip.progress", 100.0)

	viper.SetConfigName("geodrop.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// ParseOptions builds the parser options from the loaded configuration.
func ParseOptions() core.ParseOptions {
	unescape := viper.GetBool("parse.unescapePolylines")
	return core.ParseOptions{
		UnescapePolylines: &unescape,
		SourceEPSG:        viper.GetInt("parse.sourceEPSG"),
	}
}

// Format returns the configured input format.
func Format() core.Format {
	return core.Format(viper.GetString("parse.format"))
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetFloat64 returns a float config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}
