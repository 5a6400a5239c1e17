package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/Streamlines-UNH/tide-maker/place"
)

// Load builds a place.Options from defaults, optionally overridden by the
// config file at path (any format viper supports: YAML, JSON, TOML) and by
// STREAMLINE_-prefixed environment variables. An empty path skips the file
// and relies on defaults plus environment.
func Load(path string) (place.Options, error) {
	defaults := place.DefaultOptions()

	v := viper.New()
	v.SetEnvPrefix("STREAMLINE")
	v.AutomaticEnv()

	v.SetDefault("separationFactor", defaults.SeparationFactor)
	v.SetDefault("testFactor", defaults.TestFactor)
	v.SetDefault("iSteps", defaults.ISteps)
	v.SetDefault("dSepMaxFactor", defaults.DSepMaxFactor)
	v.SetDefault("minMag", defaults.MinMag)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return place.Options{}, errors.Wrapf(err, "config: reading %s", path)
		}
	}

	opts := place.Options{
		SeparationFactor: v.GetFloat64("separationFactor"),
		TestFactor:       v.GetFloat64("testFactor"),
		ISteps:           v.GetInt("iSteps"),
		DSepMaxFactor:    v.GetFloat64("dSepMaxFactor"),
		MinMag:           v.GetFloat64("minMag"),
	}
	return opts, nil
}
