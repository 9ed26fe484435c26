package main

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hyp3rd/ewrap"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vdobler/dotplot"
)

// Config is the complete configuration of the dotplot command. It is
// read from (in increasing priority) defaults, a config file, DOTPLOT_*
// environment variables and command line flags.
type Config struct {
	dotplot.Options `mapstructure:",squash"`

	Color string `mapstructure:"color" validate:"required"`
	Shape string `mapstructure:"shape" validate:"oneof=circle ring square box triangle pyramid plus cross"`

	Separator string `mapstructure:"separator" validate:"len=1"`
	Summary   bool   `mapstructure:"summary"`

	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=console json"`
}

// flagKeys maps config keys to flag names.
var flagKeys = map[string]string{
	"num_stacks": "num-stacks",
	"keys":       "keys",
	"rotation":   "rotation",
	"title":      "title",
	"xlabel":     "xlabel",
	"ylabel":     "ylabel",
	"filename":   "output",
	"show":       "show",
	"color":      "color",
	"shape":      "shape",
	"separator":  "separator",
	"summary":    "summary",
	"log_level":  "log-level",
	"log_format": "log-format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("num_stacks", dotplot.DefaultNumStacks)
	v.SetDefault("filename", dotplot.DefaultFilename)
	v.SetDefault("color", dotplot.DefaultTheme.Color)
	v.SetDefault("shape", dotplot.DefaultTheme.Shape)
	v.SetDefault("separator", ",")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

// loadConfig builds the configuration for cmd whose flags have already
// been parsed.
func loadConfig(cmd *cobra.Command) (Config, error) {
	var cfg Config
	flags := cmd.Flags()

	if envFile, _ := flags.GetString("env-file"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return cfg, ewrap.Wrapf(err, "load env file %s", envFile)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("DOTPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return cfg, ewrap.Wrapf(err, "bind flag %s", name)
		}
	}

	if file, _ := flags.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return cfg, ewrap.Wrapf(err, "read config %s", file)
		}
	} else {
		v.SetConfigName("dotplot")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return cfg, ewrap.Wrap(err, "read config")
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, ewrap.Wrap(err, "decode config")
	}
	if len(cfg.Keys) == 0 {
		cfg.Keys = nil // no explicit keys
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return cfg, ewrap.Wrap(err, "invalid config")
	}
	// Every source has a default, so a zero stack count was asked for.
	if err := cfg.Options.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
