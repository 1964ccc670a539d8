package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by LoadConfig,
// e.g. FBST_SEED or FBST_LOG_LEVEL.
const EnvPrefix = "FBST"

// Config holds the optional settings of a benchmark run. Values come from
// the defaults, then an optional YAML file, then FBST_* environment
// variables, then command-line flags.
type Config struct {
	Seed        int64  `mapstructure:"seed"`
	Repeat      int    `mapstructure:"repeat"`
	Warmup      int    `mapstructure:"warmup"`
	Layout      string `mapstructure:"layout"`
	Verify      bool   `mapstructure:"verify"`
	Workers     int    `mapstructure:"workers"`
	Debug       bool   `mapstructure:"debug"`
	JSON        bool   `mapstructure:"json"`
	Sweep       string `mapstructure:"sweep"`
	Save        string `mapstructure:"save"`
	Compression string `mapstructure:"compression"`
	LogLevel    string `mapstructure:"log_level"`
}

// LoadConfig reads configuration from the file at configPath, if given,
// or from fbst.yaml in the working directory, if present, and from the
// environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("fbst")
		v.SetConfigType("yaml")
	}

	v.SetDefault("seed", 0)
	v.SetDefault("repeat", 1)
	v.SetDefault("warmup", 0)
	v.SetDefault("layout", "inorder")
	v.SetDefault("verify", false)
	v.SetDefault("workers", 0)
	v.SetDefault("debug", false)
	v.SetDefault("json", false)
	v.SetDefault("sweep", "")
	v.SetDefault("save", "")
	v.SetDefault("compression", "none")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &cfg, nil
}
