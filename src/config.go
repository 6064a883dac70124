package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Transform TransformConfig `mapstructure:"transform"`
	Sample    SampleConfig    `mapstructure:"sample"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

type TransformConfig struct {
	Workers int    `mapstructure:"workers"`
	Degrees bool   `mapstructure:"degrees"` // step angles are in degrees
	Sort    bool   `mapstructure:"sort"`
	Steps   []Step `mapstructure:"steps"`
	Output  string `mapstructure:"output"` // path without extension, defaults to the input's
	Seed    uint64 `mapstructure:"seed"`   // jitter seed, 0 picks a random one
}

type SampleConfig struct {
	Count  int    `mapstructure:"count"`
	Dims   int    `mapstructure:"dims"`
	Seed   uint64 `mapstructure:"seed"` // 0 picks a random seed
	Output string `mapstructure:"output"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("transform.workers", 4)
	v.SetDefault("transform.degrees", false)
	v.SetDefault("transform.sort", false)
	v.SetDefault("transform.output", "")
	v.SetDefault("transform.seed", 0)
	v.SetDefault("sample.count", 1000)
	v.SetDefault("sample.dims", 3)
	v.SetDefault("sample.seed", 0)
	v.SetDefault("sample.output", "")
}

// newViper reads cfgFile, or ./pvector.yaml when cfgFile is empty. A missing
// default file is not an error. PVECTOR_* environment variables override
// file values.
func newViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pvector")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PVECTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	if c.Transform.Workers < 1 {
		return fmt.Errorf("transform.workers must be at least 1, got %d", c.Transform.Workers)
	}
	if c.Sample.Dims != 2 && c.Sample.Dims != 3 {
		return fmt.Errorf("sample.dims must be 2 or 3, got %d", c.Sample.Dims)
	}
	if c.Sample.Count < 1 {
		return fmt.Errorf("sample.count must be positive, got %d", c.Sample.Count)
	}
	return nil
}
