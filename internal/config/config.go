package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rogerio-castellano/faststock/internal/i18n"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const EnvPrefix = "FASTSTOCK"

// Keys accepted in config files, as FASTSTOCK_<KEY> env vars and in Load
// overrides.
const (
	KeyLocale      = "locale"
	KeyLogLevel    = "log_level"
	KeyClearScreen = "clear_screen"
	KeyPause       = "pause"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Locale      string `mapstructure:"locale"`
	LogLevel    string `mapstructure:"log_level"`
	ClearScreen bool   `mapstructure:"clear_screen"`
	Pause       bool   `mapstructure:"pause"`
}

// Load resolves the configuration from, in increasing priority: defaults,
// the config file at path (skipped when path is empty), FASTSTOCK_* env vars
// and overrides.
func Load(path string, overrides map[string]any) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyLocale, "en")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyClearScreen, true)
	v.SetDefault(KeyPause, true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Language(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Language returns the catalog locale selected by Locale.
func (c Config) Language() (language.Tag, error) {
	tag, err := i18n.ParseLocale(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return tag, nil
}

// Level returns the logrus level named by LogLevel.
func (c Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return level, nil
}
