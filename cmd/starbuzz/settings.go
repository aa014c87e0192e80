package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/a-peyrard/godeco/config"
	"github.com/a-peyrard/godeco/option"
	"github.com/rs/zerolog"
)

const (
	envPrefix     = "STARBUZZ"
	configFileEnv = envPrefix + "_CONFIG_FILE"
)

// Settings of the demo, read from STARBUZZ_* variables.
type Settings struct {
	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	Currency  string `mapstructure:"currency" validate:"required"`
	Precision int    `mapstructure:"precision" validate:"gte=0,lte=6"`
	NoColor   bool   `mapstructure:"no_color"`
}

func (s *Settings) ApplyDefault() {
	if s.LogLevel == "" {
		s.LogLevel = zerolog.InfoLevel.String()
	}
	s.LogLevel = strings.ToLower(s.LogLevel)
	if s.Currency == "" {
		s.Currency = "$"
	}
	if s.Precision == 0 {
		s.Precision = 2
	}
}

func loadSettings() (*Settings, error) {
	opts := []option.Option[config.Options]{config.WithEnvPrefix(envPrefix)}
	if path := os.Getenv(configFileEnv); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	return config.Load[Settings](opts...)
}

func newLogger(out io.Writer, level string) (*zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", level, err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}).
		Level(parsed).
		With().
		Timestamp().
		Logger()
	return &logger, nil
}
