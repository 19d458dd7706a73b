// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Config holds CLI settings. Flags override these values when set.
type Config struct {
	InputDir    string        `env:"AOC_INPUT_DIR" envDefault:"data"`
	AnswersPath string        `env:"AOC_ANSWERS"`
	LogLevel    string        `env:"AOC_LOG_LEVEL" envDefault:"info"`
	Timeout     time.Duration `env:"AOC_TIMEOUT" envDefault:"30s"`
}

// FromEnv parses Config from environment variables.
func FromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Level maps LogLevel (debug|info|warn|error) to a zap level.
func (c Config) Level() (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", c.LogLevel)
}
