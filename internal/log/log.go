// Package log builds the application logger.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger's verbosity and output encoding.
type Config struct {
	Level    string `env:"LEVEL, default=info"`
	Encoding string `env:"ENCODING, default=console"`
}

// New builds a sugared logger from the given config.
func New(cfg Config) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	conf := zap.NewDevelopmentConfig()
	conf.Level = zap.NewAtomicLevelAt(level)
	conf.Encoding = cfg.Encoding

	logger, err := conf.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything. Used as the default in
// library code and in tests.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
