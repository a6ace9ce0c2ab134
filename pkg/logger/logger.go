// Package logger builds the zap loggers used by the client and the server.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultLevel      = "info"
	DefaultMaxSizeMB  = 5
	DefaultMaxBackups = 3
)

type Options struct {
	Path       string `yaml:"path"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
}

func DefaultOptions() Options {
	return Options{
		Level:      DefaultLevel,
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
	}
}

// NewFile returns a logger writing JSON lines to a rotating file. The
// terminal client cannot log to stdout or stderr while the UI is running, so
// an empty path discards everything.
func NewFile(o Options) (*zap.Logger, error) {
	if o.Path == "" {
		return zap.NewNop(), nil
	}

	lvl, err := parseLevel(o.Level)
	if err != nil {
		return nil, err
	}

	sink := &lumberjack.Logger{
		Filename:   o.Path,
		MaxSize:    o.MaxSizeMB,
		MaxBackups: o.MaxBackups,
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(sink), lvl)

	return zap.New(core), nil
}

// NewConsole returns a logger writing to f, human readable when f is a
// terminal.
func NewConsole(o Options, f *os.File) (*zap.Logger, error) {
	lvl, err := parseLevel(o.Level)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if term.IsTerminal(int(f.Fd())) {
		cfg := encoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		enc = zapcore.NewConsoleEncoder(cfg)
	} else {
		enc = zapcore.NewJSONEncoder(encoderConfig())
	}

	return zap.New(zapcore.NewCore(enc, zapcore.Lock(f), lvl)), nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return lvl, fmt.Errorf("failed to parse log level: %w", err)
	}

	return lvl, nil
}
