package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// It is a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Supported output encodings.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Initialize sets up the global logger with the given level and output format.
// An empty format falls back to JSON.
func Initialize(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	var cfg zap.Config
	switch format {
	case "", FormatJSON:
		cfg = zap.NewProductionConfig()
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = l.Sugar()
	return nil
}

// WithConn returns a child logger tagged with a connection id and peer address.
func WithConn(connID, remoteAddr string) *zap.SugaredLogger {
	return Log.With("conn_id", connID, "remote_addr", remoteAddr)
}
