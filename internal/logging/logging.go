// Package logging holds the slog levels and helpers shared by the commands.
package logging

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
)

const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
)

// Custom Logger methods for Trace and Fatal
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

func Fatal(msg string, args ...any) {
	slog.Log(context.Background(), LevelFatal, msg, args...)
	os.Exit(1) // Terminate the program after logging
}

var errLevel = errors.New("The loglevel parameter value must be a prefix of one of theses words, \"trace\", \"debug\", \"info\", \"warning\", \"error\" or \"fatal\".")

// ParseLevel accepts any prefix of trace, debug, info, warning, error or
// fatal, in any case.
func ParseLevel(value string) (slog.Level, error) {
	lv := strings.ToLower(value)
	if lv == "" {
		return 0, errLevel
	}
	switch {
	case strings.HasPrefix("trace", lv):
		return LevelTrace, nil
	case strings.HasPrefix("debug", lv):
		return slog.LevelDebug, nil
	case strings.HasPrefix("info", lv):
		return slog.LevelInfo, nil
	case strings.HasPrefix("warning", lv):
		return slog.LevelWarn, nil
	case strings.HasPrefix("error", lv):
		return slog.LevelError, nil
	case strings.HasPrefix("fatal", lv):
		return LevelFatal, nil
	}
	return 0, errLevel
}

// SetLevel sets the level of the default logger. It has the signature of a
// pflag.Func callback.
func SetLevel(value string) error {
	level, err := ParseLevel(value)
	if err != nil {
		return err
	}
	slog.SetLogLoggerLevel(level)
	return nil
}

// Enabled reports whether the default logger emits level.
func Enabled(level slog.Level) bool {
	return slog.Default().Enabled(context.Background(), level)
}
