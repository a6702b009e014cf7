package main

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"
)

func newLogger(levelString, formatString string) *slog.Logger {
	if levelString == "" {
		levelString = "INFO"
	}

	logLevels := map[string]slog.Leveler{
		"DEBUG": slog.DebugLevel,
		"INFO":  slog.InfoLevel,
		"WARN":  slog.WarnLevel,
		"ERROR": slog.ErrorLevel,
	}

	l, ok := logLevels[strings.ToUpper(levelString)]
	if !ok {
		panic("Unrecognized log level: " + levelString)
	}

	var lh slog.Handler

	if strings.ToUpper(formatString) == "JSON" {
		lh = slog.HandlerOptions{Level: l}.NewJSONHandler(os.Stderr)
	} else {
		lh = slog.HandlerOptions{Level: l}.NewTextHandler(os.Stderr)
	}

	logger := slog.New(lh)

	slog.SetDefault(logger)
	return logger
}
