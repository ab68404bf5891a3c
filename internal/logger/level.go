package logger

import (
	"log/slog"
	"strings"
)

var customLevelsTerm = map[slog.Leveler]string{
	slog.LevelDebug: "\u001B[90m" + "DBG" + "\u001B[0m",
}

// LevelByName maps a level name to a slog level; unknown names map to warn.
func LevelByName(name string) slog.Level {
	switch strings.ToLower(name) {
	case "err", "error":
		return slog.LevelError
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}
