package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

type requestIDKey string

const RequestIDKey requestIDKey = "request_id"

func InitLogger() *slog.Logger {
	config := &slog.HandlerOptions{
		Level: levelFromEnv(),
	}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "text" {
		handler = slog.NewTextHandler(os.Stdout, config)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, config)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized")

	return Logger
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
