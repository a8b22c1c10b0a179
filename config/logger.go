package config

import (
	"log/slog"
	"os"

	"github.com/golang-cz/devslog"
)

func InitLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	handler := devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{Level: level},
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
