package logging

import (
	"log/slog"
	"os"
)

// SetupLogger configures the global logger. All binaries log text to stdout
// with the service name attached so multi-service deployments stay greppable.
func SetupLogger(serviceName string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	logger := slog.New(handler).With("service", serviceName)
	slog.SetDefault(logger)

	return logger
}
