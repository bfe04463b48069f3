package commands

import (
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"
)

// setupLogger reads logger settings from the environment (seeded from envFile when it
// exists), applies a non-empty level override and returns the process-wide logger.
func setupLogger(envFile, levelOverride string) (logger.Logger, error) {
	settings, err := config.ReadLoggerSettingsFromEnv(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read logger settings: %w", err)
	}

	if levelOverride != "" {
		settings.LogLevel = levelOverride
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
