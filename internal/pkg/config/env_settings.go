package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ReadLoggerSettingsFromEnv builds LoggerSettings from TEXTBOOK_RSA_LOG_* variables.
// When envFile is non-empty it is loaded first with godotenv; a missing file is not an
// error, and variables already present in the environment win over the file.
// Unset variables fall back to DefaultLoggerSettings.
func ReadLoggerSettingsFromEnv(envFile string) (*LoggerSettings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	settings := DefaultLoggerSettings()
	settings.LogLevel = getEnv(EnvLogLevel, settings.LogLevel)
	settings.LogType = getEnv(EnvLogType, settings.LogType)
	settings.FilePath = getEnv(EnvLogFilePath, "")

	var err error
	if settings.MaxSize, err = getEnvInt(EnvLogMaxSize); err != nil {
		return nil, err
	}
	if settings.MaxBackups, err = getEnvInt(EnvLogMaxBackups); err != nil {
		return nil, err
	}
	if settings.MaxAge, err = getEnvInt(EnvLogMaxAge); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
