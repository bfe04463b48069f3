//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLoggerEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLogLevel, EnvLogType, EnvLogFilePath, EnvLogMaxSize, EnvLogMaxBackups, EnvLogMaxAge} {
		t.Setenv(key, "")
	}
}

func TestReadLoggerSettingsFromEnv_Defaults(t *testing.T) {
	clearLoggerEnv(t)

	settings, err := ReadLoggerSettingsFromEnv("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, settings.LogLevel)
	assert.Equal(t, LogTypeConsole, settings.LogType)
}

func TestReadLoggerSettingsFromEnv_Environment(t *testing.T) {
	clearLoggerEnv(t)
	t.Setenv(EnvLogLevel, LogLevelDebug)
	t.Setenv(EnvLogType, LogTypeFile)
	t.Setenv(EnvLogFilePath, filepath.Join(t.TempDir(), "rsa.log"))
	t.Setenv(EnvLogMaxSize, "5")
	t.Setenv(EnvLogMaxBackups, "2")
	t.Setenv(EnvLogMaxAge, "7")

	settings, err := ReadLoggerSettingsFromEnv("")
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, settings.LogLevel)
	assert.Equal(t, LogTypeFile, settings.LogType)
	assert.Equal(t, 5, settings.MaxSize)
	assert.Equal(t, 2, settings.MaxBackups)
	assert.Equal(t, 7, settings.MaxAge)
}

func TestReadLoggerSettingsFromEnv_EnvFile(t *testing.T) {
	clearLoggerEnv(t)
	// t.Setenv restores the variable afterwards; unset it so godotenv may populate it.
	require.NoError(t, os.Unsetenv(EnvLogLevel))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvLogLevel+"=error\n"), 0600))

	settings, err := ReadLoggerSettingsFromEnv(envFile)
	require.NoError(t, err)
	assert.Equal(t, LogLevelError, settings.LogLevel)
}

func TestReadLoggerSettingsFromEnv_MissingEnvFile(t *testing.T) {
	clearLoggerEnv(t)

	settings, err := ReadLoggerSettingsFromEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, settings.LogLevel)
}

func TestReadLoggerSettingsFromEnv_Invalid(t *testing.T) {
	t.Run("non numeric rotation", func(t *testing.T) {
		clearLoggerEnv(t)
		t.Setenv(EnvLogMaxSize, "ten")

		_, err := ReadLoggerSettingsFromEnv("")
		assert.ErrorContains(t, err, EnvLogMaxSize)
	})

	t.Run("unknown level", func(t *testing.T) {
		clearLoggerEnv(t)
		t.Setenv(EnvLogLevel, "verbose")

		_, err := ReadLoggerSettingsFromEnv("")
		assert.Error(t, err)
	})
}
