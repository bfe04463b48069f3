package config

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Environment variables read by ReadLoggerSettingsFromEnv.
const (
	EnvLogLevel      = "TEXTBOOK_RSA_LOG_LEVEL"
	EnvLogType       = "TEXTBOOK_RSA_LOG_TYPE"
	EnvLogFilePath   = "TEXTBOOK_RSA_LOG_FILE_PATH"
	EnvLogMaxSize    = "TEXTBOOK_RSA_LOG_MAX_SIZE"
	EnvLogMaxBackups = "TEXTBOOK_RSA_LOG_MAX_BACKUPS"
	EnvLogMaxAge     = "TEXTBOOK_RSA_LOG_MAX_AGE"
)

// DefaultLogLevel keeps routine evaluation logs out of the terminal.
const DefaultLogLevel = LogLevelWarning
