package logger

import (
	"os"
	"strconv"
)

// LogConfig holds the logging configuration. Values come from environment
// variables so the logger can be initialized before the main config is parsed.
type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // text or json
	Output     string // file, stdout, both
	LogPath    string // directory for log files (relative paths resolve from project root)
	MaxSize    int    // MB per file before rotation
	MaxBackups int    // rotated files to keep
	MaxAge     int    // days to keep rotated files
	Compress   bool   // gzip rotated files

	AppFile   string // app logger file name
	AuditFile string // audit logger file name
	ErrorFile string // error logger file name
}

// DefaultConfig builds a LogConfig from environment variables with sane
// defaults for local development.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      getEnv("LOG_LEVEL", "info"),
		Format:     getEnv("LOG_FORMAT", "text"),
		Output:     getEnv("LOG_OUTPUT", "both"),
		LogPath:    getEnv("LOG_PATH", "logs"),
		MaxSize:    getEnvInt("LOG_MAX_SIZE", 100),
		MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		MaxAge:     getEnvInt("LOG_MAX_AGE", 30),
		Compress:   getEnvBool("LOG_COMPRESS", true),
		AppFile:    "app.log",
		AuditFile:  "audit.log",
		ErrorFile:  "error.log",
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
