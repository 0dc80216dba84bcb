package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogWriter receives application, request and SQL logs. It stays on stdout
// until InitLogging succeeds in opening the log file.
var LogWriter io.Writer = os.Stdout

// LogFilePath returns LOG_FILE, or logs/dorm-api.log when unset.
func LogFilePath() string {
	return GetEnv("LOG_FILE", filepath.Join("logs", "dorm-api.log"))
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// InitLogging tees the standard logger to stdout and the log file. The
// returned func closes the file; it is safe to call when no file was opened.
func InitLogging() func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	file, err := openLogFile(LogFilePath())
	if err != nil {
		log.Printf("Warning: logging to stdout only: %v", err)
		LogWriter = os.Stdout
		log.SetOutput(LogWriter)
		return func() {}
	}

	LogWriter = io.MultiWriter(os.Stdout, file)
	log.SetOutput(LogWriter)
	return func() { _ = file.Close() }
}
