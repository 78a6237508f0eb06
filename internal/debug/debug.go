package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "UI_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
	tried   bool // env lookup already attempted
)

// Init opens path for appending and routes debug messages to it,
// replacing any file opened earlier.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	tried = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether messages are being written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	openFromEnvLocked()
	return logFile != nil
}

// openFromEnvLocked opens the file named by UI_DEBUG on first use. Caller must hold mu.
func openFromEnvLocked() {
	if tried {
		return
	}
	tried = true
	if path := os.Getenv(EnvVar); path != "" {
		_ = initLocked(path)
	}
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	openFromEnvLocked()
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
}
