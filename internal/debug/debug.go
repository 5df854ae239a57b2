package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TUI_DEBUG"

var (
	mu     sync.Mutex
	out    io.Writer
	file   *os.File
	loaded bool
)

// Enabled reports whether debug output is configured.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	return out != nil
}

// Log writes a timestamped message to the debug log. It does nothing unless
// TUI_DEBUG is set or SetOutput has been called.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	loadLocked()
	if out == nil {
		return
	}
	fmt.Fprintf(out, "[%s] %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
	if file != nil {
		file.Sync()
	}
}

// SetOutput redirects debug output to w. A nil w disables logging.
// Any file opened from TUI_DEBUG is closed.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	loaded = true
	out = w
}

// Close closes the debug log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

// loadLocked opens the TUI_DEBUG file on first use. Caller must hold mu.
func loadLocked() {
	if loaded {
		return
	}
	loaded = true

	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	file = f
	out = f
}

func closeLocked() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	out = nil
	return err
}
