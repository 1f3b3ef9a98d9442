// Package logging appends errors and structured trace entries to a shared
// log file. Tracing is off by default so a release build pays nothing beyond
// a mutex check per emitted event.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "bettermenu.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
)

// Configure sets the log destination. Empty values fall back to the default
// path. Missing directories are created.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			logPath = defaultLogFile
			return
		}
	}
	logPath = path
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Error writes err to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	f, ok := open()
	if !ok {
		return
	}
	defer f.Close()
	log.SetOutput(f)
	log.Println(err)
}

// Trace appends a structured JSON entry when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	mu.Unlock()
	if !enabled {
		return
	}
	f, ok := open()
	if !ok {
		return
	}
	defer f.Close()

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}
	if err := json.NewEncoder(f).Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

func open() (*os.File, bool) {
	mu.Lock()
	path := logPath
	mu.Unlock()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return nil, false
	}
	return f, true
}
