// ABOUTME: Debug log file for the TUI so log output stays off the terminal
// ABOUTME: Opens an append-only debug.log under the config directory

package debuglog

import (
	"io"
	"os"
	"path/filepath"
)

// FileName is the log file created inside the config directory
const FileName = "debug.log"

// Open creates configDir if needed and opens debug.log for appending.
// An empty configDir discards all output.
func Open(configDir string) (io.WriteCloser, error) {
	if configDir == "" {
		return nopCloser{io.Discard}, nil
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	logPath := filepath.Join(configDir, FileName)
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
