package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName   = "deskclock.log"
	logMaxSizeMB  = 5
	logMaxBackups = 3
	logMaxAgeDays = 14
)

// FilePath returns the active log file inside dir. Rotated backups sit next
// to it as deskclock-<timestamp>.log.gz.
func FilePath(dir string) string {
	return filepath.Join(dir, logFileName)
}

// NewFileWriter opens the rotating log file inside dir, creating dir when
// needed. The caller closes the returned writer.
func NewFileWriter(dir string) (io.WriteCloser, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	return &lumberjack.Logger{
		Filename:   FilePath(dir),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
		Compress:   true,
	}, nil
}
