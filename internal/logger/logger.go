/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI's leveled logger.
// Library packages never log; only load and cmd do.
package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level is a logging threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelSilent
)

var (
	mu     sync.Mutex
	level  = LevelInfo
	logger = log.New(os.Stderr, "", 0)
)

// ParseLevel converts a level name. Unknown names yield LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "silent", "quiet", "none":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
}

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logf(LevelWarn, "warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	logf(LevelDebug, "debug: "+format, args...)
}

func logf(l Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	logger.Printf(format, args...)
}
