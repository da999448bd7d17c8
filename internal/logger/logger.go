/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the leveled logger colgen reports progress and
// per-entry problems through. Tests silence it with io.Discard.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	output io.Writer = os.Stderr
	logger *log.Logger
)

func init() {
	logger = log.New(output, "", 0)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger = log.New(output, "", 0)
}

// Error logs an error message.
func Error(format string, args ...any) {
	logger.Printf("error: "+format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Printf(format, args...)
}

// Debug logs a debug message. Currently same as Info.
func Debug(format string, args ...any) {
	logger.Printf(format, args...)
}
