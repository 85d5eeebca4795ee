/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger writes build diagnostics to stderr. Tests and scripted
// runs silence it with SetOutput(io.Discard).
package logger

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	logger  = log.New(os.Stderr, "", 0)
	verbose bool
)

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
}

// SetVerbose enables or disables debug messages.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

func printf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Printf(prefix+format, args...)
}

// Warn logs a recoverable problem, such as a key collision outside
// strict mode.
func Warn(format string, args ...any) {
	printf("warning: ", format, args...)
}

// Debug logs a message only when verbose output is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	on := verbose
	mu.RUnlock()
	if on {
		printf("debug: ", format, args...)
	}
}
