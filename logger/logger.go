// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package logger

import (
	"sync/atomic"

	"github.com/sassoftware/pdf-xtract/tracer"
)

// LogLevel represents log severity
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	ErrorLevel LogLevel = "error"
)

// LogFunc is a single logger function that handles all levels
type LogFunc func(level LogLevel, msg string, keyvals ...interface{})

var noopLogger LogFunc = func(level LogLevel, msg string, keyvals ...interface{}) {}

var current atomic.Value

func init() {
	current.Store(noopLogger)
}

// SetLogger sets the global logger function. A processor may call this
// at startup while extraction workers are already reading it
// concurrently from other goroutines, so the active LogFunc is held in
// an atomic.Value rather than a bare package variable.
func SetLogger(f LogFunc) {
	if f == nil {
		return
	}
	current.Store(f)
}

func active() LogFunc {
	return current.Load().(LogFunc)
}

// Debug logs a message at debug level.
// If the last keyvals element is a bool and true, it is also recorded
// to the tracer's buffer as a trace-level breadcrumb.
func Debug(msg string, keyvals ...interface{}) {
	trace := false
	if len(keyvals) > 0 {
		if b, ok := keyvals[len(keyvals)-1].(bool); ok {
			trace = b
			keyvals = keyvals[:len(keyvals)-1]
		}
	}
	active()(DebugLevel, msg, keyvals...)

	if trace {
		tracer.Log(msg)
	}
}

// Error logs a message at error level
func Error(msg string, keyvals ...interface{}) {
	active()(ErrorLevel, msg, keyvals...)
}
