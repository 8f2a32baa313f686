// Package logging holds the package-level diagnostic logger used by the
// gridscope command and, on request, by the analyzer.
package logging

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = Discard
		return
	}
	Logf = f
}

// Discard is a logger that drops every message.
func Discard(string, ...interface{}) {}
