package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level. They write to color.Output,
// so tests can redirect them by swapping that writer.

// Info logs informational messages in green color.
var Info = color.New(color.FgGreen).PrintfFunc()

// Success logs completed milestones in bold green, prefixed with a check mark.
var Success = prefixed("✔ ", color.New(color.FgGreen, color.Bold).PrintfFunc())

// Warn logs warning messages in bright magenta color.
// Used for diagnostics that do not stop the current run.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It starts out disabled so packages may log before Init runs (tests, for instance).
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug will be a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// prefixed wraps a printf function so every message starts with prefix.
func prefixed(prefix string, printf func(format string, a ...any)) func(format string, a ...any) {
	return func(format string, a ...any) {
		printf(prefix+format, a...)
	}
}
