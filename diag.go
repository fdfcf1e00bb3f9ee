package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	warnPrefix  = color.New(color.FgYellow, color.Bold).SprintFunc()
	errorPrefix = color.New(color.FgRed, color.Bold).SprintFunc()
	infoPrefix  = color.New(color.FgCyan).SprintFunc()
)

// warnf prints a non-fatal diagnostic to stderr.
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", warnPrefix("warning:"), fmt.Sprintf(format, args...))
}

// errorf prints an error diagnostic to stderr without exiting.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorPrefix("error:"), fmt.Sprintf(format, args...))
}

// infof prints a progress note to stderr, keeping stdout clean for the
// report itself.
func infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", infoPrefix("glance:"), fmt.Sprintf(format, args...))
}

// fatalf prints an error and terminates with a non-zero status.
func fatalf(format string, args ...any) {
	errorf(format, args...)
	os.Exit(1)
}
