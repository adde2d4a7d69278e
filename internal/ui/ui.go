// Package ui prints user-facing CLI messages.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Out is where messages go. Tests swap it.
var Out io.Writer = os.Stderr

// Okf prints a success line.
func Okf(format string, args ...any) {
	fmt.Fprintf(Out, "%s %s\n", Good.Sprint("✓"), fmt.Sprintf(format, args...))
}

// Warnf prints a warning line.
func Warnf(format string, args ...any) {
	fmt.Fprintf(Out, "%s %s\n", Warn.Sprint("⚠"), fmt.Sprintf(format, args...))
}

// Errorf prints an error line.
func Errorf(format string, args ...any) {
	fmt.Fprintf(Out, "%s %s\n", Bad.Sprint("✗"), fmt.Sprintf(format, args...))
}

// Hint prints a dimmed line.
func Hint(format string, args ...any) {
	Subtle.Fprintf(Out, format+"\n", args...)
}

// KeyValue prints an aligned "key: value" pair.
func KeyValue(key, value string) {
	fmt.Fprintf(Out, "  %s %s\n", Info.Sprintf("%-10s", key+":"), value)
}
