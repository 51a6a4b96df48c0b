// Package ui provides console output and interactive prompts for dayscaffold.
// Report lines are written plain to the output writer; status messages are
// colorized and written to a separate status writer so stdout stays parseable.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// UI provides user interface methods
type UI struct {
	output io.Writer
	status io.Writer
	// Color functions
	colorInfo    *color.Color
	colorSuccess *color.Color
	colorCyan    *color.Color
}

// New creates a new UI writing reports to stdout and status to stderr
func New() *UI {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriter creates a UI with a single custom writer (useful for testing)
func NewWithWriter(w io.Writer) *UI {
	return NewWithWriters(w, w)
}

// NewWithWriters creates a UI with separate report and status writers
func NewWithWriters(output, status io.Writer) *UI {
	return &UI{
		output:       output,
		status:       status,
		colorInfo:    color.New(color.FgBlue),
		colorSuccess: color.New(color.FgGreen),
		colorCyan:    color.New(color.FgCyan, color.Bold),
	}
}

// Info prints an info message
func (u *UI) Info(msg string) {
	u.colorInfo.Fprintf(u.status, "[INFO] %s\n", msg)
}

// Infof prints a formatted info message
func (u *UI) Infof(format string, args ...interface{}) {
	u.Info(fmt.Sprintf(format, args...))
}

// Success prints a success message
func (u *UI) Success(msg string) {
	u.colorSuccess.Fprintf(u.status, "[✓] %s\n", msg)
}

// Successf prints a formatted success message
func (u *UI) Successf(format string, args ...interface{}) {
	u.Success(fmt.Sprintf(format, args...))
}

// Header prints a header with a box
func (u *UI) Header(title string) {
	border := strings.Repeat("=", 70)

	u.colorCyan.Fprintln(u.status, border)
	u.colorCyan.Fprintf(u.status, "  %s\n", title)
	u.colorCyan.Fprintln(u.status, border)
}

// Printf prints a formatted plain report line
func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.output, format+"\n", args...)
}
