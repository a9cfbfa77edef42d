package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/sokinpui/fixchatbot/model"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PathColor    = color.New(color.FgYellow)
)

// Diagnostics go to stderr; color follows that stream rather than stdout.
func init() {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
}

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Path(format string, a ...interface{}) {
	PathColor.Fprintf(os.Stderr, "  "+format+"\n", a...)
}

// Status prints the single uncolored result line. It is the only thing the
// tool writes to stdout.
func Status(w io.Writer, message string) {
	fmt.Fprintln(w, message)
}

// PrintReport prints the details of a run to stderr and its status line to w.
func PrintReport(w io.Writer, r model.Report) {
	if r.Preview != "" {
		Header("--- Changes to %s ---", r.Path)
		Block(r.Preview)
	}
	switch {
	case r.Found && r.Replacements > 1:
		Warning("Replaced %d occurrences in %s.", r.Replacements, r.Path)
	case !r.Found && r.Hint != "":
		Info("%s", r.Hint)
	}
	Status(w, r.Message)
}

// Block prints a multi-line block, such as a preview, to stderr as is.
func Block(text string) {
	if text == "" {
		return
	}
	fmt.Fprint(os.Stderr, text)
	if text[len(text)-1] != '\n' {
		fmt.Fprintln(os.Stderr)
	}
}
