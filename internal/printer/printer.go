// Package printer formats simulator output for a terminal.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// Users can disable with NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	faint  = color.New(color.Faint)
)

// Printer writes to one stream, normally a cobra command's output.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer { return &Printer{w: w} }

// Success prints a message in green with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	green.Fprintf(p.w, "✓ %s\n", fmt.Sprintf(format, a...))
}

func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.w, format+"\n", a...)
}

// Warning prints a message in yellow.
func (p *Printer) Warning(format string, a ...any) {
	yellow.Fprintf(p.w, "⚠️  %s\n", fmt.Sprintf(format, a...))
}

// Step prints a heading for one part of the output.
func (p *Printer) Step(format string, a ...any) {
	cyan.Fprintf(p.w, "→ %s\n", fmt.Sprintf(format, a...))
}

// Error prints title and explanation in red and returns a plain error for
// cobra carrying only the title.
func (p *Printer) Error(title, explanation string) error {
	red.Fprintf(p.w, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(p.w, "%s\n", explanation)
	}
	return fmt.Errorf("%s", title)
}

// Box draws text inside a frame, as the OLED would show it.
func (p *Printer) Box(text string) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	bar := strings.Repeat("─", width)
	faint.Fprintf(p.w, "┌%s┐\n", bar)
	for _, l := range lines {
		pad := width - len([]rune(l))
		faint.Fprint(p.w, "│")
		fmt.Fprint(p.w, l+strings.Repeat(" ", pad))
		faint.Fprint(p.w, "│\n")
	}
	faint.Fprintf(p.w, "└%s┘\n", bar)
}

// Row prints cells separated by single spaces; dim cells are faint.
func (p *Printer) Row(cells []string, dim func(i int) bool) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(p.w, " ")
		}
		if dim != nil && dim(i) {
			faint.Fprint(p.w, c)
		} else {
			fmt.Fprint(p.w, c)
		}
	}
	fmt.Fprintln(p.w)
}
