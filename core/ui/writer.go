// Package ui provides terminal output for the calculator: colored
// sections, messages and aligned tables.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Colors for terminal output
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"
	Red   = "\033[31m"
	Green = "\033[32m"
	Blue  = "\033[34m"
	Cyan  = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Line writes text verbatim followed by a newline. Use it for text that may
// contain '%', such as rendered formulas.
func (w *Writer) Line(text string) {
	fmt.Fprintln(w.out, text)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Line("")
	w.Line(w.color(Bold+Cyan, "----- "+title+" -----"))
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Line(w.color(Bold, title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Line(w.color(Green, fmt.Sprintf(format, args...)))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Line(w.color(Red, fmt.Sprintf(format, args...)))
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	w.Line(w.color(Blue, fmt.Sprintf(format, args...)))
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	w.Line(w.color(Dim, "  "+fmt.Sprintf(format, args...)))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table. Widths count runes so Cyrillic labels line up.
func (t *Table) Render() {
	t.w.Line(t.w.color(Bold, t.format(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Line(strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Line(t.format(row))
	}
}

func (t *Table) format(cells []string) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(cell))
	}
	return strings.TrimRight(strings.Join(padded, " │ "), " ")
}
