// Package ui provides the terminal output stream shared by command output
// and diagnostics.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/footprint-tools/repl/internal/domain"
	"golang.org/x/term"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return NewWriterTo(os.Stdout)
}

// NewWriterTo creates a Writer that writes to out.
func NewWriterTo(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w, args...)
}

// Block prints content followed by exactly one newline.
func (w *Writer) Block(content string) {
	fmt.Fprint(w, strings.TrimRight(content, "\n")+"\n")
}

// IsTerminal reports whether w writes to a terminal.
func (w *Writer) IsTerminal() bool {
	return IsTerminal(w.out)
}

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Verify Writer implements domain.OutputWriter
var _ domain.OutputWriter = (*Writer)(nil)
