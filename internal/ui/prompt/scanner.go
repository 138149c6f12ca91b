// Package prompt reads input lines for a session, either from a plain
// stream or through an interactive line editor.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/repl/internal/domain"
)

// Scanner reads lines from a stream. It is used when input is not a
// terminal, for example when commands are piped in. Lines have no length
// limit.
type Scanner struct {
	reader *bufio.Reader
	echo   io.Writer
}

// NewScanner reads lines from r without showing a prompt.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(r)}
}

// NewEchoScanner reads lines from r and writes the prompt to w first.
func NewEchoScanner(r io.Reader, w io.Writer) *Scanner {
	s := NewScanner(r)
	s.echo = w
	return s
}

// ReadLine returns the next line without its line ending, or io.EOF.
func (s *Scanner) ReadLine(prompt string) (string, error) {
	if s.echo != nil {
		fmt.Fprint(s.echo, prompt)
	}
	line, err := s.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	// A final line without a newline is returned before io.EOF.
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

var _ domain.LineReader = (*Scanner)(nil)
