package prompt

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/footprint-tools/repl/internal/domain"
)

// Interactive reads lines through a bubbletea line editor with history
// recall on the up and down keys. Ctrl+D on an empty line and Ctrl+C end
// input.
type Interactive struct {
	history []string
	opts    []tea.ProgramOption
}

// NewInteractive creates an editor seeded with earlier lines, oldest first.
func NewInteractive(history []string, opts ...tea.ProgramOption) *Interactive {
	return &Interactive{
		history: append([]string(nil), history...),
		opts:    opts,
	}
}

// ReadLine runs the editor for one line.
func (r *Interactive) ReadLine(prompt string) (string, error) {
	m := newLineModel(prompt, r.history)

	final, err := tea.NewProgram(m, r.opts...).Run()
	if err != nil {
		return "", err
	}

	fm := final.(lineModel)
	if fm.eof {
		return "", io.EOF
	}

	line := fm.input.Value()
	if strings.TrimSpace(line) != "" {
		r.history = append(r.history, line)
	}
	return line, nil
}

// History returns the lines known to the editor, oldest first.
func (r *Interactive) History() []string {
	return append([]string(nil), r.history...)
}

type lineModel struct {
	input   textinput.Model
	history []string
	// cursor indexes history; len(history) is the line being typed.
	cursor int
	draft  string
	done   bool
	eof    bool
}

func newLineModel(prompt string, history []string) lineModel {
	in := textinput.New()
	in.Prompt = prompt
	in.Focus()

	return lineModel{
		input:   in,
		history: history,
		cursor:  len(history),
	}
}

func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit

	case tea.KeyCtrlC:
		m.done = true
		m.eof = true
		return m, tea.Quit

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.done = true
			m.eof = true
			return m, tea.Quit
		}

	case tea.KeyUp:
		if m.cursor > 0 {
			if m.cursor == len(m.history) {
				m.draft = m.input.Value()
			}
			m.cursor--
			m.setValue(m.history[m.cursor])
		}
		return m, nil

	case tea.KeyDown:
		if m.cursor < len(m.history) {
			m.cursor++
			if m.cursor == len(m.history) {
				m.setValue(m.draft)
			} else {
				m.setValue(m.history[m.cursor])
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *lineModel) setValue(v string) {
	m.input.SetValue(v)
	m.input.CursorEnd()
}

func (m lineModel) View() string {
	if m.done {
		if m.eof {
			return m.input.Prompt + "\n"
		}
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}

var _ domain.LineReader = (*Interactive)(nil)
