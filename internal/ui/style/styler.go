package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/footprint-tools/repl/internal/domain"
	"github.com/muesli/termenv"
)

type role int

const (
	roleSuccess role = iota
	roleWarning
	roleError
	roleInfo
	roleMuted
	roleHeader
)

// Styler implements domain.Styler with a fixed palette. It does not follow
// later Init calls, so a session keeps the colors it started with.
type Styler struct {
	enabled bool
	styles  map[role]lipgloss.Style
}

// NewStyler snapshots the state set by Init.
func NewStyler() *Styler {
	return NewStylerWith(Enabled(), GetColors())
}

// NewStylerWith renders c with a 256-color profile when enabled is true.
func NewStylerWith(enabled bool, c ColorConfig) *Styler {
	s := &Styler{enabled: enabled}
	if !enabled {
		return s
	}

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	s.styles = map[role]lipgloss.Style{
		roleSuccess: styleFor(r, c.Success),
		roleWarning: styleFor(r, c.Warning),
		roleError:   styleFor(r, c.Error),
		roleInfo:    styleFor(r, c.Info),
		roleMuted:   styleFor(r, c.Muted),
		roleHeader:  styleFor(r, c.Header),
	}
	return s
}

// styleFor accepts "bold" or an ANSI color number (0-255). An empty value
// leaves text unstyled.
func styleFor(r *lipgloss.Renderer, value string) lipgloss.Style {
	switch value {
	case "":
		return r.NewStyle()
	case "bold":
		return r.NewStyle().Bold(true)
	default:
		return r.NewStyle().Foreground(lipgloss.Color(value))
	}
}

func (s *Styler) apply(ro role, text string) string {
	if s == nil || !s.enabled {
		return text
	}
	st := s.styles[ro]
	return st.Render(text)
}

func (s *Styler) Enabled() bool              { return s != nil && s.enabled }
func (s *Styler) Success(text string) string { return s.apply(roleSuccess, text) }
func (s *Styler) Warning(text string) string { return s.apply(roleWarning, text) }
func (s *Styler) Error(text string) string   { return s.apply(roleError, text) }
func (s *Styler) Info(text string) string    { return s.apply(roleInfo, text) }
func (s *Styler) Muted(text string) string   { return s.apply(roleMuted, text) }
func (s *Styler) Header(text string) string  { return s.apply(roleHeader, text) }

// NopStyler returns text unchanged.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }

var (
	_ domain.Styler = (*Styler)(nil)
	_ domain.Styler = NopStyler{}
)
