// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	mu      sync.RWMutex
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init enables or disables styling. NO_COLOR and REPL_NO_COLOR, when set to
// any non-empty value, force styling off.
//
// cfg supplies the color_* overrides; nil means the palette defaults.
func Init(enable bool, cfg map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	if os.Getenv("NO_COLOR") != "" || os.Getenv("REPL_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// GetColors returns the active color configuration.
func GetColors() ColorConfig {
	mu.RLock()
	defer mu.RUnlock()
	return colors
}

func initStyles(c ColorConfig) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(c.Success)
	warningStyle = makeStyle(c.Warning)
	errorStyle = makeStyle(c.Error)
	infoStyle = makeStyle(c.Info)
	mutedStyle = makeStyle(c.Muted)
	headerStyle = makeStyle(c.Header)
}

func makeStyle(value string) lipgloss.Style {
	return styleFor(lipgloss.DefaultRenderer(), value)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func render(s *lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string {
	return render(&successStyle, text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	return render(&warningStyle, text)
}

// Error styles text for error messages.
func Error(text string) string {
	return render(&errorStyle, text)
}

// Info styles command names and other highlighted values.
func Info(text string) string {
	return render(&infoStyle, text)
}

// Header styles section headers.
func Header(text string) string {
	return render(&headerStyle, text)
}

// Muted styles secondary information such as usage arguments.
func Muted(text string) string {
	return render(&mutedStyle, text)
}
