package style

import (
	"github.com/footprint-tools/repl/internal/domain"
	"github.com/muesli/termenv"
)

// ColorConfig holds the configurable colors. Values are ANSI color numbers
// (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// Dark backgrounds get bright colors, light backgrounds dark ones.
var (
	DarkPalette = ColorConfig{
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
	}
	LightPalette = ColorConfig{
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "240",
		Header:  "bold",
	}
)

// hasDarkBackground is swapped in tests.
var hasDarkBackground = termenv.HasDarkBackground

// LoadColorConfig starts from the palette matching the terminal background
// and applies any color_* key present in cfg.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	c := LightPalette
	if hasDarkBackground() {
		c = DarkPalette
	}

	overrides := map[string]*string{
		domain.KeyColorInfo:   &c.Info,
		domain.KeyColorMuted:  &c.Muted,
		domain.KeyColorError:  &c.Error,
		domain.KeyColorHeader: &c.Header,
	}
	for key, field := range overrides {
		if v, ok := cfg[key]; ok && v != "" {
			*field = v
		}
	}
	return c
}
