package config

import (
	"strings"

	"github.com/footprint-tools/repl/internal/domain"
	"github.com/spf13/cast"
)

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
func Get(key string) (string, bool) {
	if lines, err := ReadLines(); err == nil {
		if cfg, err := Parse(lines); err == nil {
			if value, ok := cfg[key]; ok {
				return value, true
			}
		}
	}

	return domain.GetDefaultValue(key)
}

// GetAll returns all config values (file values merged over defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = key.Default
	}

	lines, err := ReadLines()
	if err != nil {
		return result, err
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, err
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

// Bool reads key from values as a boolean, falling back to the key's default.
func Bool(values map[string]string, key string) bool {
	if b, err := cast.ToBoolE(values[key]); err == nil {
		return b
	}
	def, _ := domain.GetDefaultValue(key)
	return cast.ToBool(def)
}

// Int reads key from values as an integer, falling back to the key's default.
func Int(values map[string]string, key string) int {
	if n, err := cast.ToIntE(values[key]); err == nil {
		return n
	}
	def, _ := domain.GetDefaultValue(key)
	return cast.ToInt(def)
}

// List splits a comma-separated value, dropping empty items.
func List(values map[string]string, key string) []string {
	var out []string
	for _, item := range strings.Split(values[key], ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
