package config

import (
	"fmt"
	"strings"
)

const bom = "\uFEFF"

// splitEntry splits a config line into key and value. ok is false for blank
// lines, comments and lines without '='.
func splitEntry(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	k, v, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false
	}

	return strings.TrimSpace(k), strings.TrimSpace(v), true
}

// Parse turns config lines into a key/value map. Later keys override earlier
// ones. Values wrapped in double quotes are unquoted.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := splitEntry(trimmed)
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value, got %q", i+1, trimmed)
		}
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		cfg[key] = value
	}

	return cfg, nil
}
