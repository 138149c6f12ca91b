package config

import (
	"strings"
)

// Set replaces the value of key in lines, keeping any inline comment, or
// appends key=value when the key is absent. It reports whether key existed.
func Set(lines []string, key, value string) ([]string, bool) {
	if strings.Contains(value, " ") {
		value = "\"" + value + "\""
	}

	for i, line := range lines {
		k, old, ok := splitEntry(line)
		if !ok || k != key {
			continue
		}

		if idx := strings.Index(old, " #"); idx >= 0 {
			lines[i] = key + "=" + value + " " + strings.TrimSpace(old[idx:])
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset removes every line assigning key. It reports whether any was removed.
func Unset(lines []string, key string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	removed := false

	for _, line := range lines {
		if k, _, ok := splitEntry(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
