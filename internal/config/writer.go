package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/repl/internal/paths"
)

// WriteLines atomically replaces the config file with lines.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}
	return writeFile(configPath, lines)
}

// writeFile writes lines to a temp file in the same directory and renames
// it over path. The file is left untouched on any failure.
func writeFile(path string, lines []string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("config: create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}

	if err = tmp.Chmod(0600); err != nil {
		return fmt.Errorf("config: chmod temp file: %w", err)
	}
	if _, err = tmp.WriteString(content); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("config: sync: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("config: close: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("config: replace %s: %w", path, err)
	}
	return nil
}
