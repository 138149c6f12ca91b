package config

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/repl/internal/domain"
	"github.com/footprint-tools/repl/internal/log"
	"github.com/footprint-tools/repl/internal/paths"
)

// ReadLines reads the config file. A missing or empty file is initialized
// with the default values of all visible keys.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return initialize(configPath)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return initialize(configPath)
	}

	return lines, nil
}

func initialize(configPath string) ([]string, error) {
	lines := defaultLines()

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		log.Warn("config: could not create config directory: %v", err)
		return lines, nil
	}
	if err := WriteLines(lines); err != nil {
		log.Warn("config: could not write default config: %v", err)
	}

	return lines, nil
}

// defaultLines creates config lines with default values for visible keys.
func defaultLines() []string {
	lines := []string{
		"# repl configuration",
		"# Edit values below; lines starting with # are ignored.",
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}

		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		if key.HideIfEmpty && key.Default == "" {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}

		lines, _ = Set(lines, key.Name, key.Default)
	}

	return lines
}
