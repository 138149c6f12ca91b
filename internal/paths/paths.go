package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "footprint-repl"

// ConfigEnvVar overrides the config file location.
const ConfigEnvVar = "REPL_CONFIG"

// AppDataDir returns the application data directory for config and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// This is where the history database lives.
//   - macOS: ~/Library/Application Support/footprint-repl
//   - Linux: $XDG_DATA_HOME/footprint-repl or ~/.local/share/footprint-repl
//   - Windows: %LOCALAPPDATA%\footprint-repl
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the path of the key=value config file.
// REPL_CONFIG takes precedence over the default location.
func ConfigFilePath() (string, error) {
	if override := os.Getenv(ConfigEnvVar); override != "" {
		return override, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, appDirName, "replrc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "repl.log")
}

// HistoryDBPath returns the path to the command history database.
func HistoryDBPath() string {
	return filepath.Join(AppLocalDataDir(), "history.db")
}
