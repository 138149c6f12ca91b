package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in UI (Session, Logging, Colors)
	Hidden      bool   // Hidden keys are not written to a fresh config file
	HideIfEmpty bool   // Written commented out when a fresh config file is created
}

// Configuration key names.
const (
	KeyPrompt       = "prompt"
	KeyDocsPath     = "docs_path"
	KeyHistory      = "history"
	KeyHistoryLimit = "history_limit"
	KeyEnableLog    = "enable_log"
	KeyLogLevel     = "log_level"
	KeyColorInfo    = "color_info"
	KeyColorMuted   = "color_muted"
	KeyColorError   = "color_error"
	KeyColorHeader  = "color_header"
)

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
var ConfigKeys = []ConfigKey{
	// Session
	{
		Name:        "prompt",
		Default:     "> ",
		Description: "Prompt shown before each input line",
		Section:     "Session",
	},
	{
		Name:        "docs_path",
		Default:     "",
		Description: "Comma-separated documentation files merged into the built-in help",
		Section:     "Session",
		HideIfEmpty: true,
	},
	{
		Name:        "history",
		Default:     "true",
		Description: "Record executed lines in the history database (true/false)",
		Section:     "Session",
	},
	{
		Name:        "history_limit",
		Default:     "20",
		Description: "Number of lines shown by 'history' without an argument",
		Section:     "Session",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// Colors
	{
		Name:        "color_info",
		Default:     "",
		Description: "Color for command names (ANSI 0-255, empty for the palette default)",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Default:     "",
		Description: "Color for secondary text (ANSI 0-255, empty for the palette default)",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Default:     "",
		Description: "Color for diagnostics (ANSI 0-255, empty for the palette default)",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_header",
		Default:     "",
		Description: "Style for help headers (ANSI 0-255 or 'bold', empty for the palette default)",
		Section:     "Colors",
		HideIfEmpty: true,
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}
