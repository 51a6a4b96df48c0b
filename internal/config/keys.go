package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	KeyStart = "start" // First day index (inclusive)
	KeyEnd   = "end"   // Last day index (inclusive)
	KeyDir   = "dir"   // Base directory the Day folders are created in
)

// EnvPrefix is prepended to upper-cased keys when reading the environment (DAYSCAFFOLD_START)
const EnvPrefix = "DAYSCAFFOLD"

// Default values for configuration keys
var Defaults = map[string]interface{}{
	KeyStart: 1,
	KeyEnd:   10,
	KeyDir:   ".",
}
