package driven

// ConfigStore provides access to site configuration.
// Keys are flattened with dots, e.g. "site.base_url".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when missing.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 when missing.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false when missing.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice value, or nil when missing.
	GetStringSlice(key string) []string

	// Set stores a configuration value in memory.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage. A missing file is not an error.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
