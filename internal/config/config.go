package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage backends understood by the repository factory
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// List output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config holds all configuration options for the habit tracker
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Tracker     TrackerConfig     `yaml:"tracker"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// StorageConfig holds key-value storage configuration
type StorageConfig struct {
	Backend        string        `yaml:"backend" env:"HT_STORAGE_BACKEND"`
	Dir            string        `yaml:"dir" env:"HT_DB_DIR"`
	Filename       string        `yaml:"filename" env:"HT_DB_FILENAME"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"HT_DB_DIR_PERMISSIONS"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"HT_DB_WRITE_TIMEOUT"`
	Redis          RedisConfig   `yaml:"redis"`
}

// RedisConfig holds settings for the redis backend
type RedisConfig struct {
	Addr      string `yaml:"addr" env:"HT_REDIS_ADDR"`
	Password  string `yaml:"password" env:"HT_REDIS_PASSWORD"`
	DB        int    `yaml:"db" env:"HT_REDIS_DB"`
	KeyPrefix string `yaml:"key_prefix" env:"HT_REDIS_KEY_PREFIX"`
}

// TrackerConfig holds habit tracker behaviour
type TrackerConfig struct {
	CelebrationDuration time.Duration `yaml:"celebration_duration" env:"HT_CELEBRATION_DURATION"`
	// Timezone is the single reference zone used to decide what "today" is.
	Timezone string `yaml:"timezone" env:"HT_TIMEZONE"`
	// HabitNameMaxLength caps renamed habit names in runes; 0 leaves them unlimited.
	HabitNameMaxLength int `yaml:"habit_name_max_length" env:"HT_HABIT_NAME_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	ListFormat string `yaml:"list_format" env:"HT_LIST_FORMAT"`
	DateFormat string `yaml:"date_format" env:"HT_DATE_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"HT_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"HT_APP_VERBOSE"`
}

// DefaultDir returns ~/.ht, or .ht when the home directory is unknown
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".ht"
	}
	return filepath.Join(homeDir, ".ht")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:        BackendSQLite,
			Dir:            DefaultDir(),
			Filename:       "ht.db",
			DirPermissions: 0755,
			WriteTimeout:   5 * time.Second,
			Redis: RedisConfig{
				Addr:      "localhost:6379",
				KeyPrefix: "ht:",
			},
		},
		Tracker: TrackerConfig{
			CelebrationDuration: 3 * time.Second,
			Timezone:            "Local",
			HabitNameMaxLength:  0,
		},
		Display: DisplayConfig{
			ListFormat: FormatTable,
			DateFormat: "Mon Jan 2 2006",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// Location resolves the tracker's reference timezone
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Tracker.Timezone)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("HT_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("HT_DB_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("HT_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if perms := os.Getenv("HT_DB_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}
	if timeout := os.Getenv("HT_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}
	if addr := os.Getenv("HT_REDIS_ADDR"); addr != "" {
		c.Storage.Redis.Addr = addr
	}
	if password := os.Getenv("HT_REDIS_PASSWORD"); password != "" {
		c.Storage.Redis.Password = password
	}
	if db := os.Getenv("HT_REDIS_DB"); db != "" {
		c.Storage.Redis.DB = ParseIntWithFallback(db, c.Storage.Redis.DB)
	}
	if prefix, ok := os.LookupEnv("HT_REDIS_KEY_PREFIX"); ok {
		c.Storage.Redis.KeyPrefix = prefix
	}

	// Tracker configuration
	if d := os.Getenv("HT_CELEBRATION_DURATION"); d != "" {
		c.Tracker.CelebrationDuration = ParseDurationWithFallback(d, c.Tracker.CelebrationDuration)
	}
	if tz := os.Getenv("HT_TIMEZONE"); tz != "" {
		c.Tracker.Timezone = tz
	}
	if maxLen := os.Getenv("HT_HABIT_NAME_MAX"); maxLen != "" {
		c.Tracker.HabitNameMaxLength = ParseIntWithFallback(maxLen, c.Tracker.HabitNameMaxLength)
	}

	// Display configuration
	if format := os.Getenv("HT_LIST_FORMAT"); format != "" {
		c.Display.ListFormat = format
	}
	if format := os.Getenv("HT_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	// Application configuration
	if timeout := os.Getenv("HT_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("HT_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.Dir == "" {
			return &ConfigError{Field: "storage.dir", Message: "database directory cannot be empty"}
		}
		if c.Storage.Filename == "" {
			return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
		}
	case BackendRedis:
		if c.Storage.Redis.Addr == "" {
			return &ConfigError{Field: "storage.redis.addr", Message: "redis address cannot be empty"}
		}
		if c.Storage.Redis.DB < 0 {
			return &ConfigError{Field: "storage.redis.db", Message: "redis database index cannot be negative"}
		}
	case BackendMemory:
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of sqlite, redis, memory"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Tracker.CelebrationDuration <= 0 {
		return &ConfigError{Field: "tracker.celebration_duration", Message: "celebration duration must be positive"}
	}
	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "tracker.timezone", Message: "unknown timezone " + c.Tracker.Timezone}
	}
	if c.Tracker.HabitNameMaxLength < 0 {
		return &ConfigError{Field: "tracker.habit_name_max_length", Message: "habit name maximum length cannot be negative"}
	}

	if c.Display.ListFormat != FormatTable && c.Display.ListFormat != FormatJSON {
		return &ConfigError{Field: "display.list_format", Message: "list format must be table or json"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
