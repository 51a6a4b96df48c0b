// Package config resolves the day range and base directory for dayscaffold.
// Values are layered by viper: defaults, an optional YAML file, DAYSCAFFOLD_*
// environment variables, then command-line flags.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zoro11031/day-scaffold/internal/common"
)

// Config wraps a private viper instance so tests don't share global state
type Config struct {
	v *viper.Viper
}

// New creates a Config with defaults and environment lookup enabled
func New() *Config {
	v := viper.New()
	for key, value := range Defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	return &Config{v: v}
}

// BindFlags binds the start, end and dir flags from the given flag set.
// Flags that are missing from the set are skipped.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range []string{KeyStart, KeyEnd, KeyDir} {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := c.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", key, err)
		}
	}
	return nil
}

// Load reads the YAML config file at path. An empty path is a no-op.
func (c *Config) Load(path string) error {
	if path == "" {
		return nil
	}

	c.v.SetConfigFile(path)
	c.v.SetConfigType("yaml")
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Set overrides a key, taking precedence over every other source
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Range returns the configured start and end indices
func (c *Config) Range() (start, end int, err error) {
	start, err = c.intValue(KeyStart)
	if err != nil {
		return 0, 0, err
	}
	end, err = c.intValue(KeyEnd)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Dir returns the base directory, falling back to the default when blank
func (c *Config) Dir() string {
	dir := c.v.GetString(KeyDir)
	if common.ValidateNotEmpty(dir) != nil {
		return Defaults[KeyDir].(string)
	}
	return dir
}

// ConfigFileUsed returns the path of the loaded config file, if any
func (c *Config) ConfigFileUsed() string {
	return c.v.ConfigFileUsed()
}

func (c *Config) intValue(key string) (int, error) {
	n, err := common.ParseInteger(c.v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
