package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/waypoint/internal/catalog"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	Tours    map[string]TourConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds log file settings. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// TourConfig is the eligibility flag set for one tour.
type TourConfig struct {
	Enabled bool
	Repeat  bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Autostart  bool
	MountDelay time.Duration `mapstructure:"mount_delay"`
}

// Tour returns the settings for name. Tours absent from the config are enabled.
func (c Config) Tour(name string) TourConfig {
	if tc, ok := c.Tours[name]; ok {
		return tc
	}
	return TourConfig{Enabled: true}
}

// Load reads configuration from file and env. Env var overrides use prefix WAYPOINT_.
func Load() (Config, error) {
	v := viper.New()
	home := os.Getenv("HOME")

	// default values
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "waypoint", "waypoint.db"))
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "waypoint", "waypoint.log"))
	v.SetDefault("log.level", "info")
	for _, name := range catalog.Names() {
		v.SetDefault("tours."+name+".enabled", true)
		v.SetDefault("tours."+name+".repeat", false)
	}
	v.SetDefault("ui.autostart", true)
	v.SetDefault("ui.mount_delay", "150ms")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WAYPOINT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "waypoint"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WAYPOINT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// a missing default config file is fine, an explicit one must exist
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Path returns the config file Save writes to.
func Path() string {
	if path := os.Getenv("WAYPOINT_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "waypoint", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	for name, tc := range cfg.Tours {
		v.Set("tours."+name+".enabled", tc.Enabled)
		v.Set("tours."+name+".repeat", tc.Repeat)
	}
	v.Set("ui.autostart", cfg.UI.Autostart)
	v.Set("ui.mount_delay", cfg.UI.MountDelay.String())

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
