package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Host HostConfig
	UI   UIConfig
	Log  LogConfig
}

// HostConfig points at the external host: the feed websocket and the
// submission API.
type HostConfig struct {
	FeedURL string `mapstructure:"feed_url"`
	APIURL  string `mapstructure:"api_url"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AvailableGlyph    string `mapstructure:"available_glyph"`
	DisconnectedGlyph string `mapstructure:"disconnected_glyph"`
}

// LogConfig holds the diagnostic sink settings. The TUI owns stdout, so
// diagnostics go to a file.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix HUDDLE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("host.feed_url", "ws://localhost:8080/feeds")
	v.SetDefault("host.api_url", "http://localhost:8080")
	v.SetDefault("ui.available_glyph", "●")
	v.SetDefault("ui.disconnected_glyph", "○")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "huddle", "huddle.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("HUDDLE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "huddle"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HUDDLE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
