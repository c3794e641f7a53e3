package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Client    ClientConfig    `toml:"client"`
	Locale    LocaleConfig    `toml:"locale"`
	Auth      AuthConfig      `toml:"auth"`
	Transport TransportConfig `toml:"transport"`
	Paging    PagingConfig    `toml:"paging"`
	Cache     CacheConfig     `toml:"cache"`
}

// ClientConfig describes the first-party client the outbound requests impersonate.
type ClientConfig struct {
	Name      string `toml:"name"`
	Version   string `toml:"version"`
	UserAgent string `toml:"user_agent"`
}

// LocaleConfig contains the language and region sent with every request.
type LocaleConfig struct {
	HL string `toml:"hl"`
	GL string `toml:"gl"`
}

// AuthConfig points at on-disk credential material.
type AuthConfig struct {
	BrowserFile string `toml:"browser_file"`
	OAuthFile   string `toml:"oauth_file"`
}

// TransportConfig contains timeout, retry and pacing settings.
type TransportConfig struct {
	TimeoutSeconds int     `toml:"timeout_seconds"`
	MaxRetries     int     `toml:"max_retries"`
	RateLimit      float64 `toml:"rate_limit"`
}

// PagingConfig bounds continuation-following so a cursor that never ends
// cannot spin forever.
type PagingConfig struct {
	MaxPages int `toml:"max_pages"`
}

// CacheConfig contains local entity cache settings.
type CacheConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
