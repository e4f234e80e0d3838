package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the demo application configuration
type Config struct {
	Version    int        `toml:"version"`
	Candidates []string   `toml:"candidates"` // item universe offered by the dropdown
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	InitialSelected []string `toml:"initial_selected"`
	AnnounceClearMs int      `toml:"announce_clear_ms"`
	ShowStatusLine  bool     `toml:"show_status_line"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "multiselect")
	os.MkdirAll(dir, 0755)

	return &configService{
		filePath: filepath.Join(dir, "config.toml"),
	}
}

// DefaultConfig returns the built-in demo configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Candidates: []string{
			"Black", "Red", "Green", "Blue", "Orange",
			"Purple", "Magenta", "Yellow", "White",
		},
		UISettings: UISettings{
			AnnounceClearMs: 500,
			ShowStatusLine:  true,
		},
	}
}

// Load reads the config from the default path, falling back to defaults
// when no file exists yet.
func (c *configService) Load() (*Config, error) {
	return c.LoadFromPath(c.filePath)
}

// Save writes the config to the default path
func (c *configService) Save(config *Config) error {
	return c.SaveToPath(config, c.filePath)
}

// LoadFromPath reads the config from a specific path
func (c *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// SaveToPath writes the config to a specific path
func (c *configService) SaveToPath(config *Config, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
