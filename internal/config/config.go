package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"searchbox/internal/eventbus"
	"searchbox/internal/suggest"
)

const (
	DefaultDebounceMs  = 300
	DefaultBlurDelayMs = 100
	DefaultWidth       = 40
	DefaultPlaceholder = "Search..."
	minWidth           = 12
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Search     SearchSettings `toml:"search"`
	Candidates []string       `toml:"candidates"`
}

// SearchSettings tunes the search widget
type SearchSettings struct {
	DebounceMs     int    `toml:"debounce_ms"`
	BlurDelayMs    int    `toml:"blur_delay_ms"`
	MaxSuggestions int    `toml:"max_suggestions"`
	Placeholder    string `toml:"placeholder"`
	Width          int    `toml:"width"`
}

// DebounceDelay returns the quiet period before filtering runs
func (s SearchSettings) DebounceDelay() time.Duration {
	return time.Duration(s.DebounceMs) * time.Millisecond
}

// BlurDelay returns the grace period before focus loss hides suggestions
func (s SearchSettings) BlurDelay() time.Duration {
	return time.Duration(s.BlurDelayMs) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "searchbox", "config.toml")
}

// NewConfigService creates a config service bound to path.
// An empty path selects DefaultPath. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file.
// A missing file yields DefaultConfig.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:           cs.filePath,
			CandidateCount: len(cfg.Candidates),
		})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep their default values
	cfg := DefaultConfig()
	cfg.Candidates = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Normalize replaces out-of-range values with defaults
func (c *Config) Normalize() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Search.DebounceMs <= 0 {
		c.Search.DebounceMs = DefaultDebounceMs
	}
	if c.Search.BlurDelayMs <= 0 {
		c.Search.BlurDelayMs = DefaultBlurDelayMs
	}
	// the panel never lists more than DefaultLimit rows
	if c.Search.MaxSuggestions <= 0 || c.Search.MaxSuggestions > suggest.DefaultLimit {
		c.Search.MaxSuggestions = suggest.DefaultLimit
	}
	if c.Search.Width < minWidth {
		c.Search.Width = DefaultWidth
	}
	if len(c.Candidates) == 0 {
		c.Candidates = append([]string(nil), suggest.DefaultCandidates...)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			DebounceMs:     DefaultDebounceMs,
			BlurDelayMs:    DefaultBlurDelayMs,
			MaxSuggestions: suggest.DefaultLimit,
			Placeholder:    DefaultPlaceholder,
			Width:          DefaultWidth,
		},
		Candidates: append([]string(nil), suggest.DefaultCandidates...),
	}
}
