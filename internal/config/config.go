package config

import (
	"fmt"
	"os"

	"github.com/decred/slog"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// CD audio settings
	CDMusic CDMusicConfig `yaml:"cd_music"`

	// Joystick settings
	Joystick JoystickConfig `yaml:"joystick"`

	// Host engine settings
	Engine EngineConfig `yaml:"engine"`

	// Logging settings
	Log LogConfig `yaml:"log"`
}

// CDMusicConfig represents CD audio settings
type CDMusicConfig struct {
	Enabled bool `yaml:"enabled"`
	Volume  int  `yaml:"volume"` // Passed through to the driver unvalidated
}

// JoystickConfig represents joystick settings
type JoystickConfig struct {
	Enabled bool `yaml:"enabled"`
}

// MaxTicRate bounds engine.tic_rate. Doom runs at 35.
const MaxTicRate = 1000

// EngineConfig represents host engine settings
type EngineConfig struct {
	TicRate int `yaml:"tic_rate"` // Frames per second of the input loop
}

// LogConfig represents logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		CDMusic: CDMusicConfig{
			Enabled: true,
			Volume:  8,
		},
		Joystick: JoystickConfig{
			Enabled: true,
		},
		Engine: EngineConfig{
			TicRate: 35,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from file. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values the engine cannot run with
func (c *Config) Validate() error {
	if c.Engine.TicRate <= 0 || c.Engine.TicRate > MaxTicRate {
		return fmt.Errorf("engine.tic_rate must be between 1 and %d, got %d", MaxTicRate, c.Engine.TicRate)
	}
	if _, ok := slog.LevelFromString(c.Log.Level); !ok {
		return fmt.Errorf("unknown log level: %s", c.Log.Level)
	}
	return nil
}
