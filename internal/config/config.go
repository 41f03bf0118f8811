// Package config loads and validates runtime configuration from an
// optional TOML file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the full runtime configuration.
type Config struct {
	World WorldConfig `toml:"world"`
	Game  GameConfig  `toml:"game"`
	SSH   SSHConfig   `toml:"ssh"`
	Audio AudioConfig `toml:"audio"`
	Log   LogConfig   `toml:"log"`
}

// WorldConfig sets the simulation bounds in world units.
type WorldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// GameConfig tunes a session.
type GameConfig struct {
	Lives    int   `toml:"lives"`
	Seed     int64 `toml:"seed"` // 0 seeds from the clock
	TickRate int   `toml:"tick_rate"`
}

// SSHConfig configures the SSH front end.
type SSHConfig struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	HostKeyPath string `toml:"host_key_path"`
}

// AudioConfig configures the sound effect sink.
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0 - 1.0
}

// LogConfig configures server logging.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		World: WorldConfig{Width: 800, Height: 600},
		Game:  GameConfig{Lives: 3, TickRate: 60},
		SSH:   SSHConfig{Host: "::", Port: "2222", HostKeyPath: ".ssh/asterfield_host_key"},
		Audio: AudioConfig{Enabled: true, Volume: 0.7},
		Log:   LogConfig{Level: "info"},
	}
}

// Load builds the configuration: defaults, then the TOML file at path
// (or $ASTERFIELD_CONFIG) if one exists, then environment overrides.
// Returns an error for unreadable files or invalid values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("ASTERFIELD_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	cfg.SSH.Host = GetEnv("ASTERFIELD_SSH_HOST", cfg.SSH.Host)
	cfg.SSH.Port = GetEnv("ASTERFIELD_SSH_PORT", cfg.SSH.Port)
	cfg.SSH.HostKeyPath = GetEnv("ASTERFIELD_SSH_HOST_KEY", cfg.SSH.HostKeyPath)
	cfg.Log.Level = GetEnv("ASTERFIELD_LOG_LEVEL", cfg.Log.Level)
	if v := os.Getenv("ASTERFIELD_AUDIO"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = enabled
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fails fast on malformed configuration.
func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world bounds must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Game.Lives < 0 {
		return fmt.Errorf("config: lives must not be negative, got %d", c.Game.Lives)
	}
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("config: tick rate must be positive, got %d", c.Game.TickRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio volume must be in [0,1], got %g", c.Audio.Volume)
	}
	return nil
}

// GetEnv returns the value of the environment variable named by key, or
// fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
