package game

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/lecture.yaml
var defaultConfigYAML []byte

// ErrInvalidConfig is wrapped by every validation failure returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Retention kinds accepted in RetentionConfig.Kind
const (
	RetentionScreen   = "screen"
	RetentionDistance = "distance"
)

// Config holds game configuration
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// Title is shown in the window title bar
	Title string `yaml:"title"`

	// Players is the number of player instances spawned at startup
	Players int `yaml:"players"`

	// PlayerSpacing is the horizontal gap between spawned players in pixels
	PlayerSpacing float64 `yaml:"player_spacing"`

	// PlayerSpeed is the movement rate in pixels per second
	PlayerSpeed float64 `yaml:"player_speed"`

	// PlayerHP is the starting health, also drives the rendered radius
	PlayerHP uint32 `yaml:"player_hp"`

	// BulletSpeed is the projectile speed in pixels per second
	BulletSpeed float64 `yaml:"bullet_speed"`

	// MaxFrameTime clamps the per-tick delta time in seconds
	MaxFrameTime float64 `yaml:"max_frame_time"`

	// ShowDebug enables per-player debug text at startup (F1 toggles it)
	ShowDebug bool `yaml:"show_debug"`

	Retention RetentionConfig `yaml:"retention"`

	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
}

// RetentionConfig selects the bullet retention policy
type RetentionConfig struct {
	Kind   string  `yaml:"kind"`   // "screen" or "distance"
	Margin float64 `yaml:"margin"` // screen: keep while x < width - margin
	Radius float64 `yaml:"radius"` // distance: keep while closer than radius to the first player
}

// DiagnosticsConfig controls FPS drop detection and profiling
type DiagnosticsConfig struct {
	// FPSWarnThreshold logs a warning when measured FPS drops below it (0 disables)
	FPSWarnThreshold float64 `yaml:"fps_warn_threshold"`

	// ProfileDir receives CPU profiles and traces captured on FPS drops (empty disables)
	ProfileDir string `yaml:"profile_dir"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   1024,
		ScreenHeight:  768,
		Title:         "Lecture",
		Players:       1,
		PlayerSpacing: 100.0,
		PlayerSpeed:   150.0,
		PlayerHP:      100,
		BulletSpeed:   200.0,
		MaxFrameTime:  0.1,
		ShowDebug:     false,
		Retention: RetentionConfig{
			Kind:   RetentionScreen,
			Margin: 50.0,
			Radius: 1000.0,
		},
		Diagnostics: DiagnosticsConfig{
			FPSWarnThreshold: 55.0,
		},
	}
}

// LoadConfig loads configuration.
// Search order: customPath -> ~/.lecture/config.yaml -> ./configs/lecture.yaml -> embedded default
// Fields missing from a file keep their DefaultConfig values.
func LoadConfig(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "lecture.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultConfig()
	}

	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lecture", filename)
}

// Validate checks the invariants the simulation relies on
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.Players < 1 {
		return fmt.Errorf("%w: players must be at least 1, got %d", ErrInvalidConfig, c.Players)
	}
	if c.PlayerSpeed <= 0 {
		return fmt.Errorf("%w: player_speed must be positive, got %g", ErrInvalidConfig, c.PlayerSpeed)
	}
	if c.BulletSpeed <= 0 {
		return fmt.Errorf("%w: bullet_speed must be positive, got %g", ErrInvalidConfig, c.BulletSpeed)
	}
	if c.MaxFrameTime <= 0 {
		return fmt.Errorf("%w: max_frame_time must be positive, got %g", ErrInvalidConfig, c.MaxFrameTime)
	}
	switch c.Retention.Kind {
	case RetentionScreen:
		if c.Retention.Margin < 0 {
			return fmt.Errorf("%w: retention margin must not be negative", ErrInvalidConfig)
		}
	case RetentionDistance:
		if c.Retention.Radius <= 0 {
			return fmt.Errorf("%w: retention radius must be positive", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown retention kind %q", ErrInvalidConfig, c.Retention.Kind)
	}
	return nil
}
