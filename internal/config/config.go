// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Interp  InterpConfig  `yaml:"interp"`
	Level   LevelConfig   `yaml:"level"`
	Script  ScriptConfig  `yaml:"script"`
	Logging LoggingConfig `yaml:"logging"`
}

// PhysicsConfig holds defaults for jump solving.
type PhysicsConfig struct {
	GravityZ float32 `yaml:"gravity_z"` // world units/s^2, negative is down
	JumpTime float32 `yaml:"jump_time"` // seconds
}

// InterpConfig holds defaults for rotation smoothing.
type InterpConfig struct {
	Speed     float32 `yaml:"speed"`
	TickRate  int     `yaml:"tick_rate"` // frames per second for track
	Tolerance float32 `yaml:"tolerance"` // degrees
	MaxFrames int     `yaml:"max_frames"`
}

// LevelConfig holds the scene to load.
type LevelConfig struct {
	File string `yaml:"file"`
}

// ScriptConfig holds script runner settings.
type ScriptConfig struct {
	Workers int `yaml:"workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			GravityZ: -980,
			JumpTime: 1.0,
		},
		Interp: InterpConfig{
			Speed:     5.0,
			TickRate:  60,
			Tolerance: 0.01,
			MaxFrames: 600,
		},
		Script: ScriptConfig{
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// TickSeconds returns the frame time implied by TickRate.
func (c InterpConfig) TickSeconds() float32 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float32(c.TickRate)
}
