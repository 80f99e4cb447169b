package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gameplay-utils/internal/level"
	"github.com/Faultbox/gameplay-utils/pkg/math"
)

// Script is a level to set up followed by steps to run.
type Script struct {
	Level *level.File `yaml:"level"`
	Steps []Step      `yaml:"steps"`
}

// Step is one command invocation. Which fields are read depends on Op.
type Step struct {
	Op string `yaml:"op"`

	// Entity names an entity in the scene whose position or rotation is
	// used when Start, Source or Current are not given.
	Entity string `yaml:"entity"`

	Current  *Vector `yaml:"current"`
	Target   *Vector `yaml:"target"`
	Start    *Vector `yaml:"start"`
	Source   *Vector `yaml:"source"`
	Position *Vector `yaml:"position"`
	Rotation *Vector `yaml:"rotation"`

	DeltaTime *float32 `yaml:"delta_time"`
	Speed     *float32 `yaml:"speed"`
	GravityZ  *float32 `yaml:"gravity_z"`
	JumpTime  *float32 `yaml:"jump_time"`

	Name string   `yaml:"name"`
	Kind string   `yaml:"kind"`
	Tag  string   `yaml:"tag"`
	Tags []string `yaml:"tags"`
}

// Vector is a YAML triple. It reads as a position or as pitch, yaw, roll
// depending on the field.
type Vector [3]float32

// Vec3 returns v as a position.
func (v Vector) Vec3() math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Rotator returns v as pitch, yaw, roll.
func (v Vector) Rotator() math.Rotator {
	return math.Rotator{Pitch: v[0], Yaw: v[1], Roll: v[2]}
}

// Float returns a pointer to v.
func Float(v float32) *float32 {
	return &v
}

// Parse decodes a script from YAML.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	for i, step := range s.Steps {
		if step.Op == "" {
			return nil, fmt.Errorf("step %d: %w: op", i, ErrMissingArgument)
		}
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}
	return s, nil
}
