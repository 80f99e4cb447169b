package level

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gameplay-utils/internal/entity"
	"github.com/Faultbox/gameplay-utils/internal/logger"
	"github.com/Faultbox/gameplay-utils/pkg/math"
)

// ErrUnknownLayout is returned for layout kinds other than grid, circle,
// scatter and spline.
var ErrUnknownLayout = errors.New("unknown layout")

// File is a level description as stored in YAML.
type File struct {
	Name    string       `yaml:"name"`
	Actors  []ActorSpec  `yaml:"actors"`
	Layouts []LayoutSpec `yaml:"layouts"`
}

// ActorSpec is a single explicitly placed actor.
type ActorSpec struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation"` // pitch, yaw, roll
	Scale    [3]float32 `yaml:"scale"`
	Tags     []string   `yaml:"tags"`
}

// LayoutSpec generates a group of actors. Unset face_center, align and
// random_rotation default to true and an unset scale_range to 0.8..1.2.
type LayoutSpec struct {
	Type           string       `yaml:"type"` // grid, circle, scatter or spline
	Name           string       `yaml:"name"`
	Kind           string       `yaml:"kind"`
	Tags           []string     `yaml:"tags"`
	Origin         [3]float32   `yaml:"origin"`
	Rows           int          `yaml:"rows"`
	Columns        int          `yaml:"columns"`
	Spacing        [2]float32   `yaml:"spacing"`
	Count          int          `yaml:"count"`
	Radius         float32      `yaml:"radius"`
	FaceCenter     *bool        `yaml:"face_center"`
	Min            [2]float32   `yaml:"min"`
	Max            [2]float32   `yaml:"max"`
	ScaleRange     *[2]float32  `yaml:"scale_range"`
	RandomRotation *bool        `yaml:"random_rotation"`
	Seed           uint64       `yaml:"seed"`
	Points         [][3]float32 `yaml:"points"`
	Offset         float32      `yaml:"offset"`
	RotationOffset [3]float32   `yaml:"rotation_offset"` // pitch, yaw, roll
	Align          *bool        `yaml:"align"`
}

var defaultScaleRange = [2]float32{0.8, 1.2}

// Load reads and parses a level file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing level %s: %w", path, err)
	}
	logger.Named("level").Debug("level loaded",
		zap.String("path", path),
		zap.Int("actors", len(f.Actors)),
		zap.Int("layouts", len(f.Layouts)),
	)
	return f, nil
}

// Parse decodes a level from YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Placements expands the file into placements: explicit actors first, then
// each layout in order.
func (f *File) Placements() ([]Placement, error) {
	var result []Placement

	for i, a := range f.Actors {
		kind, ok := entity.ParseKind(a.Kind)
		if !ok {
			return nil, fmt.Errorf("actor %d (%s): unknown kind %q", i, a.Name, a.Kind)
		}
		p := Placement{
			Name:     a.Name,
			Kind:     kind,
			Position: vec3(a.Position),
			Rotation: rotator(a.Rotation),
			Scale:    vec3(a.Scale),
			Tags:     a.Tags,
		}
		if p.Scale.IsZero() {
			p.Scale = math.Vec3{X: 1, Y: 1, Z: 1}
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("actor_%d", i)
		}
		result = append(result, p)
	}

	for i, l := range f.Layouts {
		group, err := l.placements()
		if err != nil {
			return nil, fmt.Errorf("layout %d: %w", i, err)
		}
		result = append(result, group...)
	}

	return result, nil
}

func (l LayoutSpec) placements() ([]Placement, error) {
	kind, ok := entity.ParseKind(l.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", l.Kind)
	}

	var group []Placement
	origin := vec3(l.Origin)
	switch l.Type {
	case "grid":
		group = Grid(l.Rows, l.Columns, l.Spacing[0], l.Spacing[1], origin)
	case "circle":
		group = Circle(l.Count, l.Radius, origin, boolOr(l.FaceCenter, true))
	case "scatter":
		scale := defaultScaleRange
		if l.ScaleRange != nil {
			scale = *l.ScaleRange
		}
		rng := rand.New(rand.NewPCG(l.Seed, l.Seed^0x9e3779b97f4a7c15))
		group = Scatter(rng, l.Count, ScatterOptions{
			Min:            math.Vec2{X: l.Min[0], Y: l.Min[1]},
			Max:            math.Vec2{X: l.Max[0], Y: l.Max[1]},
			Z:              l.Origin[2],
			MinScale:       scale[0],
			MaxScale:       scale[1],
			RandomRotation: boolOr(l.RandomRotation, true),
		})
	case "spline":
		points := make([]math.Vec3, len(l.Points))
		for i, p := range l.Points {
			points[i] = origin.Add(vec3(p))
		}
		group = Spline(points, l.Count, SplineOptions{
			Offset:         l.Offset,
			RotationOffset: rotator(l.RotationOffset),
			Align:          boolOr(l.Align, true),
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, l.Type)
	}

	for i := range group {
		group[i].Kind = kind
		group[i].Tags = l.Tags
		if l.Name != "" {
			group[i].Name = fmt.Sprintf("%s_%d", l.Name, i)
		}
	}
	return group, nil
}

// Populate expands f and spawns the result into m.
func (f *File) Populate(m *entity.Manager) ([]*entity.Entity, error) {
	placements, err := f.Placements()
	if err != nil {
		return nil, err
	}
	return Spawn(m, placements), nil
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func rotator(v [3]float32) math.Rotator {
	return math.Rotator{Pitch: v[0], Yaw: v[1], Roll: v[2]}
}

func boolOr(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
