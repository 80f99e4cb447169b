// Package level builds scenes of entities from layout descriptions.
package level

import (
	"fmt"
	stdmath "math"
	"math/rand/v2"

	"github.com/Faultbox/gameplay-utils/internal/entity"
	"github.com/Faultbox/gameplay-utils/pkg/math"
)

// Placement is one entity to be spawned.
type Placement struct {
	Name     string
	Kind     entity.Kind
	Position math.Vec3
	Rotation math.Rotator
	Scale    math.Vec3
	Tags     []string
}

func newPlacement(name string, pos math.Vec3) Placement {
	return Placement{Name: name, Position: pos, Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Grid places rows*columns entities, columns along X and rows along Y,
// starting at origin.
func Grid(rows, columns int, spacingX, spacingY float32, origin math.Vec3) []Placement {
	if rows <= 0 || columns <= 0 {
		return nil
	}
	result := make([]Placement, 0, rows*columns)
	for row := range rows {
		for col := range columns {
			pos := origin.Add(math.Vec3{X: float32(col) * spacingX, Y: float32(row) * spacingY})
			result = append(result, newPlacement(fmt.Sprintf("grid_%d_%d", row, col), pos))
		}
	}
	return result
}

// Circle places count entities evenly on a horizontal circle. With
// faceCenter set each entity is turned to look at the center.
func Circle(count int, radius float32, center math.Vec3, faceCenter bool) []Placement {
	if count <= 0 {
		return nil
	}
	result := make([]Placement, 0, count)
	for i := range count {
		angle := 2 * stdmath.Pi * float64(i) / float64(count)
		sin, cos := stdmath.Sincos(angle)
		pos := center.Add(math.Vec3{X: radius * float32(cos), Y: radius * float32(sin)})

		p := newPlacement(fmt.Sprintf("circle_%d", i), pos)
		if faceCenter {
			p.Rotation = math.Rotator{Yaw: math.NormalizeAxis(float32(angle*180/stdmath.Pi) + 180)}
		}
		result = append(result, p)
	}
	return result
}

// ScatterOptions configures Scatter.
type ScatterOptions struct {
	Min, Max       math.Vec2
	Z              float32
	MinScale       float32
	MaxScale       float32
	RandomRotation bool
}

// Scatter places count entities uniformly inside the Min/Max rectangle.
func Scatter(rng *rand.Rand, count int, opts ScatterOptions) []Placement {
	if count <= 0 {
		return nil
	}
	if opts.MinScale == 0 && opts.MaxScale == 0 {
		opts.MinScale, opts.MaxScale = 1, 1
	}

	result := make([]Placement, 0, count)
	for i := range count {
		pos := math.Vec3{
			X: lerp(opts.Min.X, opts.Max.X, rng.Float32()),
			Y: lerp(opts.Min.Y, opts.Max.Y, rng.Float32()),
			Z: opts.Z,
		}
		p := newPlacement(fmt.Sprintf("scatter_%d", i), pos)

		s := lerp(opts.MinScale, opts.MaxScale, rng.Float32())
		p.Scale = math.Vec3{X: s, Y: s, Z: s}
		if opts.RandomRotation {
			p.Rotation = math.Rotator{Yaw: math.NormalizeAxis(rng.Float32() * 360)}
		}
		result = append(result, p)
	}
	return result
}

// SplineOptions configures Spline. Offset moves each entity sideways from
// the path, along direction x up. RotationOffset is added to the
// path-aligned rotation, or used as the rotation when Align is false.
type SplineOptions struct {
	Offset         float32
	RotationOffset math.Rotator
	Align          bool
}

// Spline places count entities at even distances along the polyline
// through points, the first at the start and the last at the end. With
// Align set each entity faces along the path.
func Spline(points []math.Vec3, count int, opts SplineOptions) []Placement {
	if count <= 0 || len(points) == 0 {
		return nil
	}

	var length float32
	for i := 1; i < len(points); i++ {
		length += points[i].Distance(points[i-1])
	}
	var spacing float32
	if count > 1 {
		spacing = length / float32(count-1)
	}

	up := math.Vec3{Z: 1}
	result := make([]Placement, 0, count)
	for i := range count {
		pos, dir := alongPath(points, float32(i)*spacing)

		rot := opts.RotationOffset
		if opts.Align {
			rot = math.RotatorFromVector(dir).Add(opts.RotationOffset)
		}
		if opts.Offset != 0 {
			pos = pos.Add(dir.Cross(up).Normalize().Scale(opts.Offset))
		}

		p := newPlacement(fmt.Sprintf("spline_%d", i), pos)
		p.Rotation = rot
		result = append(result, p)
	}
	return result
}

// alongPath returns the point distance along the polyline and the unit
// direction of the segment it lies on. Zero-length segments are skipped.
func alongPath(points []math.Vec3, distance float32) (math.Vec3, math.Vec3) {
	var dir math.Vec3
	for i := 1; i < len(points); i++ {
		seg := points[i].Sub(points[i-1])
		l := seg.Length()
		if l == 0 {
			continue
		}
		dir = seg.Scale(1 / l)
		if distance <= l {
			return points[i-1].Add(dir.Scale(distance)), dir
		}
		distance -= l
	}
	return points[len(points)-1], dir
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Spawn adds an entity to m for every placement and returns them in order.
func Spawn(m *entity.Manager, placements []Placement) []*entity.Entity {
	spawned := make([]*entity.Entity, 0, len(placements))
	for _, p := range placements {
		e := entity.NewEntity(m.NextID(), p.Kind, p.Name)
		e.SetPosition(p.Position.X, p.Position.Y, p.Position.Z)
		e.SetRotation(p.Rotation)
		e.Scale = p.Scale
		e.Tags = p.Tags
		m.Add(e)
		spawned = append(spawned, e)
	}
	return spawned
}
