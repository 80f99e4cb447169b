// Package entity implements the scene actors gameplay helpers operate on.
package entity

import (
	"slices"

	"github.com/Faultbox/gameplay-utils/pkg/gameplay"
	"github.com/Faultbox/gameplay-utils/pkg/math"
)

// Kind represents the type of entity.
type Kind uint8

const (
	KindActor Kind = iota
	KindStaticMesh
	KindPawn
	KindPickup
	KindMarker
)

var kindNames = map[Kind]string{
	KindActor:      "actor",
	KindStaticMesh: "static_mesh",
	KindPawn:       "pawn",
	KindPickup:     "pickup",
	KindMarker:     "marker",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind returns the Kind for a name produced by Kind.String.
// Empty names map to KindActor.
func ParseKind(name string) (Kind, bool) {
	if name == "" {
		return KindActor, true
	}
	for k, s := range kindNames {
		if s == name {
			return k, true
		}
	}
	return KindActor, false
}

// Entity represents an actor placed in the scene.
type Entity struct {
	ID       uint32
	Kind     Kind
	Name     string
	Position math.Vec3
	Rotation math.Rotator
	Scale    math.Vec3
	Tags     []string
}

// NewEntity creates a new entity with unit scale.
func NewEntity(id uint32, kind Kind, name string) *Entity {
	return &Entity{
		ID:    id,
		Kind:  kind,
		Name:  name,
		Scale: math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Location returns the entity position.
func (e *Entity) Location() math.Vec3 {
	return e.Position
}

// SetPosition sets the entity position.
func (e *Entity) SetPosition(x, y, z float32) {
	e.Position = math.Vec3{X: x, Y: y, Z: z}
}

// SetRotation sets the entity rotation.
func (e *Entity) SetRotation(r math.Rotator) {
	e.Rotation = r
}

// HasTag reports whether the entity carries tag.
func (e *Entity) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// JumpVelocityTo returns the launch velocity that lands the entity on
// target after jumpTime seconds.
func (e *Entity) JumpVelocityTo(target math.Vec3, gravityZ, jumpTime float32) (math.Vec3, error) {
	if err := gameplay.ValidateJumpTime(jumpTime); err != nil {
		return math.Vec3{}, err
	}
	return gameplay.CalculateJumpVelocity(e.Position, target, gravityZ, jumpTime), nil
}
