package gameplay

import (
	"errors"
	"fmt"

	"github.com/Faultbox/gameplay-utils/pkg/math"
)

// ErrInvalidJumpTime is returned by ValidateJumpTime for non-positive times.
var ErrInvalidJumpTime = errors.New("jump time must be positive")

// CalculateJumpVelocity returns the launch velocity that carries a
// projectile from start to target in exactly jumpTime seconds under a
// constant acceleration of (0, 0, gravityZ) with no drag.
//
// gravityZ is usually negative. jumpTime must be positive; the function
// does not check it and a non-positive value yields non-finite components.
// Callers that take jumpTime from user input should run ValidateJumpTime
// first.
func CalculateJumpVelocity(start, target math.Vec3, gravityZ, jumpTime float32) math.Vec3 {
	delta := target.Sub(start)

	// Horizontal motion is unaccelerated.
	var horizontal math.Vec2
	if xy := delta.XY(); !xy.IsZero() {
		distance := xy.Length()
		horizontal = xy.Normalize().Scale(distance / jumpTime)
	}

	// z = z0 + vz*t + 0.5*g*t^2, solved for vz
	vz := (delta.Z - 0.5*gravityZ*jumpTime*jumpTime) / jumpTime

	return horizontal.Vec3(vz)
}

// ValidateJumpTime reports whether jumpTime can be passed to
// CalculateJumpVelocity.
func ValidateJumpTime(jumpTime float32) error {
	if !(jumpTime > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidJumpTime, jumpTime)
	}
	return nil
}

// TrajectoryAt returns the position at time t of a projectile launched
// from start with the given velocity.
func TrajectoryAt(start, velocity math.Vec3, gravityZ, t float32) math.Vec3 {
	return start.Add(velocity.Scale(t)).Add(math.Vec3{Z: 0.5 * gravityZ * t * t})
}

// ApexTime returns the time at which the vertical velocity reaches zero.
// The second result is false when the projectile never peaks: gravity is
// zero or points along the launch direction, or the apex lies in the past.
func ApexTime(velocity math.Vec3, gravityZ float32) (float32, bool) {
	if gravityZ == 0 {
		return 0, false
	}
	t := -velocity.Z / gravityZ
	if t < 0 {
		return 0, false
	}
	return t, true
}
