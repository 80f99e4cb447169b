package gameplay

import "github.com/Faultbox/gameplay-utils/pkg/math"

// SmoothRotatorInterp moves current toward target along the shortest arc.
//
// The fraction of the way covered is deltaTime*interpSpeed clamped to
// [0, 1], so a large frame time never overshoots the target. A fraction of
// zero returns current unchanged.
func SmoothRotatorInterp(current, target math.Rotator, deltaTime, interpSpeed float32) math.Rotator {
	alpha := clamp01(deltaTime * interpSpeed)
	if alpha == 0 || current == target {
		return current
	}

	q := current.Quaternion().Slerp(target.Quaternion(), alpha)
	return q.Rotator()
}

func clamp01(v float32) float32 {
	switch {
	case v > 1:
		return 1
	case v >= 0:
		return v
	default:
		// also catches NaN
		return 0
	}
}
