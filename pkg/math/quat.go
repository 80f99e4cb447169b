package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
// q and -q describe the same orientation.
type Quat struct {
	X, Y, Z, W float32
}

// Pitch is reported as exactly ±90 when |Z*X - W*Y| exceeds this.
const singularityThreshold = 0.4999995

// slerpLinearThreshold is the |dot| above which Slerp falls back to a
// normalized lerp, avoiding division by sin(theta) near zero.
const slerpLinearThreshold = 0.9995

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Neg returns -q, which represents the same orientation.
func (q Quat) Neg() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Slerp performs spherical linear interpolation between two quaternions
// along the shorter arc. t should be in range [0, 1]. The result is
// normalized.
func (q Quat) Slerp(other Quat, t float32) Quat {
	dot := q.Dot(other)

	// Negate one side so the interpolation takes the shorter path
	if dot < 0 {
		other = other.Neg()
		dot = -dot
	}

	if dot > slerpLinearThreshold {
		return Quat{
			X: q.X + t*(other.X-q.X),
			Y: q.Y + t*(other.Y-q.Y),
			Z: q.Z + t*(other.Z-q.Z),
			W: q.W + t*(other.W-q.W),
		}.Normalize()
	}

	theta0 := math.Acos(float64(dot))
	theta := theta0 * float64(t)
	sinTheta := math.Sin(theta)
	sinTheta0 := math.Sin(theta0)

	s0 := float32(math.Cos(theta) - float64(dot)*sinTheta/sinTheta0)
	s1 := float32(sinTheta / sinTheta0)

	return Quat{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}.Normalize()
}

// Mul multiplies two quaternions (combines rotations).
// The result applies other first, then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// RotateVector rotates v by q. q must be normalized.
func (q Quat) RotateVector(v Vec3) Vec3 {
	axis := Vec3{q.X, q.Y, q.Z}
	t := axis.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(axis.Cross(t))
}

// AngularDistance returns the angle in radians of the rotation taking q
// to other. Both must be normalized.
func (q Quat) AngularDistance(other Quat) float32 {
	if q.Dot(other) < 0 {
		other = other.Neg()
	}
	// atan2 of the chord lengths stays accurate near zero, where acos of
	// the dot product does not.
	dx, dy, dz, dw := float64(q.X-other.X), float64(q.Y-other.Y), float64(q.Z-other.Z), float64(q.W-other.W)
	sx, sy, sz, sw := float64(q.X+other.X), float64(q.Y+other.Y), float64(q.Z+other.Z), float64(q.W+other.W)
	diff := math.Sqrt(dx*dx + dy*dy + dz*dz + dw*dw)
	sum := math.Sqrt(sx*sx + sy*sy + sz*sz + sw*sw)
	return float32(4 * math.Atan2(diff, sum))
}

// Equals reports whether q and other describe the same orientation within
// tolerance per component, treating q and -q as equal.
func (q Quat) Equals(other Quat, tolerance float32) bool {
	same := abs32(q.X-other.X) <= tolerance && abs32(q.Y-other.Y) <= tolerance &&
		abs32(q.Z-other.Z) <= tolerance && abs32(q.W-other.W) <= tolerance
	if same {
		return true
	}
	return abs32(q.X+other.X) <= tolerance && abs32(q.Y+other.Y) <= tolerance &&
		abs32(q.Z+other.Z) <= tolerance && abs32(q.W+other.W) <= tolerance
}

// Rotator converts q to Euler angles in degrees. At pitch ±90 the roll is
// folded so that yaw is preserved.
func (q Quat) Rotator() Rotator {
	x, y, z, w := float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)

	singularity := z*x - w*y
	yawY := 2 * (w*z + x*y)
	yawX := 1 - 2*(y*y+z*z)

	yaw := math.Atan2(yawY, yawX) * radToDeg

	switch {
	case singularity < -singularityThreshold:
		return Rotator{
			Pitch: -90,
			Yaw:   float32(yaw),
			Roll:  NormalizeAxis(float32(-yaw - 2*math.Atan2(x, w)*radToDeg)),
		}
	case singularity > singularityThreshold:
		return Rotator{
			Pitch: 90,
			Yaw:   float32(yaw),
			Roll:  NormalizeAxis(float32(yaw - 2*math.Atan2(x, w)*radToDeg)),
		}
	}

	return Rotator{
		Pitch: float32(math.Asin(2*singularity) * radToDeg),
		Yaw:   float32(yaw),
		Roll:  float32(math.Atan2(-2*(w*x+y*z), 1-2*(x*x+y*y)) * radToDeg),
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
