package math

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Rotator is an orientation as Euler angles in degrees.
//
// Yaw turns about Z (up), Pitch about Y and Roll about X. Rotators whose
// components differ by multiples of 360 describe the same orientation.
type Rotator struct {
	Pitch, Yaw, Roll float32
}

// Quaternion returns the unit quaternion for r.
func (r Rotator) Quaternion() Quat {
	sp, cp := math.Sincos(float64(r.Pitch) * degToRad / 2)
	sy, cy := math.Sincos(float64(r.Yaw) * degToRad / 2)
	sr, cr := math.Sincos(float64(r.Roll) * degToRad / 2)

	return Quat{
		X: float32(cr*sp*sy - sr*cp*cy),
		Y: float32(-cr*sp*cy - sr*cp*sy),
		Z: float32(cr*cp*sy - sr*sp*cy),
		W: float32(cr*cp*cy + sr*sp*sy),
	}
}

// Add returns the component-wise sum.
func (r Rotator) Add(other Rotator) Rotator {
	return Rotator{r.Pitch + other.Pitch, r.Yaw + other.Yaw, r.Roll + other.Roll}
}

// Normalize wraps every axis into (-180, 180].
func (r Rotator) Normalize() Rotator {
	return Rotator{NormalizeAxis(r.Pitch), NormalizeAxis(r.Yaw), NormalizeAxis(r.Roll)}
}

// Equals compares normalized axes within tolerance degrees. It does not
// detect distinct Euler triples that describe the same orientation; use
// Quaternion().Equals for that.
func (r Rotator) Equals(other Rotator, tolerance float32) bool {
	d := r.Sub(other).Normalize()
	return abs32(d.Pitch) <= tolerance && abs32(d.Yaw) <= tolerance && abs32(d.Roll) <= tolerance
}

// Sub returns the component-wise difference.
func (r Rotator) Sub(other Rotator) Rotator {
	return Rotator{r.Pitch - other.Pitch, r.Yaw - other.Yaw, r.Roll - other.Roll}
}

// Vector returns the unit forward direction. Roll does not affect it.
func (r Rotator) Vector() Vec3 {
	sp, cp := math.Sincos(float64(r.Pitch) * degToRad)
	sy, cy := math.Sincos(float64(r.Yaw) * degToRad)
	return Vec3{float32(cp * cy), float32(cp * sy), float32(sp)}
}

// RotatorFromVector returns the rotator whose forward vector points along
// dir. Roll is zero. A zero vector gives the zero rotator.
func RotatorFromVector(dir Vec3) Rotator {
	x, y, z := float64(dir.X), float64(dir.Y), float64(dir.Z)
	return Rotator{
		Pitch: float32(math.Atan2(z, math.Sqrt(x*x+y*y)) * radToDeg),
		Yaw:   float32(math.Atan2(y, x) * radToDeg),
	}
}

// NormalizeAxis wraps an angle in degrees into (-180, 180].
func NormalizeAxis(angle float32) float32 {
	a := math.Mod(float64(angle), 360)
	if a < 0 {
		a += 360
	}
	if a > 180 {
		a -= 360
	}
	return float32(a)
}
