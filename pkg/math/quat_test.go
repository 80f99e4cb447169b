package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 0, Z: 1}, float32(math.Pi/2))

	// At t=0, should equal q1
	result0 := q1.Slerp(q2, 0)
	if !result0.Equals(q1, 0.001) {
		t.Errorf("Slerp at t=0 should equal q1, got %v", result0)
	}

	// At t=1, should equal q2
	result1 := q1.Slerp(q2, 1)
	if !result1.Equals(q2, 0.001) {
		t.Errorf("Slerp at t=1 should equal q2, got %v", result1)
	}

	// For a 90 degree rotation, halfway should be 45 degrees
	result5 := q1.Slerp(q2, 0.5)
	expectedW := float32(math.Cos(math.Pi / 8))
	if math.Abs(float64(result5.W-expectedW)) > 0.001 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, result5.W)
	}
}

func TestQuatSlerpShortestArc(t *testing.T) {
	q1 := QuatFromAxisAngle(Vec3{Z: 1}, float32(10*math.Pi/180))
	q2 := QuatFromAxisAngle(Vec3{Z: 1}, float32(350*math.Pi/180))
	if q1.Dot(q2) >= 0 {
		t.Fatalf("test setup: expected negative dot, got %v", q1.Dot(q2))
	}

	mid := q1.Slerp(q2, 0.5)
	if !mid.Equals(QuatIdentity(), 0.001) {
		t.Errorf("Slerp should pass through identity on the short arc, got %v", mid)
	}
}

func TestQuatSlerpNearlyEqual(t *testing.T) {
	q1 := QuatFromAxisAngle(Vec3{Z: 1}, 0.001)
	q2 := QuatFromAxisAngle(Vec3{Z: 1}, 0.002)

	got := q1.Slerp(q2, 0.5)
	length := got.Dot(got)
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("nlerp fallback should stay normalized, |q|^2 = %v", length)
	}
	if math.IsNaN(float64(got.W)) {
		t.Error("nlerp fallback produced NaN")
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatEqualsSignInvariant(t *testing.T) {
	q := Rotator{Pitch: 20, Yaw: 30, Roll: 40}.Quaternion()
	if !q.Equals(q.Neg(), 0.0001) {
		t.Error("q and -q should compare equal")
	}
	if q.Equals(QuatIdentity(), 0.0001) {
		t.Error("distinct rotations should not compare equal")
	}
}

func TestQuatAngularDistance(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(Vec3{Z: 1}, float32(math.Pi/3))

	got := a.AngularDistance(b)
	if math.Abs(float64(got)-math.Pi/3) > 0.001 {
		t.Errorf("AngularDistance = %v, want %v", got, math.Pi/3)
	}
	if d := a.AngularDistance(b.Neg()); math.Abs(float64(d-got)) > 0.0001 {
		t.Errorf("AngularDistance should ignore sign: %v vs %v", d, got)
	}
}

func TestQuatRotateVector(t *testing.T) {
	// 90 degrees of yaw turns +X into +Y
	q := Rotator{Yaw: 90}.Quaternion()
	got := q.RotateVector(Vec3{X: 1})
	if got.Distance(Vec3{Y: 1}) > 0.0001 {
		t.Errorf("RotateVector = %v, want (0,1,0)", got)
	}
}

func TestQuatMulComposesYaw(t *testing.T) {
	a := Rotator{Yaw: 30}.Quaternion()
	b := Rotator{Yaw: 60}.Quaternion()
	got := a.Mul(b).Rotator()
	if !got.Equals(Rotator{Yaw: 90}, 0.01) {
		t.Errorf("Mul = %v, want yaw 90", got)
	}
}
