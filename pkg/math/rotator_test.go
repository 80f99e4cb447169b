package math

import (
	"math"
	"testing"
)

func TestRotatorQuaternionRoundTrip(t *testing.T) {
	tests := []Rotator{
		{0, 0, 0},
		{0, 90, 0},
		{45, 0, 0},
		{0, 0, 30},
		{10, 20, 30},
		{-60, 135, -45},
		{89, -170, 10},
	}

	for _, r := range tests {
		got := r.Quaternion().Rotator()
		if !got.Equals(r, 0.01) {
			t.Errorf("round trip of %v = %v", r, got)
		}
	}
}

func TestRotatorQuaternionIsUnit(t *testing.T) {
	q := Rotator{Pitch: 33, Yaw: -77, Roll: 120}.Quaternion()
	if l := q.Dot(q); math.Abs(float64(l-1)) > 0.0001 {
		t.Errorf("|q|^2 = %v, want 1", l)
	}
}

func TestRotatorEquivalentTriples(t *testing.T) {
	// Components differing by 360 describe the same orientation.
	a := Rotator{Pitch: 10, Yaw: 350, Roll: 0}.Quaternion()
	b := Rotator{Pitch: 10, Yaw: -10, Roll: 0}.Quaternion()
	if !a.Equals(b, 0.0001) {
		t.Errorf("expected equal orientations, got %v and %v", a, b)
	}
}

func TestRotatorGimbalLock(t *testing.T) {
	for _, pitch := range []float32{90, -90} {
		r := Rotator{Pitch: pitch, Yaw: 40, Roll: 0}
		got := r.Quaternion().Rotator()
		if got.Pitch != pitch {
			t.Errorf("pitch %v: got %v", pitch, got.Pitch)
		}
		if !got.Quaternion().Equals(r.Quaternion(), 0.001) {
			t.Errorf("pitch %v: orientation changed, got %v", pitch, got)
		}
	}
}

func TestNormalizeAxis(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{350, -10},
		{-370, -10},
		{720, 0},
	}

	for _, tt := range tests {
		if got := NormalizeAxis(tt.in); math.Abs(float64(got-tt.want)) > 0.0001 {
			t.Errorf("NormalizeAxis(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRotatorVector(t *testing.T) {
	tests := []struct {
		r    Rotator
		want Vec3
	}{
		{Rotator{}, Vec3{X: 1}},
		{Rotator{Yaw: 90}, Vec3{Y: 1}},
		{Rotator{Pitch: 90}, Vec3{Z: 1}},
		{Rotator{Yaw: 180, Roll: 45}, Vec3{X: -1}},
	}

	for _, tt := range tests {
		if got := tt.r.Vector(); got.Distance(tt.want) > 0.0001 {
			t.Errorf("%v.Vector() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRotatorVectorMatchesQuaternion(t *testing.T) {
	r := Rotator{Pitch: 25, Yaw: -110, Roll: 60}
	want := r.Quaternion().RotateVector(Vec3{X: 1})
	if got := r.Vector(); got.Distance(want) > 0.0001 {
		t.Errorf("Vector() = %v, quaternion forward = %v", got, want)
	}
}

func TestRotatorFromVector(t *testing.T) {
	tests := []struct {
		dir  Vec3
		want Rotator
	}{
		{Vec3{}, Rotator{}},
		{Vec3{X: 5}, Rotator{}},
		{Vec3{Y: 2}, Rotator{Yaw: 90}},
		{Vec3{X: -1}, Rotator{Yaw: 180}},
		{Vec3{Z: 3}, Rotator{Pitch: 90}},
		{Vec3{X: 1, Z: 1}, Rotator{Pitch: 45}},
	}

	for _, tt := range tests {
		if got := RotatorFromVector(tt.dir); !got.Equals(tt.want, 0.001) {
			t.Errorf("RotatorFromVector(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}

	dir := Vec3{X: 3, Y: -4, Z: 2}.Normalize()
	if got := RotatorFromVector(dir).Vector(); got.Distance(dir) > 0.0001 {
		t.Errorf("forward of RotatorFromVector(%v) = %v", dir, got)
	}
}
