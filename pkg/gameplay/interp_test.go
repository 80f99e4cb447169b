package gameplay

import (
	stdmath "math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/gameplay-utils/pkg/math"
)

const quatTolerance = 0.001

func randomRotator(rng *rand.Rand) math.Rotator {
	return math.Rotator{
		Pitch: rng.Float32()*170 - 85,
		Yaw:   rng.Float32()*720 - 360,
		Roll:  rng.Float32()*360 - 180,
	}
}

func sameOrientation(t *testing.T, want, got math.Rotator) {
	t.Helper()
	assert.Truef(t, want.Quaternion().Equals(got.Quaternion(), quatTolerance),
		"orientation mismatch: want %v, got %v", want, got)
}

func TestSmoothRotatorInterp(t *testing.T) {
	t.Run("full step reaches target", func(t *testing.T) {
		got := SmoothRotatorInterp(math.Rotator{}, math.Rotator{Yaw: 90}, 1, 1)
		assert.True(t, got.Equals(math.Rotator{Yaw: 90}, 0.01), "got %v", got)
	})
	t.Run("half step lands halfway", func(t *testing.T) {
		got := SmoothRotatorInterp(math.Rotator{}, math.Rotator{Yaw: 90}, 0.5, 1)
		assert.True(t, got.Equals(math.Rotator{Yaw: 45}, 0.01), "got %v", got)
	})
	t.Run("takes the short way across 360", func(t *testing.T) {
		got := SmoothRotatorInterp(math.Rotator{Yaw: 10}, math.Rotator{Yaw: 350}, 0.5, 1)
		assert.True(t, got.Equals(math.Rotator{}, 0.01), "got %v", got)
		assert.False(t, got.Equals(math.Rotator{Yaw: 180}, 1), "took the long arc: %v", got)
	})
	t.Run("overshooting step clamps to target", func(t *testing.T) {
		target := math.Rotator{Pitch: 20, Yaw: -45, Roll: 5}
		got := SmoothRotatorInterp(math.Rotator{}, target, 10, 3)
		sameOrientation(t, target, got)
	})
	t.Run("identical rotators return current", func(t *testing.T) {
		r := math.Rotator{Pitch: 12, Yaw: 400, Roll: -3}
		assert.Equal(t, r, SmoothRotatorInterp(r, r, 0.1, 5))
	})
	t.Run("non-positive inputs return current", func(t *testing.T) {
		current := math.Rotator{Pitch: 1, Yaw: 2, Roll: 3}
		target := math.Rotator{Yaw: 90}
		assert.Equal(t, current, SmoothRotatorInterp(current, target, 0.5, 0))
		assert.Equal(t, current, SmoothRotatorInterp(current, target, 0.5, -2))
		assert.Equal(t, current, SmoothRotatorInterp(current, target, -1, 2))
		assert.Equal(t, current, SmoothRotatorInterp(current, target, 0, 2))
	})
}

func TestSmoothRotatorInterpEndpoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		a, b := randomRotator(rng), randomRotator(rng)
		speed := rng.Float32()*10 + 0.1

		assert.Equal(t, a, SmoothRotatorInterp(a, b, 0, speed))
		sameOrientation(t, b, SmoothRotatorInterp(a, b, 1/speed+0.01, speed))
	}
}

func TestSmoothRotatorInterpMonotoneProgress(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	steps := []float32{0, 0.25, 0.5, 0.75, 1}
	const speed = 2

	for range 200 {
		a, b := randomRotator(rng), randomRotator(rng)
		qb := b.Quaternion()
		if a.Quaternion().AngularDistance(qb) < 0.1 {
			continue
		}

		prev := float32(stdmath.Inf(1))
		for _, s := range steps {
			got := SmoothRotatorInterp(a, b, s/speed, speed)
			d := got.Quaternion().AngularDistance(qb)
			assert.Lessf(t, d, prev, "no progress at t=%v from %v to %v", s, a, b)
			prev = d
		}
	}
}

func TestSmoothRotatorInterpShortestArc(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	checked := 0

	for checked < 50 {
		a, b := randomRotator(rng), randomRotator(rng)
		qa, qb := a.Quaternion(), b.Quaternion()
		if qa.Dot(qb) >= 0 {
			continue
		}
		checked++

		mid := SmoothRotatorInterp(a, b, 0.5, 1).Quaternion()
		limit := float32(stdmath.Pi/2) + 0.001
		assert.LessOrEqual(t, mid.AngularDistance(qa), limit)
		assert.LessOrEqual(t, mid.AngularDistance(qb), limit)
	}
}
