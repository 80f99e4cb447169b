package gameplay

import (
	stdmath "math"

	"github.com/Faultbox/gameplay-utils/pkg/math"
)

// NoDistance is the distance FindClosest reports when nothing was found.
const NoDistance float32 = stdmath.MaxFloat32

// Locatable is anything with a world position. The zero value of the
// implementing type (typically a nil pointer) counts as a null reference.
type Locatable interface {
	comparable
	Location() math.Vec3
}

// FindClosest scans entities once and returns the non-null entity nearest
// to source together with its Euclidean distance.
//
// Null entries are skipped. On ties the first entity in slice order wins.
// When entities is empty or holds only nulls, found is false, closest is
// the zero value and distance is NoDistance.
func FindClosest[T Locatable](source math.Vec3, entities []T) (closest T, distance float32, found bool) {
	var null T
	distance = NoDistance

	for _, e := range entities {
		if e == null {
			continue
		}

		d := source.Distance(e.Location())
		if d < distance {
			distance = d
			closest = e
			found = true
		}
	}

	return closest, distance, found
}
