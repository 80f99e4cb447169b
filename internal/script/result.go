package script

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Faultbox/gameplay-utils/pkg/math"
)

// Result is the outcome of one step. Only the fields relevant to Op are set.
type Result struct {
	Index int    `yaml:"index"`
	Op    string `yaml:"op"`

	Rotation *math.Rotator `yaml:"rotation,omitempty"`
	Frames   int           `yaml:"frames,omitempty"`

	Velocity *math.Vec3 `yaml:"velocity,omitempty"`
	Apex     *math.Vec3 `yaml:"apex,omitempty"`
	Landing  *math.Vec3 `yaml:"landing,omitempty"`

	// Found and Distance are reported by closest. Distance is NoDistance
	// when nothing was found.
	Found    bool     `yaml:"found"`
	Entity   string   `yaml:"entity,omitempty"`
	Distance *float32 `yaml:"distance,omitempty"`
}

func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s:", r.Index, r.Op)

	switch {
	case r.Rotation != nil:
		if r.Entity != "" {
			fmt.Fprintf(&b, " %s", r.Entity)
		}
		fmt.Fprintf(&b, " rotation %s", formatRotator(*r.Rotation))
		if r.Frames > 0 {
			fmt.Fprintf(&b, " after %s frames", humanize.Comma(int64(r.Frames)))
		}
	case r.Velocity != nil:
		fmt.Fprintf(&b, " velocity %s", formatVec3(*r.Velocity))
		if r.Apex != nil {
			fmt.Fprintf(&b, " apex %s", formatVec3(*r.Apex))
		}
		if r.Landing != nil {
			fmt.Fprintf(&b, " lands %s", formatVec3(*r.Landing))
		}
	case r.Found && r.Distance != nil:
		fmt.Fprintf(&b, " %s at %s", r.Entity, formatFloat(*r.Distance))
	case r.Entity != "":
		fmt.Fprintf(&b, " %s", r.Entity)
	default:
		b.WriteString(" nothing found")
	}
	return b.String()
}

func formatFloat(v float32) string {
	return humanize.FtoaWithDigits(float64(v), 3)
}

func formatVec3(v math.Vec3) string {
	return fmt.Sprintf("(%s, %s, %s)", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
}

func formatRotator(r math.Rotator) string {
	return fmt.Sprintf("(pitch %s, yaw %s, roll %s)", formatFloat(r.Pitch), formatFloat(r.Yaw), formatFloat(r.Roll))
}
