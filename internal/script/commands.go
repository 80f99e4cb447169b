package script

import (
	"context"
	"fmt"
	stdmath "math"

	"github.com/Faultbox/gameplay-utils/internal/entity"
	"github.com/Faultbox/gameplay-utils/pkg/gameplay"
	"github.com/Faultbox/gameplay-utils/pkg/math"
)

func builtins() []Command {
	return []Command{
		{Name: "interp", Run: runInterp},
		{Name: "track", Run: runTrack},
		{Name: "jump", Run: runJump},
		{Name: "closest", Run: runClosest},
		{Name: "spawn", Mutates: true, Run: runSpawn},
		{Name: "rotate", Mutates: true, Run: runRotate},
	}
}

// runInterp advances one frame of rotation smoothing.
func runInterp(_ context.Context, env *Env, step Step) (Result, error) {
	current, err := currentRotation(env, step)
	if err != nil {
		return Result{}, err
	}
	if step.Target == nil {
		return Result{}, missing("target")
	}

	dt := valueOr(step.DeltaTime, env.Config.Interp.TickSeconds())
	speed := valueOr(step.Speed, env.Config.Interp.Speed)

	r := gameplay.SmoothRotatorInterp(current, step.Target.Rotator(), dt, speed)
	return Result{Rotation: &r}, nil
}

// runTrack repeats interp every tick until the rotation is within
// tolerance of the target or the frame cap is hit.
func runTrack(ctx context.Context, env *Env, step Step) (Result, error) {
	current, err := currentRotation(env, step)
	if err != nil {
		return Result{}, err
	}
	if step.Target == nil {
		return Result{}, missing("target")
	}

	cfg := env.Config.Interp
	dt := valueOr(step.DeltaTime, cfg.TickSeconds())
	speed := valueOr(step.Speed, cfg.Speed)
	if !(dt*speed > 0) {
		return Result{}, fmt.Errorf("track never converges with delta_time %v and speed %v", dt, speed)
	}

	target := step.Target.Rotator()
	goal := target.Quaternion()
	tolerance := cfg.Tolerance * degToRad

	frames := 0
	for current.Quaternion().AngularDistance(goal) > tolerance {
		if frames >= cfg.MaxFrames {
			return Result{}, fmt.Errorf("rotation not within %v degrees after %d frames", cfg.Tolerance, frames)
		}
		if frames%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		current = gameplay.SmoothRotatorInterp(current, target, dt, speed)
		frames++
	}

	return Result{Rotation: &current, Frames: frames}, nil
}

// runJump solves the launch velocity and reports apex and landing.
func runJump(_ context.Context, env *Env, step Step) (Result, error) {
	if step.Target == nil {
		return Result{}, missing("target")
	}
	target := step.Target.Vec3()
	gravity := valueOr(step.GravityZ, env.Config.Physics.GravityZ)
	jumpTime := valueOr(step.JumpTime, env.Config.Physics.JumpTime)

	var start, v math.Vec3
	switch {
	case step.Start != nil:
		if err := gameplay.ValidateJumpTime(jumpTime); err != nil {
			return Result{}, err
		}
		start = step.Start.Vec3()
		v = gameplay.CalculateJumpVelocity(start, target, gravity, jumpTime)
	case step.Entity != "":
		e, err := lookupEntity(env, step.Entity)
		if err != nil {
			return Result{}, err
		}
		if v, err = e.JumpVelocityTo(target, gravity, jumpTime); err != nil {
			return Result{}, err
		}
		start = e.Location()
	default:
		return Result{}, missing("start")
	}

	landing := gameplay.TrajectoryAt(start, v, gravity, jumpTime)
	res := Result{Velocity: &v, Landing: &landing}
	if t, ok := gameplay.ApexTime(v, gravity); ok && t <= jumpTime {
		apex := gameplay.TrajectoryAt(start, v, gravity, t)
		res.Apex = &apex
	}
	return res, nil
}

// runClosest finds the nearest scene entity, optionally restricted to a
// tag. When the source is an entity, that entity is not a candidate.
func runClosest(_ context.Context, env *Env, step Step) (Result, error) {
	source, err := sourcePosition(env, step, step.Source, "source")
	if err != nil {
		return Result{}, err
	}

	var exclude []*entity.Entity
	if step.Source == nil {
		exclude = append(exclude, env.Scene.FindByName(step.Entity))
	}

	var (
		e        *entity.Entity
		distance float32
		found    bool
	)
	if step.Tag != "" {
		e, distance, found = env.Scene.ClosestByTag(source, step.Tag, exclude...)
	} else {
		e, distance, found = env.Scene.Closest(source, exclude...)
	}

	if !found {
		return Result{Distance: &distance}, nil
	}
	return Result{Found: true, Entity: e.Name, Distance: &distance}, nil
}

// runRotate turns a scene entity one frame toward target.
func runRotate(_ context.Context, env *Env, step Step) (Result, error) {
	if step.Entity == "" {
		return Result{}, missing("entity")
	}
	if step.Target == nil {
		return Result{}, missing("target")
	}
	e, err := lookupEntity(env, step.Entity)
	if err != nil {
		return Result{}, err
	}

	dt := valueOr(step.DeltaTime, env.Config.Interp.TickSeconds())
	speed := valueOr(step.Speed, env.Config.Interp.Speed)

	r, err := env.Scene.RotateToward(e.ID, step.Target.Rotator(), dt, speed)
	if err != nil {
		return Result{}, err
	}
	return Result{Entity: e.Name, Rotation: &r}, nil
}

// runSpawn adds an entity to the scene.
func runSpawn(_ context.Context, env *Env, step Step) (Result, error) {
	if step.Position == nil {
		return Result{}, missing("position")
	}
	kind, ok := entity.ParseKind(step.Kind)
	if !ok {
		return Result{}, fmt.Errorf("unknown kind %q", step.Kind)
	}

	e := entity.NewEntity(env.Scene.NextID(), kind, step.Name)
	if e.Name == "" {
		e.Name = fmt.Sprintf("%s_%d", kind, e.ID)
	}
	p := step.Position.Vec3()
	e.SetPosition(p.X, p.Y, p.Z)
	if step.Rotation != nil {
		e.SetRotation(step.Rotation.Rotator())
	}
	e.Tags = step.Tags
	env.Scene.Add(e)

	return Result{Entity: e.Name}, nil
}

const degToRad = stdmath.Pi / 180

func valueOr(v *float32, fallback float32) float32 {
	if v != nil {
		return *v
	}
	return fallback
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, field)
}

func lookupEntity(env *Env, name string) (*entity.Entity, error) {
	e := env.Scene.FindByName(name)
	if e == nil {
		return nil, fmt.Errorf("entity %q not found", name)
	}
	return e, nil
}

func currentRotation(env *Env, step Step) (math.Rotator, error) {
	if step.Current != nil {
		return step.Current.Rotator(), nil
	}
	if step.Entity == "" {
		return math.Rotator{}, missing("current")
	}
	e, err := lookupEntity(env, step.Entity)
	if err != nil {
		return math.Rotator{}, err
	}
	return e.Rotation, nil
}

func sourcePosition(env *Env, step Step, explicit *Vector, field string) (math.Vec3, error) {
	if explicit != nil {
		return explicit.Vec3(), nil
	}
	if step.Entity == "" {
		return math.Vec3{}, missing(field)
	}
	e, err := lookupEntity(env, step.Entity)
	if err != nil {
		return math.Vec3{}, err
	}
	return e.Location(), nil
}
