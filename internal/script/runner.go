package script

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/gameplay-utils/internal/config"
	"github.com/Faultbox/gameplay-utils/internal/entity"
	"github.com/Faultbox/gameplay-utils/internal/logger"
)

// Runner executes scripts against a scene.
type Runner struct {
	env      *Env
	registry *Registry
	log      *zap.Logger
}

// NewRunner creates a runner. A nil registry means DefaultRegistry and a
// nil scene means an empty one.
func NewRunner(cfg *config.Config, scene *entity.Manager, registry *Registry) *Runner {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if scene == nil {
		scene = entity.NewManager()
	}
	return &Runner{
		env:      &Env{Scene: scene, Config: cfg},
		registry: registry,
		log:      logger.Named("script"),
	}
}

// Scene returns the scene the runner works on.
func (r *Runner) Scene() *entity.Manager {
	return r.env.Scene
}

// Run populates the script's level, if any, then runs its steps.
//
// Consecutive steps that do not change the scene run concurrently, at most
// Config.Script.Workers at a time. A scene-changing step waits for all
// earlier steps and runs alone. Results are returned in step order. The
// first failing step cancels the rest and its error is returned.
func (r *Runner) Run(ctx context.Context, s *Script) ([]Result, error) {
	started := time.Now()

	if s.Level != nil {
		spawned, err := s.Level.Populate(r.env.Scene)
		if err != nil {
			return nil, fmt.Errorf("populating level: %w", err)
		}
		r.log.Debug("level populated", zap.String("name", s.Level.Name), zap.Int("entities", len(spawned)))
	}

	commands := make([]Command, len(s.Steps))
	for i, step := range s.Steps {
		cmd, err := r.registry.Lookup(step.Op)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		commands[i] = cmd
	}

	results := make([]Result, len(s.Steps))
	batchStart := 0
	for i := 0; i <= len(s.Steps); i++ {
		if i < len(s.Steps) && !commands[i].Mutates {
			continue
		}
		if err := r.runBatch(ctx, s.Steps, commands, results, batchStart, i); err != nil {
			return nil, err
		}
		if i < len(s.Steps) {
			if err := r.runStep(ctx, s.Steps[i], commands[i], results, i); err != nil {
				return nil, err
			}
		}
		batchStart = i + 1
	}

	r.log.Info("script finished",
		zap.Int("steps", len(s.Steps)),
		zap.Int("entities", r.env.Scene.Count()),
		zap.Duration("took", time.Since(started)),
	)
	return results, nil
}

// runBatch runs steps [from, to) concurrently.
func (r *Runner) runBatch(ctx context.Context, steps []Step, commands []Command, results []Result, from, to int) error {
	if from >= to {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.env.Config.Script.Workers, 1))
	for i := from; i < to; i++ {
		g.Go(func() error {
			return r.runStep(ctx, steps[i], commands[i], results, i)
		})
	}
	return g.Wait()
}

func (r *Runner) runStep(ctx context.Context, step Step, cmd Command, results []Result, index int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := cmd.Run(ctx, r.env, step)
	if err != nil {
		r.log.Warn("step failed", zap.Int("index", index), zap.String("op", step.Op), zap.Error(err))
		return fmt.Errorf("step %d (%s): %w", index, step.Op, err)
	}

	res.Index = index
	res.Op = step.Op
	results[index] = res
	r.log.Debug("step done", zap.Int("index", index), zap.Stringer("result", res))
	return nil
}
