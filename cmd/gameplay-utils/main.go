// gameplay-utils evaluates rotation smoothing, jump solving and
// nearest-entity queries from the command line or from YAML scripts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gameplay-utils/internal/config"
	"github.com/Faultbox/gameplay-utils/internal/entity"
	"github.com/Faultbox/gameplay-utils/internal/level"
	"github.com/Faultbox/gameplay-utils/internal/logger"
	"github.com/Faultbox/gameplay-utils/internal/script"
)

// stdout receives command output. Tests swap it out.
var stdout io.Writer = os.Stdout

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal(err)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	command, rest := args[0], args[1:]
	logger.Debug("command", zap.String("name", command), zap.Strings("args", rest))

	switch command {
	case "interp":
		err = cmdInterp(ctx, cfg, rest)
	case "jump":
		err = cmdJump(ctx, cfg, rest)
	case "closest":
		err = cmdClosest(ctx, cfg, rest)
	case "run":
		err = cmdRun(ctx, cfg, rest)
	case "level", "ls":
		err = cmdLevel(cfg, rest)
	case "config":
		err = cmdConfig(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Sync()
		fatal(err)
	}
}

func printUsage() {
	fmt.Println(`gameplay-utils - gameplay math from the command line

Usage:
  gameplay-utils [global flags] <command> [options]

Commands:
  interp [-dt s] [-speed v] <pitch yaw roll> <pitch yaw roll>
                                      One frame of rotation smoothing
  jump [-gravity g] [-time s] <x y z> <x y z>
                                      Launch velocity from start to target
  closest [-tag t] <x y z>            Nearest entity in the level
  run [-o text|yaml] <script.yaml>    Run a script of steps
  level <level.yaml>                  List the entities a level spawns
  config [-o path]                    Write the effective configuration

Global flags:
  -config, -debug, -gravity, -jump-time, -interp-speed, -level, -workers

Examples:
  gameplay-utils interp -dt 0.5 -speed 1 0 0 0 0 90 0
  gameplay-utils jump -gravity -1000 -time 1 0 0 0 100 0 100
  gameplay-utils -level arena.yaml closest -tag enemy 0 0 0
  gameplay-utils run demo.yaml
  gameplay-utils -gravity -1620 config`)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdInterp(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("interp", flag.ExitOnError)
	dt := fs.Float64("dt", float64(cfg.Interp.TickSeconds()), "Frame time in seconds")
	speed := fs.Float64("speed", float64(cfg.Interp.Speed), "Interpolation speed")
	fs.Parse(args)

	v, err := parseVectors(fs.Args(), 2, "interp <pitch yaw roll> <pitch yaw roll>")
	if err != nil {
		return err
	}
	return runSteps(ctx, cfg, nil, "text", script.Step{
		Op:        "interp",
		Current:   v[0],
		Target:    v[1],
		DeltaTime: script.Float(float32(*dt)),
		Speed:     script.Float(float32(*speed)),
	})
}

func cmdJump(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("jump", flag.ExitOnError)
	gravity := fs.Float64("gravity", float64(cfg.Physics.GravityZ), "Gravity along Z")
	jumpTime := fs.Float64("time", float64(cfg.Physics.JumpTime), "Time to reach the target in seconds")
	fs.Parse(args)

	v, err := parseVectors(fs.Args(), 2, "jump <x y z> <x y z>")
	if err != nil {
		return err
	}
	return runSteps(ctx, cfg, nil, "text", script.Step{
		Op:       "jump",
		Start:    v[0],
		Target:   v[1],
		GravityZ: script.Float(float32(*gravity)),
		JumpTime: script.Float(float32(*jumpTime)),
	})
}

func cmdClosest(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("closest", flag.ExitOnError)
	tag := fs.String("tag", "", "Only consider entities with this tag")
	fs.Parse(args)

	v, err := parseVectors(fs.Args(), 1, "closest <x y z>")
	if err != nil {
		return err
	}

	scene := entity.NewManager()
	if cfg.Level.File != "" {
		f, err := level.Load(cfg.Level.File)
		if err != nil {
			return err
		}
		if _, err := f.Populate(scene); err != nil {
			return err
		}
	}
	return runSteps(ctx, cfg, scene, "text", script.Step{Op: "closest", Source: v[0], Tag: *tag})
}

func cmdRun(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	output := fs.String("o", "text", "Output format: text or yaml")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: gameplay-utils run <script.yaml>")
	}
	s, err := script.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	scene := entity.NewManager()
	if cfg.Level.File != "" && s.Level == nil {
		if s.Level, err = level.Load(cfg.Level.File); err != nil {
			return err
		}
	}
	return printResults(ctx, cfg, scene, *output, s)
}

func cmdLevel(cfg *config.Config, args []string) error {
	path := cfg.Level.File
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("usage: gameplay-utils level <level.yaml>")
	}

	f, err := level.Load(path)
	if err != nil {
		return err
	}
	scene := entity.NewManager()
	spawned, err := f.Populate(scene)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Level:    %s\n", f.Name)
	fmt.Fprintf(stdout, "Entities: %d\n\n", len(spawned))
	for _, e := range spawned {
		p := e.Position
		fmt.Fprintf(stdout, "  %-4d %-12s %-20s (%g, %g, %g) yaw %g %v\n",
			e.ID, e.Kind, e.Name, p.X, p.Y, p.Z, e.Rotation.Yaw, e.Tags)
	}
	return nil
}

// cmdConfig writes the configuration after file and flags are applied.
func cmdConfig(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	output := fs.String("o", "", "Write here instead of the user config directory")
	fs.Parse(args)

	path := *output
	var err error
	if path == "" {
		path = config.DefaultPath()
		err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(stdout, "Config written to %s\n", path)
	return nil
}

func runSteps(ctx context.Context, cfg *config.Config, scene *entity.Manager, output string, steps ...script.Step) error {
	return printResults(ctx, cfg, scene, output, &script.Script{Steps: steps})
}

func printResults(ctx context.Context, cfg *config.Config, scene *entity.Manager, output string, s *script.Script) error {
	results, err := script.NewRunner(cfg, scene, nil).Run(ctx, s)
	if err != nil {
		return err
	}

	switch output {
	case "yaml":
		data, err := yaml.Marshal(results)
		if err != nil {
			return err
		}
		if _, err := stdout.Write(data); err != nil {
			return err
		}
	default:
		for _, r := range results {
			fmt.Fprintln(stdout, r)
		}
	}
	return nil
}

// parseVectors reads n triples of floats.
func parseVectors(args []string, n int, usage string) ([]*script.Vector, error) {
	if len(args) != 3*n {
		return nil, fmt.Errorf("usage: gameplay-utils %s", usage)
	}
	result := make([]*script.Vector, n)
	for i := range n {
		var v script.Vector
		for j := range 3 {
			f, err := strconv.ParseFloat(args[3*i+j], 32)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", args[3*i+j], err)
			}
			v[j] = float32(f)
		}
		result[i] = &v
	}
	return result, nil
}
