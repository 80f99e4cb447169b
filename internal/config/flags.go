package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagGravity     = flag.Float64("gravity", 0, "Gravity along Z (negative is down)")
	flagJumpTime    = flag.Float64("jump-time", 0, "Default jump time in seconds")
	flagInterpSpeed = flag.Float64("interp-speed", 0, "Default rotation interpolation speed")
	flagLevel       = flag.String("level", "", "Level file to load")
	flagWorkers     = flag.Int("workers", 0, "Parallel script workers")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagGravity != 0 {
		cfg.Physics.GravityZ = float32(*flagGravity)
	}
	if *flagJumpTime > 0 {
		cfg.Physics.JumpTime = float32(*flagJumpTime)
	}
	if *flagInterpSpeed > 0 {
		cfg.Interp.Speed = float32(*flagInterpSpeed)
	}
	if *flagLevel != "" {
		cfg.Level.File = *flagLevel
	}
	if *flagWorkers > 0 {
		cfg.Script.Workers = *flagWorkers
	}
}
