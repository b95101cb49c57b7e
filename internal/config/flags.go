package config

import (
	"flag"

	"github.com/unixpickle/cube-d/cubed"
)

// Flags holds command-line overrides registered on a FlagSet.
//
// Only flags which were explicitly passed override the config.
type Flags struct {
	fs *flag.FlagSet

	config       string
	debug        bool
	logFile      string
	scale        float64
	rotation     float64
	traceMode    string
	fillInterior bool
	seedBoundary bool
	concurrency  int
}

// RegisterFlags adds the config flags to a FlagSet.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.config, "config", "", "path to YAML config file")
	fs.BoolVar(&f.debug, "debug", false, "enable debug logging")
	fs.StringVar(&f.logFile, "log-file", "", "also write logs to this file")
	fs.Float64Var(&f.scale, "scale", 1, "uniform mesh scale (cells per mesh unit)")
	fs.Float64Var(&f.rotation, "rotation", 0, "rotation in degrees about the configured axis")
	fs.StringVar(&f.traceMode, "trace-mode", cubed.ThinSmoothed.String(),
		"trace mode: thin, thick, thin_smoothed, thick_smoothed_up, thick_smoothed_down")
	fs.BoolVar(&f.fillInterior, "fill", false, "fill enclosed cells with cubes")
	fs.BoolVar(&f.seedBoundary, "seed-boundary", false,
		"search for exterior space from every boundary cell")
	fs.IntVar(&f.concurrency, "concurrency", 0, "number of Goroutines (0 uses every CPU)")
	return f
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	return f.config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) error {
	var err error
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if f.debug {
				cfg.Logging.Level = "debug"
			}
		case "log-file":
			cfg.Logging.LogFile = f.logFile
		case "scale":
			cfg.Conversion.Scale = [3]float64{f.scale, f.scale, f.scale}
		case "rotation":
			cfg.Conversion.RotationDegrees = f.rotation
		case "trace-mode":
			mode, parseErr := cubed.ParseTraceMode(f.traceMode)
			if parseErr != nil {
				err = parseErr
			}
			cfg.Conversion.TraceMode = mode
		case "fill":
			cfg.Conversion.FillInterior = f.fillInterior
		case "seed-boundary":
			cfg.Conversion.SeedBoundary = f.seedBoundary
		case "concurrency":
			cfg.Conversion.Concurrency = f.concurrency
		}
	})
	return err
}
