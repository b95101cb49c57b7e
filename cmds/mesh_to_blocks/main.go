package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unixpickle/cube-d/cubed"
	"github.com/unixpickle/cube-d/internal/config"
	"github.com/unixpickle/cube-d/internal/logger"
	"github.com/unixpickle/essentials"
	"go.uber.org/zap"
)

func main() {
	var gridPath string
	var saveConfigPath string
	flags := config.RegisterFlags(flag.CommandLine)
	flag.StringVar(&gridPath, "grid", "", "optional path to save the refined cell grid")
	flag.StringVar(&saveConfigPath, "save-config", "", "optional path to save the effective config")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: mesh_to_blocks [flags] <input.stl|input.off> <output.json>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	cfg, err := config.Load(flags)
	essentials.Must(err)

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer log.Sync()

	if saveConfigPath != "" {
		essentials.Must(cfg.SaveTo(saveConfigPath))
	}

	opts, err := cfg.Options(log)
	essentials.Must(err)
	opts.Progress = &cubed.LogProgress{Logger: log, Name: "rasterize"}

	log.Info("converting mesh", zap.String("input", inputPath),
		zap.Stringer("trace_mode", opts.TraceMode))
	result, err := cubed.ConvertFile(inputPath, opts)
	if err != nil {
		log.Fatal("conversion failed", zap.Error(err))
	}

	log.Info("saving blocks", zap.String("output", outputPath),
		zap.Int("count", len(result.Blocks)))
	essentials.Must(cubed.Save(outputPath, result.Blocks, cubed.WriteBlocks))

	if gridPath != "" {
		log.Info("saving grid", zap.String("output", gridPath))
		essentials.Must(cubed.Save(gridPath, result.Grid, cubed.WriteGrid))
	}
}
