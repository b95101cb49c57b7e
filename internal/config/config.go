// Package config handles conversion settings loaded from YAML files and
// command-line flags.
package config

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/cube-d/cubed"
	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap"
)

// Config holds all conversion settings.
type Config struct {
	Conversion ConversionConfig `yaml:"conversion"`
	Blocks     cubed.BlockSet   `yaml:"blocks"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ConversionConfig holds mesh placement and pipeline settings.
type ConversionConfig struct {
	Scale           [3]float64      `yaml:"scale"`
	RotationAxis    [3]float64      `yaml:"rotation_axis"`
	RotationDegrees float64         `yaml:"rotation_degrees"`
	Translation     [3]float64      `yaml:"translation"`
	TraceMode       cubed.TraceMode `yaml:"trace_mode"`
	FillInterior    bool            `yaml:"fill_interior"`
	SeedBoundary    bool            `yaml:"seed_boundary"`
	Concurrency     int             `yaml:"concurrency"` // 0 uses every CPU
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Conversion: ConversionConfig{
			Scale:        [3]float64{1, 1, 1},
			RotationAxis: [3]float64{0, 1, 0},
			TraceMode:    cubed.ThinSmoothed,
		},
		Blocks: cubed.DefaultBlockSet,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks that the settings describe a usable conversion.
func (c *Config) Validate() error {
	for _, s := range c.Conversion.Scale {
		if !(s > 0) || math.IsInf(s, 0) {
			return errors.Wrapf(cubed.ErrInvalidInput, "scale %v must be positive", c.Conversion.Scale)
		}
	}
	if c.Conversion.RotationDegrees != 0 && c.rotationAxis().Norm() == 0 {
		return errors.Wrap(cubed.ErrInvalidInput, "rotation axis must be non-zero")
	}
	if c.Conversion.Concurrency < 0 {
		return errors.Wrapf(cubed.ErrInvalidInput, "concurrency %d must not be negative",
			c.Conversion.Concurrency)
	}
	return nil
}

// Transform creates the transformation applied to scaled mesh coordinates:
// a rotation about the origin followed by a translation.
func (c *Config) Transform() model3d.Transform {
	var res model3d.JoinedTransform
	if c.Conversion.RotationDegrees != 0 {
		angle := c.Conversion.RotationDegrees * math.Pi / 180
		res = append(res, &model3d.Matrix3Transform{
			Matrix: model3d.NewMatrix3Rotation(c.rotationAxis().Normalize(), angle),
		})
	}
	if offset := model3d.NewCoord3DArray(c.Conversion.Translation); offset.Norm() != 0 {
		res = append(res, &model3d.Translate{Offset: offset})
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// Options creates conversion options from the config.
func (c *Config) Options(logger *zap.Logger) (*cubed.Options, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &cubed.Options{
		Scale:        model3d.NewCoord3DArray(c.Conversion.Scale),
		Transform:    c.Transform(),
		TraceMode:    c.Conversion.TraceMode,
		FillInterior: c.Conversion.FillInterior,
		SeedBoundary: c.Conversion.SeedBoundary,
		Blocks:       c.Blocks,
		Concurrency:  c.Conversion.Concurrency,
		Logger:       logger,
	}, nil
}

func (c *Config) rotationAxis() model3d.Coord3D {
	return model3d.NewCoord3DArray(c.Conversion.RotationAxis)
}
