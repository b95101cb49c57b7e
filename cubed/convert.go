package cubed

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap"
)

// Options configures a conversion.
type Options struct {
	// Scale is multiplied into model coordinates before Transform, so that
	// one unit after scaling is one cell. Every component must be positive.
	Scale model3d.Coord3D

	// Transform, if non-nil, is applied after scaling.
	Transform model3d.Transform

	TraceMode TraceMode

	// FillInterior emits enclosed cells as cubes.
	FillInterior bool

	// SeedBoundary starts the exterior search from every boundary cell
	// instead of the grid corners. See ClassifyOptions.
	SeedBoundary bool

	// Blocks names the emitted subtypes. The zero value means
	// DefaultBlockSet.
	Blocks BlockSet

	// Concurrency is the number of Goroutines to use for rasterization and
	// refinement. If 0, GOMAXPROCS is used.
	Concurrency int

	Progress Progress
	Logger   *zap.Logger
}

// DefaultOptions creates options with unit scale and no refinement.
func DefaultOptions() *Options {
	return &Options{
		Scale:  model3d.XYZ(1, 1, 1),
		Blocks: DefaultBlockSet,
	}
}

// A Result is the output of a conversion.
type Result struct {
	Grid   *Grid
	Blocks []BlockRecord
}

// ConvertFile loads a mesh file and converts it.
//
// Options are validated before the file is read.
func ConvertFile(path string, opts *Options) (*Result, error) {
	if opts != nil {
		if err := validateOptions(opts); err != nil {
			return nil, errors.Wrap(err, "convert file")
		}
	}
	group, err := LoadMesh(path)
	if err != nil {
		return nil, errors.Wrap(err, "convert file")
	}
	return Convert([]*MeshGroup{group}, opts)
}

// Convert turns mesh groups into blocks.
//
// All input validation happens before a grid is created, and failures wrap
// ErrInvalidInput.
func Convert(groups []*MeshGroup, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	blocks := opts.Blocks
	if blocks == (BlockSet{}) {
		blocks = DefaultBlockSet
	}

	tris, err := prepareTriangles(groups, opts)
	if err != nil {
		return nil, errors.Wrap(err, "convert")
	}
	logger.Debug("prepared mesh", zap.Int("triangles", len(tris)))

	rasterizer := &Rasterizer{
		Thick:       opts.TraceMode.Thick(),
		Concurrency: opts.Concurrency,
		Progress:    opts.Progress,
		Logger:      logger,
	}
	grid := rasterizer.Rasterize(tris)
	logger.Debug(
		"rasterized",
		zap.Ints("size", grid.Size[:]),
		zap.Ints("origin", grid.Origin[:]),
		zap.Int("solid", grid.CountCategory(CategoryCube)),
	)

	Classify(grid, &ClassifyOptions{SeedBoundary: opts.SeedBoundary, Logger: logger})

	if refiner := opts.TraceMode.Refiner(); refiner != nil {
		refiner.Concurrency = opts.Concurrency
		refiner.Logger = logger
		refiner.Refine(grid)
	}

	records, err := Emit(grid, blocks, opts.FillInterior)
	if err != nil {
		return nil, errors.Wrap(err, "convert")
	}
	logger.Debug("emitted blocks", zap.Int("count", len(records)))

	return &Result{Grid: grid, Blocks: records}, nil
}

// prepareTriangles scales and transforms every triangle, validating the
// options and resulting coordinates.
func prepareTriangles(groups []*MeshGroup, opts *Options) ([]*model3d.Triangle, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	var res []*model3d.Triangle
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, t := range g.Triangles {
			var newTri model3d.Triangle
			for i, p := range t {
				p = p.Mul(opts.Scale)
				if opts.Transform != nil {
					p = opts.Transform.Apply(p)
				}
				if !finiteCoord(p) {
					return nil, errors.Wrapf(ErrInvalidInput, "non-finite vertex %v", p)
				}
				newTri[i] = p
			}
			res = append(res, &newTri)
		}
	}
	if len(res) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "mesh has no triangles")
	}
	return res, nil
}

// validateOptions checks the options which do not depend on the mesh.
func validateOptions(opts *Options) error {
	for _, s := range opts.Scale.Array() {
		if !(s > 0) || math.IsInf(s, 0) {
			return errors.Wrapf(ErrInvalidInput, "scale %v must be positive and finite", opts.Scale)
		}
	}
	if opts.TraceMode < Thin || opts.TraceMode > ThickSmoothedDown {
		return errors.Wrapf(ErrInvalidInput, "unknown trace mode %d", int(opts.TraceMode))
	}
	return nil
}

func finiteCoord(c model3d.Coord3D) bool {
	for _, x := range c.Array() {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
