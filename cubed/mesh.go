package cubed

import (
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// A MeshGroup is a set of triangles sharing a material color.
//
// The color is carried along for callers but does not affect conversion.
type MeshGroup struct {
	Color     color.RGBA
	Triangles []*model3d.Triangle
}

// DefaultMeshColor is assigned to meshes loaded from formats without
// materials.
var DefaultMeshColor = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}

// LoadMesh reads an STL or OFF file into a single mesh group.
func LoadMesh(path string) (*MeshGroup, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.Wrap(ErrInvalidInput, "load mesh: empty path")
	}
	var reader func(io.Reader) ([]*model3d.Triangle, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		reader = model3d.ReadSTL
	case ".off":
		reader = model3d.ReadOFF
	default:
		return nil, errors.Wrapf(ErrInvalidInput, "load mesh: unsupported file type %q", path)
	}
	tris, err := Load(path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "load mesh")
	}
	return &MeshGroup{Color: DefaultMeshColor, Triangles: tris}, nil
}

// Load opens a file and decodes it with a reader function.
//
// If the file does not exist, the error wraps ErrMissingResource.
func Load[T any](path string, reader func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, errors.Wrapf(ErrMissingResource, "open %s", path)
		}
		return zero, errors.Wrap(err, "open")
	}
	defer f.Close()
	res, err := reader(f)
	if err != nil {
		return zero, errors.Wrapf(err, "read %s", path)
	}
	return res, nil
}

// Save creates a file and encodes obj into it with a writer function.
func Save[T any](path string, obj T, writer func(io.Writer, T) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create")
	}
	if err := writer(f, obj); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
