package cubed

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned for malformed conversion inputs, such as
	// an empty mesh reference or a non-positive scale. It is always
	// returned before a grid is allocated.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingResource is returned when a mesh reference cannot be
	// resolved.
	ErrMissingResource = errors.New("missing resource")

	// ErrUnclassifiedShape is returned when a cell cannot be mapped to a
	// block subtype during emission.
	ErrUnclassifiedShape = errors.New("unclassified shape")
)
