package cubed

import (
	"fmt"

	"github.com/pkg/errors"
)

// A TraceMode selects the probe density of rasterization and which
// refinement, if any, runs afterward.
type TraceMode int

const (
	// Thin uses one probe per axis and no refinement.
	Thin TraceMode = iota

	// Thick uses four probes per axis and no refinement.
	Thick

	// ThinSmoothed uses one probe per axis and additive refinement.
	ThinSmoothed

	// ThickSmoothedUp uses four probes per axis and additive refinement.
	ThickSmoothedUp

	// ThickSmoothedDown uses four probes per axis and subtractive
	// refinement.
	ThickSmoothedDown
)

var traceModeNames = []string{"thin", "thick", "thin_smoothed", "thick_smoothed_up", "thick_smoothed_down"}

// ParseTraceMode parses the name of a trace mode.
func ParseTraceMode(s string) (TraceMode, error) {
	var res TraceMode
	err := res.UnmarshalText([]byte(s))
	return res, err
}

// Thick checks if rasterization should use four probes per axis.
func (t TraceMode) Thick() bool {
	return t == Thick || t == ThickSmoothedUp || t == ThickSmoothedDown
}

// Refiner creates the refiner for the mode, or returns nil if the mode does
// not refine.
func (t TraceMode) Refiner() *Refiner {
	switch t {
	case ThinSmoothed, ThickSmoothedUp:
		return NewAdditiveRefiner()
	case ThickSmoothedDown:
		return NewSubtractiveRefiner()
	}
	return nil
}

func (t TraceMode) String() string {
	if t >= 0 && int(t) < len(traceModeNames) {
		return traceModeNames[t]
	}
	return fmt.Sprintf("TraceMode(%d)", int(t))
}

func (t TraceMode) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(traceModeNames) {
		return nil, errors.Errorf("marshal trace mode: invalid value %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *TraceMode) UnmarshalText(text []byte) error {
	for i, name := range traceModeNames {
		if name == string(text) {
			*t = TraceMode(i)
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidInput, "unknown trace mode %q", text)
}
