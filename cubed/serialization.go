package cubed

import (
	"encoding/binary"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// WriteGrid serializes g in a compact binary format.
func WriteGrid(w io.Writer, g *Grid) error {
	header := make([]int32, 6)
	for i := 0; i < 3; i++ {
		header[i] = int32(g.Origin[i])
		header[i+3] = int32(g.Size[i])
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return errors.Wrap(err, "write grid")
	}
	data := make([]byte, len(g.cells))
	for i, c := range g.cells {
		data[i] = byte(c)
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write grid")
	}
	return nil
}

// MaxGridCells is the largest grid ReadGrid will decode.
const MaxGridCells = 1 << 30

// ReadGrid reads the output written by WriteGrid.
func ReadGrid(r io.Reader) (*Grid, error) {
	var header [6]int32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "read grid")
	}
	var origin, size [3]int
	numCells := int64(1)
	for i := 0; i < 3; i++ {
		origin[i] = int(header[i])
		size[i] = int(header[i+3])
		if size[i] <= 0 {
			return nil, errors.Errorf("read grid: invalid size %v", header[3:])
		}
		numCells *= int64(size[i])
		if numCells > MaxGridCells {
			return nil, errors.Errorf("read grid: size %v exceeds %d cells", header[3:], MaxGridCells)
		}
	}

	// Read through a limit so truncated input fails before a full grid is
	// allocated.
	data, err := io.ReadAll(io.LimitReader(r, numCells))
	if err != nil {
		return nil, errors.Wrap(err, "read grid")
	}
	if int64(len(data)) != numCells {
		return nil, errors.Wrap(io.ErrUnexpectedEOF, "read grid")
	}
	g := NewGrid(origin, size)
	for i, b := range data {
		c := CellType(b)
		if !c.Valid() {
			return nil, errors.Errorf("read grid: invalid cell type %d", b)
		}
		g.cells[i] = c
	}
	return g, nil
}

// WriteBlocks encodes block records as JSON.
func WriteBlocks(w io.Writer, blocks []BlockRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(blocks), "write blocks")
}

// ReadBlocks decodes the output of WriteBlocks.
func ReadBlocks(r io.Reader) ([]BlockRecord, error) {
	var res []BlockRecord
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "read blocks")
	}
	return res, nil
}
