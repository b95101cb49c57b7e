package cubed

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadWriteGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	grid := NewGrid([3]int{-3, 7, 0}, [3]int{4, 5, 6})
	grid.Iterate(func(x, y, z int, c CellType) {
		grid.Set(x, y, z, CellType(rng.Intn(int(numCellTypes))))
	})
	var b bytes.Buffer
	if err := WriteGrid(&b, grid); err != nil {
		t.Fatal(err)
	}
	if result, err := ReadGrid(&b); err != nil {
		t.Fatal(err)
	} else {
		if result.Origin != grid.Origin || result.Size != grid.Size {
			t.Fatalf("expected %v %v but got %v %v", grid.Origin, grid.Size, result.Origin, result.Size)
		}
		if diff := cmp.Diff(grid.Cells(), result.Cells()); diff != "" {
			t.Fatalf("cells differ (-expected +actual):\n%s", diff)
		}
	}
}

func TestReadGridInvalid(t *testing.T) {
	grid := NewGrid([3]int{}, [3]int{1, 1, 2})
	var b bytes.Buffer
	if err := WriteGrid(&b, grid); err != nil {
		t.Fatal(err)
	}
	data := b.Bytes()

	if _, err := ReadGrid(bytes.NewReader(data[:len(data)-1])); err == nil {
		t.Error("expected error for truncated data")
	}

	corrupt := append([]byte{}, data...)
	corrupt[len(corrupt)-1] = 0xff
	if _, err := ReadGrid(bytes.NewReader(corrupt)); err == nil {
		t.Error("expected error for unknown cell type")
	}

	hugeSizes := [][3]int32{
		{1 << 21, 1 << 21, 1 << 21},
		{2000, 2000, 2000},
		{1 << 30, 1 << 30, 1 << 30},
		{1, -1, 1},
	}
	for _, size := range hugeSizes {
		var header bytes.Buffer
		fields := []int32{0, 0, 0, size[0], size[1], size[2]}
		if err := binary.Write(&header, binary.LittleEndian, fields); err != nil {
			t.Fatal(err)
		}
		header.Write([]byte{0, 0, 0})
		if _, err := ReadGrid(&header); err == nil {
			t.Errorf("size %v: expected error", size)
		}
	}
}

func TestReadWriteBlocks(t *testing.T) {
	blocks := []BlockRecord{
		{
			Type:        SlopeLeftFrontCenter,
			Position:    [3]int{1, 2, 3},
			Orientation: Orient(SlopeLeftFrontCenter),
			Subtype:     DefaultBlockSet.Slope,
		},
		{
			Type:        InverseCornerRightBackBottom,
			Position:    [3]int{0, 0, 9},
			Orientation: Orient(InverseCornerRightBackBottom),
			Subtype:     DefaultBlockSet.InverseCorner,
		},
	}
	var b bytes.Buffer
	if err := WriteBlocks(&b, blocks); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b.Bytes(), []byte(`"InverseCornerRightBackBottom"`)) {
		t.Errorf("cell types should be encoded by name: %s", b.String())
	}
	result, err := ReadBlocks(&b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(blocks, result); diff != "" {
		t.Errorf("blocks differ (-expected +actual):\n%s", diff)
	}
}
