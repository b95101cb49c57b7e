package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/cube-d/cubed"
	"github.com/unixpickle/essentials"
	"golang.org/x/exp/slices"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type typeCount struct {
	Type  cubed.CellType
	Count int
}

func main() {
	var chartPath string
	flag.StringVar(&chartPath, "chart", "", "optional path to save a bar chart of cell counts")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: grid_info [flags] <input.grid>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading grid...")
	grid, err := cubed.Load(inputPath, cubed.ReadGrid)
	essentials.Must(err)

	fmt.Println("Origin:", grid.Origin)
	fmt.Println("Size:", grid.Size)
	fmt.Println("Number of cells:", grid.NumCells())

	var counts []typeCount
	for cellType, count := range grid.Counts() {
		counts = append(counts, typeCount{Type: cellType, Count: count})
	}
	slices.SortFunc(counts, func(a, b typeCount) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Type < b.Type
	})
	for _, c := range counts {
		fmt.Printf("%-32s %d\n", c.Type, c.Count)
	}

	if chartPath != "" {
		log.Println("Saving chart...")
		essentials.Must(saveChart(chartPath, counts))
	}
}

func saveChart(path string, counts []typeCount) error {
	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		names[i] = c.Type.String()
	}

	p := plot.New()
	p.Title.Text = "Cell types"
	p.Y.Label.Text = "Cells"

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 1.2
	p.X.Tick.Label.XAlign = -1

	width := vg.Length(len(counts)+2) * 0.5 * vg.Inch
	if width < 4*vg.Inch {
		width = 4 * vg.Inch
	}
	return p.Save(width, 5*vg.Inch, path)
}
