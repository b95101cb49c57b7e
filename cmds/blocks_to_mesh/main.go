package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/unixpickle/cube-d/cubed"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
)

func main() {
	var gridSize int
	var imageSize int
	var fps float64
	var frames int
	flag.IntVar(&gridSize, "grid-size", 3, "grid size (used for rows and columns)")
	flag.IntVar(&imageSize, "image-size", 300, "size of each image in the grid")
	flag.Float64Var(&fps, "fps", 10.0, "FPS for GIF outputs")
	flag.IntVar(&frames, "frames", 20, "total number of frames for GIF outputs")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: blocks_to_mesh [flags] <input.json> <output.stl|png|gif>")
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

	log.Println("Loading blocks...")
	blocks, err := cubed.Load(inputPath, cubed.ReadBlocks)
	essentials.Must(err)
	if len(blocks) == 0 {
		essentials.Die("no blocks in input")
	}

	log.Println("Creating mesh...")
	mesh := cubed.BlocksMesh(blocks)
	log.Printf(" - %d blocks, %d triangles", len(blocks), len(mesh.TriangleSlice()))

	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".stl":
		log.Println("Saving mesh...")
		essentials.Must(mesh.SaveGroupedSTL(outputPath))
	case ".gif":
		log.Println("Rendering...")
		object := render3d.Objectify(model3d.MeshToCollider(mesh), nil)
		essentials.Must(
			render3d.SaveRotatingGIF(
				outputPath,
				object,
				model3d.Y(1),
				model3d.XYZ(0, 0.3, 1).Normalize(),
				imageSize,
				frames,
				fps,
				nil,
			),
		)
	default:
		log.Println("Rendering...")
		object := render3d.Objectify(model3d.MeshToCollider(mesh), nil)
		essentials.Must(
			render3d.SaveRandomGrid(outputPath, object, gridSize, gridSize, imageSize, nil),
		)
	}
}
