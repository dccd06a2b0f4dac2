/*
Package trimesh converts an image into a triangle mesh whose density follows
the image intensity, and draws every mesh edge with the color sampled below it.

The image aspect ratio, reduced to lowest terms, gives the partition of a
coarse grid of right triangles. A refinement plan of decreasing intensity
levels then drives newest vertex bisection: on every pass the triangles whose
barycenter lies over a pixel darker than the current level are split, and the
splits are propagated to their neighbours so the mesh stays conforming. Meshes
are immutable; every pass returns a new one.

The package provides a command line utility. Check the supported flags by typing:

	$ trimesh --help

Example to triangulate an image and save the result as PNG:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/trimesh"
	)

	func main() {
		f, err := os.Open("input.jpg")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		p := &trimesh.Processor{
			Levels: []int{192, 128, 64},
			Counts: []int{1, 2, 3},
		}
		if _, err := p.Process(f, "output.png"); err != nil {
			log.Fatalf("Error on triangulation process: %s", err.Error())
		}
	}

The individual stages (Grid, Mark, Refine, Schedule, EdgeColors and Render)
are exported for callers that manage images and meshes on their own.
*/
package trimesh
