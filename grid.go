package trimesh

import (
	"fmt"
	"image"
	"math"
)

// DefaultMaxPartition bounds the long side of a partition derived from an aspect ratio.
const DefaultMaxPartition = 64

// Partition is the rectangular domain extent in mesh units.
type Partition struct {
	X, Y int
}

// NewPartition reduces the width:height aspect ratio to lowest terms.
// Ratios whose reduced long side exceeds maxSide are approximated so that the
// long side equals maxSide. A non-positive maxSide disables the bound.
func NewPartition(width, height, maxSide int) (Partition, error) {
	if width <= 0 || height <= 0 {
		return Partition{}, fmt.Errorf("%w: image size %dx%d", ErrDegenerateDomain, width, height)
	}
	g := gcd(width, height)
	px, py := width/g, height/g

	if maxSide > 0 && Max(px, py) > maxSide {
		scale := float64(maxSide) / float64(Max(px, py))
		px = Max(1, int(math.Round(float64(px)*scale)))
		py = Max(1, int(math.Round(float64(py)*scale)))
		g = gcd(px, py)
		px, py = px/g, py/g
	}
	return Partition{X: px, Y: py}, nil
}

// Scale multiplies the partition by the base grid factor.
func (p Partition) Scale(base int) Partition {
	return Partition{X: p.X * base, Y: p.Y * base}
}

// Extent returns the partition as a domain point.
func (p Partition) Extent() Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// DeriveResolution returns a resolution with the partition's aspect ratio
// whose long side is the largest multiple of the partition not above longSide.
func DeriveResolution(p Partition, longSide int) image.Point {
	k := Max(1, longSide/Max(p.X, p.Y))
	return image.Pt(p.X*k, p.Y*k)
}

// Grid builds the initial mesh covering [0, p.X*base] x [0, p.Y*base].
// The rectangle is split into unit squares, each cut into two triangles
// along its main diagonal. The diagonal is the refinement edge of both halves.
func Grid(p Partition, base int) (*Mesh, error) {
	if p.X <= 0 || p.Y <= 0 || base <= 0 {
		return nil, fmt.Errorf("%w: partition %dx%d, base %d", ErrDegenerateDomain, p.X, p.Y, base)
	}
	nx, ny := p.X*base, p.Y*base

	vertices := make([]Point, 0, (nx+1)*(ny+1))
	for y := 0; y <= ny; y++ {
		for x := 0; x <= nx; x++ {
			vertices = append(vertices, Point{X: float64(x), Y: float64(y)})
		}
	}
	id := func(x, y int) int { return y*(nx+1) + x }

	cells := make([]Cell, 0, 2*nx*ny)
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			v00, v10 := id(x, y), id(x+1, y)
			v01, v11 := id(x, y+1), id(x+1, y+1)
			cells = append(cells,
				longestEdgeFirst(vertices, Cell{v00, v10, v11}),
				longestEdgeFirst(vertices, Cell{v00, v11, v01}),
			)
		}
	}
	return NewMesh(vertices, cells)
}

// longestEdgeFirst rotates c so its longest edge becomes the refinement edge.
// Ties keep the earliest edge in (c0c1, c1c2, c2c0) order.
func longestEdgeFirst(vertices []Point, c Cell) Cell {
	best, rot := -1.0, 0
	for i := 0; i < 3; i++ {
		if d := dist2(vertices[c[i]], vertices[c[(i+1)%3]]); d > best {
			best, rot = d, i
		}
	}
	return Cell{c[rot], c[(rot+1)%3], c[(rot+2)%3]}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
