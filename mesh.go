package trimesh

import (
	"fmt"
	"math"
	"sort"
)

// Point is a 2D coordinate in domain units.
type Point struct {
	X, Y float64
}

// Cell is a triangle given by three vertex indices.
// The first two indices form the refinement edge; the third is the newest vertex.
type Cell [3]int

// Edge is an unordered vertex pair stored with the smaller index first.
type Edge [2]int

// newEdge returns the canonical key of the edge between a and b.
func newEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Mesh is an immutable conforming triangulation.
// Refinement never modifies a Mesh; it returns a new one.
type Mesh struct {
	vertices []Point
	cells    []Cell
}

// NewMesh validates and copies the given vertices and cells.
// The refinement edge of every cell is (c[0], c[1]).
func NewMesh(vertices []Point, cells []Cell) (*Mesh, error) {
	for i, c := range cells {
		for _, v := range c {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("%w: cell %d references vertex %d of %d", ErrInvalidMesh, i, v, len(vertices))
			}
		}
		if c[0] == c[1] || c[1] == c[2] || c[0] == c[2] {
			return nil, fmt.Errorf("%w: cell %d has repeated vertices %v", ErrInvalidMesh, i, c)
		}
	}
	m := &Mesh{
		vertices: make([]Point, len(vertices)),
		cells:    make([]Cell, len(cells)),
	}
	copy(m.vertices, vertices)
	copy(m.cells, cells)

	return m, nil
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumCells returns the number of triangles.
func (m *Mesh) NumCells() int { return len(m.cells) }

// Vertex returns the coordinates of vertex i.
func (m *Mesh) Vertex(i int) Point { return m.vertices[i] }

// Cell returns the vertex indices of cell i.
func (m *Mesh) Cell(i int) Cell { return m.cells[i] }

// Vertices returns a copy of the vertex list.
func (m *Mesh) Vertices() []Point {
	out := make([]Point, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// Cells returns a copy of the cell list.
func (m *Mesh) Cells() []Cell {
	out := make([]Cell, len(m.cells))
	copy(out, m.cells)
	return out
}

// Edges returns the unique edges of the mesh sorted by vertex indices.
func (m *Mesh) Edges() []Edge {
	seen := make(map[Edge]struct{}, len(m.cells)*3/2+1)
	edges := make([]Edge, 0, len(m.cells)*3/2+1)
	for _, c := range m.cells {
		for _, e := range cellEdges(c) {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// Barycenter returns the mean of the three vertices of cell i.
func (m *Mesh) Barycenter(i int) Point {
	c := m.cells[i]
	p0, p1, p2 := m.vertices[c[0]], m.vertices[c[1]], m.vertices[c[2]]
	return Point{
		X: (p0.X + p1.X + p2.X) / 3,
		Y: (p0.Y + p1.Y + p2.Y) / 3,
	}
}

// CellArea returns the unsigned area of cell i.
func (m *Mesh) CellArea(i int) float64 {
	c := m.cells[i]
	p0, p1, p2 := m.vertices[c[0]], m.vertices[c[1]], m.vertices[c[2]]
	return math.Abs((p1.X-p0.X)*(p2.Y-p0.Y)-(p2.X-p0.X)*(p1.Y-p0.Y)) / 2
}

// Area returns the total area covered by the mesh.
func (m *Mesh) Area() float64 {
	var sum float64
	for i := range m.cells {
		sum += m.CellArea(i)
	}
	return sum
}

// Extent returns the maximum vertex coordinates. Meshes built by Grid start at the origin.
func (m *Mesh) Extent() Point {
	var ext Point
	for _, v := range m.vertices {
		ext.X = Max(ext.X, v.X)
		ext.Y = Max(ext.Y, v.Y)
	}
	return ext
}

// cellEdges returns the canonical keys of the three cell edges, refinement edge first.
func cellEdges(c Cell) [3]Edge {
	return [3]Edge{
		newEdge(c[0], c[1]),
		newEdge(c[1], c[2]),
		newEdge(c[2], c[0]),
	}
}

func dist2(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
