package trimesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireConforming fails when a mesh vertex lies strictly inside any mesh edge,
// or when an edge is shared by more than two cells.
func requireConforming(t testing.TB, m *Mesh) {
	t.Helper()

	shared := make(map[Edge]int)
	used := make(map[int]struct{})
	for _, c := range m.cells {
		for _, e := range cellEdges(c) {
			shared[e]++
		}
		for _, v := range c {
			used[v] = struct{}{}
		}
	}
	for e, n := range shared {
		require.LessOrEqualf(t, n, 2, "edge %v shared by %d cells", e, n)

		a, b := m.Vertex(e[0]), m.Vertex(e[1])
		l := dist2(a, b)
		for v := range used {
			if v == e[0] || v == e[1] {
				continue
			}
			p := m.Vertex(v)
			cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
			if math.Abs(cross) > 1e-12 {
				continue
			}
			dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
			require.Falsef(t, dot > 0 && dot < l, "hanging node %d (%v) on edge %v", v, p, e)
		}
	}
}

// uniformField returns a w x h field filled with v.
func uniformField(w, h int, v float64) *IntensityField {
	f := &IntensityField{Width: w, Height: h, Values: make([]float64, w*h)}
	for i := range f.Values {
		f.Values[i] = v
	}
	return f
}

func allCells(m *Mesh) []int {
	ids := make([]int, m.NumCells())
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// geometry returns the cells of m as coordinate triples.
func geometry(m *Mesh) [][3]Point {
	out := make([][3]Point, m.NumCells())
	for i, c := range m.cells {
		out[i] = [3]Point{m.Vertex(c[0]), m.Vertex(c[1]), m.Vertex(c[2])}
	}
	return out
}
