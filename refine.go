package trimesh

import "fmt"

// Refine bisects every marked cell along its refinement edge and returns the
// new conforming mesh. The receiver mesh is left untouched.
//
// Refinement is newest vertex bisection. A cell whose refinement edge is
// split produces two children (c2, c0, m) and (c1, c2, m) where m is the
// edge midpoint; the edge opposite m becomes the child's refinement edge.
// Splits are propagated to neighbours through an edge worklist until every
// cell touching a split edge also splits its own refinement edge, so no
// hanging nodes remain. Unaffected cells are copied in their original order,
// split cells are replaced in place by their children, and new midpoints are
// appended to the vertex list.
func Refine(m *Mesh, marked []int) (*Mesh, error) {
	for _, i := range marked {
		if i < 0 || i >= len(m.cells) {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrCellIndex, i, len(m.cells))
		}
	}
	if len(marked) == 0 {
		return m, nil
	}
	split := closure(m, marked)

	vertices := make([]Point, len(m.vertices), len(m.vertices)+len(split))
	copy(vertices, m.vertices)
	midpoints := make(map[Edge]int, len(split))

	midpoint := func(a, b int) int {
		key := newEdge(a, b)
		if v, ok := midpoints[key]; ok {
			return v
		}
		pa, pb := vertices[a], vertices[b]
		vertices = append(vertices, Point{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2})
		midpoints[key] = len(vertices) - 1
		return len(vertices) - 1
	}

	cells := make([]Cell, 0, len(m.cells)+2*len(split))
	stack := make([]Cell, 0, 4)
	for _, c := range m.cells {
		stack = append(stack[:0], c)
		for len(stack) > 0 {
			t := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := split[newEdge(t[0], t[1])]; !ok {
				cells = append(cells, t)
				continue
			}
			mid := midpoint(t[0], t[1])
			// Pushed in reverse so the first child is emitted first.
			stack = append(stack, Cell{t[1], t[2], mid}, Cell{t[2], t[0], mid})
		}
	}
	return &Mesh{vertices: vertices, cells: cells}, nil
}

// closure returns the set of edges that must be bisected so that every marked
// cell is split and the result stays conforming.
func closure(m *Mesh, marked []int) map[Edge]struct{} {
	adjacent := make(map[Edge][]int, len(m.cells)*3/2+1)
	for i, c := range m.cells {
		for _, e := range cellEdges(c) {
			adjacent[e] = append(adjacent[e], i)
		}
	}

	split := make(map[Edge]struct{})
	var queue []Edge
	push := func(e Edge) {
		if _, ok := split[e]; ok {
			return
		}
		split[e] = struct{}{}
		queue = append(queue, e)
	}

	for _, i := range marked {
		c := m.cells[i]
		push(newEdge(c[0], c[1]))
	}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		for _, i := range adjacent[e] {
			c := m.cells[i]
			push(newEdge(c[0], c[1]))
		}
	}
	return split
}
