package trimesh

import "fmt"

// Mark returns, in increasing order, the indices of the cells whose barycenter
// falls on a pixel darker than threshold.
func Mark(m *Mesh, field *IntensityField, p Partition, threshold float64) ([]int, error) {
	var (
		extent = p.Extent()
		size   = field.Size()
		marked []int
	)
	for i := 0; i < m.NumCells(); i++ {
		b := m.Barycenter(i)
		px, ok := PixelAt(b, extent, size)
		if !ok {
			return nil, fmt.Errorf("%w: cell %d barycenter (%g, %g) maps to pixel (%d, %d) outside %dx%d field",
				ErrGeometryMismatch, i, b.X, b.Y, px.X, px.Y, size.X, size.Y)
		}
		if field.At(px.X, px.Y) < threshold {
			marked = append(marked, i)
		}
	}
	return marked, nil
}
