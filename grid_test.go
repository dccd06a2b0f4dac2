package trimesh

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartition(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		maxSide       int
		want          Partition
	}{
		{"Square", 512, 512, DefaultMaxPartition, Partition{1, 1}},
		{"Widescreen", 1920, 1080, DefaultMaxPartition, Partition{16, 9}},
		{"Portrait", 600, 800, DefaultMaxPartition, Partition{3, 4}},
		{"Approximated", 1001, 500, DefaultMaxPartition, Partition{2, 1}},
		{"Unbounded", 1001, 500, 0, Partition{1001, 500}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewPartition(tc.width, tc.height, tc.maxSide)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := NewPartition(0, 10, DefaultMaxPartition)
	assert.ErrorIs(t, err, ErrDegenerateDomain)
}

func TestDeriveResolution(t *testing.T) {
	assert.Equal(t, image.Pt(512, 288), DeriveResolution(Partition{16, 9}, 512))
	assert.Equal(t, image.Pt(510, 340), DeriveResolution(Partition{3, 2}, 512))
	assert.Equal(t, image.Pt(600, 1), DeriveResolution(Partition{600, 1}, 512))
}

func TestGrid(t *testing.T) {
	m, err := Grid(Partition{3, 2}, 2)
	require.NoError(t, err)

	assert.Equal(t, 7*5, m.NumVertices())
	assert.Equal(t, 2*6*4, m.NumCells())
	assert.InDelta(t, 24.0, m.Area(), 1e-12)
	assert.Equal(t, Point{6, 4}, m.Extent())
	requireConforming(t, m)

	// The refinement edge of every cell is its longest (diagonal) edge.
	for i := 0; i < m.NumCells(); i++ {
		c := m.Cell(i)
		assert.InDelta(t, 2.0, dist2(m.Vertex(c[0]), m.Vertex(c[1])), 1e-12)
	}
}

func TestGrid_Degenerate(t *testing.T) {
	for _, tc := range []struct {
		p    Partition
		base int
	}{
		{Partition{0, 1}, 1},
		{Partition{1, 0}, 1},
		{Partition{1, 1}, 0},
		{Partition{2, 3}, -1},
	} {
		_, err := Grid(tc.p, tc.base)
		assert.ErrorIs(t, err, ErrDegenerateDomain, "partition %v base %d", tc.p, tc.base)
	}
}
