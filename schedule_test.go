package trimesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_InvalidPlan(t *testing.T) {
	m, err := Grid(Partition{1, 1}, 1)
	require.NoError(t, err)

	// A nil field would panic if any pass ran.
	_, err = Schedule(m, nil, Partition{1, 1}, RefinementPlan{{100.0 / 256, 1}, {200.0 / 256, 1}})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = Schedule(m, nil, Partition{1, 1}, RefinementPlan{{1.5, 1}})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestSchedule_BrightField(t *testing.T) {
	p := Partition{3, 2}
	m, err := Grid(p, 1)
	require.NoError(t, err)

	r, err := Schedule(m, uniformField(30, 20, 1), p, DefaultPlan())
	require.NoError(t, err)
	assert.Equal(t, geometry(m), geometry(r))
	assert.Equal(t, m.NumVertices(), r.NumVertices())
}

func TestSchedule_DarkField(t *testing.T) {
	p := Partition{1, 1}
	m, err := Grid(p, 1)
	require.NoError(t, err)

	plan, err := NewPlan([]int{128, 64}, []int{2, 3})
	require.NoError(t, err)

	r, err := Schedule(m, uniformField(16, 16, 0), p, plan)
	require.NoError(t, err)
	// Every cell splits on each of the five passes.
	assert.Equal(t, m.NumCells()<<plan.Passes(), r.NumCells())
	assert.InDelta(t, 1.0, r.Area(), 1e-9)
	requireConforming(t, r)
}

func TestSchedule_Deterministic(t *testing.T) {
	p := Partition{4, 3}
	m, err := Grid(p, 1)
	require.NoError(t, err)
	field := Intensity(gradient(64, 48))
	plan, err := NewPlan([]int{192, 128, 64}, []int{1, 1, 2})
	require.NoError(t, err)

	a, err := Schedule(m, field, p, plan)
	require.NoError(t, err)
	b, err := Schedule(m, field, p, plan)
	require.NoError(t, err)

	assert.Greater(t, a.NumCells(), m.NumCells())
	assert.Equal(t, geometry(a), geometry(b))
	requireConforming(t, a)
}
