package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazypath/grid"
)

func TestLocationArithmetic(t *testing.T) {
	l := grid.Location{Row: 3, Column: 4}

	assert.Equal(t, grid.Location{Row: 1, Column: 4}, l.Above(2))
	assert.Equal(t, grid.Location{Row: 5, Column: 4}, l.Below(2))
	assert.Equal(t, grid.Location{Row: 3, Column: 1}, l.Left(3))
	assert.Equal(t, grid.Location{Row: 3, Column: 7}, l.Right(3))
	assert.Equal(t, l.Above(4), l.Relative(grid.Up, 4))
	assert.Equal(t, l.Right(1), l.Relative(grid.Right, 1))

	v := l.Sub(grid.Location{Row: 0, Column: 0})
	assert.Equal(t, grid.Vector{Rows: 3, Columns: 4}, v)
	assert.Equal(t, 7, v.L1Norm())
	assert.Equal(t, 7, v.Scale(-1).L1Norm())
	assert.Equal(t, grid.Vector{Rows: 6, Columns: 8}, v.Add(v))
	assert.Equal(t, grid.Vector{}, v.Sub(v))
	assert.Equal(t, grid.Location{Row: 6, Column: 8}, l.Add(v))
}

func TestParseLocation(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Location
		ok   bool
	}{
		{"5,4", grid.Location{Row: 5, Column: 4}, true},
		{" -1 , 12 ", grid.Location{Row: -1, Column: 12}, true},
		{"5", grid.Location{}, false},
		{"a,1", grid.Location{}, false},
		{"1,b", grid.Location{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := grid.ParseLocation(tc.in)
			if !tc.ok {
				assert.ErrorIs(t, err, grid.ErrInvalidLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			// String round-trips through ParseLocation.
			back, err := grid.ParseLocation(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, back)
		})
	}
}

func TestNeighborTables(t *testing.T) {
	orth := grid.OrthogonalNeighbors()
	require.Len(t, orth, 4)
	assert.Equal(t, grid.Upward(1), orth[0])
	assert.Len(t, grid.DiagonalNeighbors(), 4)
	assert.Len(t, grid.AllNeighbors(), 8)
	for _, v := range grid.DiagonalNeighbors() {
		assert.Equal(t, 2, v.L1Norm())
	}

	// Callers get copies; mutating one does not affect later calls.
	orth[0] = grid.Vector{Rows: 99}
	assert.Equal(t, grid.Upward(1), grid.OrthogonalNeighbors()[0])

	assert.Equal(t, grid.OrthogonalNeighbors(), grid.Conn4.Offsets())
	assert.Equal(t, grid.AllNeighbors(), grid.Conn8.Offsets())
}

func TestDirections(t *testing.T) {
	assert.Equal(t, []grid.Direction{grid.Up, grid.Down, grid.Left, grid.Right}, grid.AllDirections())

	for _, d := range grid.AllDirections() {
		assert.Equal(t, d, d.Reverse().Reverse())
		assert.Equal(t, d, d.Clockwise().Counterclockwise())
		assert.Equal(t, d.Reverse(), d.Clockwise().Clockwise())
		assert.Equal(t, grid.Vector{}, grid.InDirection(d, 3).Add(grid.InDirection(d.Reverse(), 3)))
		for _, to := range grid.AllDirections() {
			assert.Equal(t, to, d.Rotate(d.RotationTo(to)), "%s→%s", d, to)
		}
	}

	assert.Equal(t, grid.Right, grid.Up.Clockwise())
	assert.Equal(t, grid.Left, grid.Up.Counterclockwise())
	assert.Equal(t, grid.Clockwise, grid.Left.RotationTo(grid.Up))
	assert.Equal(t, grid.Flip, grid.Down.RotationTo(grid.Up))
	assert.Equal(t, "left", grid.Left.String())
}

func TestRotations(t *testing.T) {
	assert.Equal(t, grid.Flip, grid.Clockwise.Add(grid.Clockwise))
	assert.Equal(t, grid.None, grid.Counterclockwise.Add(grid.Clockwise))
	assert.Equal(t, grid.Counterclockwise, grid.None.Sub(grid.Clockwise))
	assert.Equal(t, grid.Counterclockwise, grid.Clockwise.Multiply(3))
	assert.Equal(t, grid.Counterclockwise, grid.Clockwise.Multiply(-1))
	assert.Equal(t, grid.Clockwise, grid.Counterclockwise.Reverse())
	assert.Equal(t, grid.Flip, grid.Flip.Reverse())
	assert.Equal(t, grid.None, grid.None.Reverse())
	assert.Equal(t, "Counterclockwise", grid.Counterclockwise.String())
}

func TestLocationsInManhattanDistance(t *testing.T) {
	center := grid.Location{Row: 10, Column: -3}
	for d := 0; d <= 5; d++ {
		seen := map[grid.Location]bool{}
		for l := range grid.LocationsInManhattanDistance(center, d) {
			assert.LessOrEqual(t, l.Sub(center).L1Norm(), d)
			assert.False(t, seen[l], "duplicate %s", l)
			seen[l] = true
		}
		// A diamond of radius d holds 2d²+2d+1 cells.
		assert.Len(t, seen, 2*d*d+2*d+1, "distance %d", d)
		assert.True(t, seen[center])
	}
}
