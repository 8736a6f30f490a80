package grid

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Location is a cell position on a grid.
type Location struct {
	Row, Column int
}

// Add returns l moved by v.
func (l Location) Add(v Vector) Location {
	return Location{Row: l.Row + v.Rows, Column: l.Column + v.Columns}
}

// Sub returns the vector leading from other to l.
func (l Location) Sub(other Location) Vector {
	return Vector{Rows: l.Row - other.Row, Columns: l.Column - other.Column}
}

// Above returns the location distance rows up.
func (l Location) Above(distance int) Location { return l.Add(Upward(distance)) }

// Below returns the location distance rows down.
func (l Location) Below(distance int) Location { return l.Add(Downward(distance)) }

// Left returns the location distance columns to the left.
func (l Location) Left(distance int) Location { return l.Add(Leftward(distance)) }

// Right returns the location distance columns to the right.
func (l Location) Right(distance int) Location { return l.Add(Rightward(distance)) }

// Relative returns the location distance steps away in direction d.
func (l Location) Relative(d Direction, distance int) Location {
	return l.Add(InDirection(d, distance))
}

// String formats l as "row,column".
func (l Location) String() string {
	return strconv.Itoa(l.Row) + "," + strconv.Itoa(l.Column)
}

// ParseLocation parses the "row,column" form produced by String.
// Surrounding spaces around either number are ignored.
func ParseLocation(s string) (Location, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return Location{}, fmt.Errorf("%w: %q has no comma", ErrInvalidLocation, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return Location{}, fmt.Errorf("%w: row of %q: %v", ErrInvalidLocation, s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return Location{}, fmt.Errorf("%w: column of %q: %v", ErrInvalidLocation, s, err)
	}

	return Location{Row: row, Column: col}, nil
}

// Vector is a displacement between two locations.
type Vector struct {
	Rows, Columns int
}

// InDirection returns a vector of length size pointing in direction d.
func InDirection(d Direction, size int) Vector {
	switch d {
	case Up:
		return Upward(size)
	case Down:
		return Downward(size)
	case Left:
		return Leftward(size)
	case Right:
		return Rightward(size)
	default:
		return Vector{}
	}
}

// Upward returns a vector size rows up.
func Upward(size int) Vector { return Vector{Rows: -size} }

// Downward returns a vector size rows down.
func Downward(size int) Vector { return Vector{Rows: size} }

// Leftward returns a vector size columns to the left.
func Leftward(size int) Vector { return Vector{Columns: -size} }

// Rightward returns a vector size columns to the right.
func Rightward(size int) Vector { return Vector{Columns: size} }

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{Rows: v.Rows + o.Rows, Columns: v.Columns + o.Columns}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{Rows: v.Rows - o.Rows, Columns: v.Columns - o.Columns}
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k int) Vector {
	return Vector{Rows: v.Rows * k, Columns: v.Columns * k}
}

// L1Norm returns the Manhattan length |Rows| + |Columns|.
func (v Vector) L1Norm() int {
	return abs(v.Rows) + abs(v.Columns)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Neighbor tables, built on first use.
var (
	orthogonal = sync.OnceValue(func() []Vector {
		return []Vector{Upward(1), Rightward(1), Downward(1), Leftward(1)}
	})
	diagonal = sync.OnceValue(func() []Vector {
		return []Vector{
			Upward(1).Add(Rightward(1)),
			Upward(1).Add(Leftward(1)),
			Downward(1).Add(Rightward(1)),
			Downward(1).Add(Leftward(1)),
		}
	})
	all = sync.OnceValue(func() []Vector {
		return slices.Concat(orthogonal(), diagonal())
	})
)

// OrthogonalNeighbors returns the four unit vectors Up, Right, Down, Left.
func OrthogonalNeighbors() []Vector { return slices.Clone(orthogonal()) }

// DiagonalNeighbors returns the four diagonal unit vectors.
func DiagonalNeighbors() []Vector { return slices.Clone(diagonal()) }

// AllNeighbors returns the orthogonal neighbors followed by the diagonal ones.
func AllNeighbors() []Vector { return slices.Clone(all()) }
