package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: Up, Right, Down, Left.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// Offsets returns the neighbor vectors for c.
func (c Connectivity) Offsets() []Vector {
	if c == Conn8 {
		return AllNeighbors()
	}

	return OrthogonalNeighbors()
}

// Grid is a bounded, read-only 2D grid of values.
type Grid[T any] interface {
	// Get returns the value at l; ok is false outside the grid.
	Get(l Location) (v T, ok bool)
	// InBounds reports whether l lies within the grid.
	InBounds(l Location) bool
	// Dimensions returns the grid size as (rows, columns).
	Dimensions() Vector
	// All yields every location with its value in row-major order.
	All() iter.Seq2[Location, T]
}

// bounds implements InBounds and Dimensions for fixed-size grids.
type bounds struct {
	dims Vector
}

// InBounds reports whether l lies within the grid boundaries.
// Complexity: O(1).
func (b bounds) InBounds(l Location) bool {
	return l.Row >= 0 && l.Row < b.dims.Rows && l.Column >= 0 && l.Column < b.dims.Columns
}

// Dimensions returns the grid size.
func (b bounds) Dimensions() Vector { return b.dims }

// CharacterGrid is an immutable grid of bytes parsed from text, one row per line.
type CharacterGrid struct {
	bounds
	lines []string
}

// ParseCharacterGrid builds a CharacterGrid from newline-separated rows.
// Trailing whitespace of the whole input and carriage returns are dropped.
// Returns ErrEmptyGrid for blank input, ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func ParseCharacterGrid(input string) (*CharacterGrid, error) {
	trimmed := strings.TrimRight(input, " \t\r\n")
	if trimmed == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(trimmed, "\n")
	w := len(strings.TrimSuffix(lines[0], "\r"))
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
		if len(lines[i]) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(lines[i]), w)
		}
	}

	return &CharacterGrid{bounds: bounds{dims: Vector{Rows: len(lines), Columns: w}}, lines: lines}, nil
}

// Get returns the byte at l.
func (g *CharacterGrid) Get(l Location) (byte, bool) {
	if !g.InBounds(l) {
		return 0, false
	}

	return g.lines[l.Row][l.Column], true
}

// All yields every location with its byte in row-major order.
func (g *CharacterGrid) All() iter.Seq2[Location, byte] {
	return func(yield func(Location, byte) bool) {
		for r, line := range g.lines {
			for c := 0; c < len(line); c++ {
				if !yield(Location{Row: r, Column: c}, line[c]) {
					return
				}
			}
		}
	}
}

// String returns the rows joined by newlines.
func (g *CharacterGrid) String() string { return strings.Join(g.lines, "\n") }

// ArrayGrid is a mutable fixed-size grid of arbitrary values.
type ArrayGrid[T any] struct {
	bounds
	values [][]T
}

// NewArrayGrid returns a dims-sized grid with every cell set to initial.
// Returns ErrEmptyGrid unless both dimensions are positive.
func NewArrayGrid[T any](dims Vector, initial T) (*ArrayGrid[T], error) {
	if dims.Rows <= 0 || dims.Columns <= 0 {
		return nil, ErrEmptyGrid
	}
	values := make([][]T, dims.Rows)
	for r := range values {
		row := make([]T, dims.Columns)
		for c := range row {
			row[c] = initial
		}
		values[r] = row
	}

	return &ArrayGrid[T]{bounds: bounds{dims: dims}, values: values}, nil
}

// ArrayGridFromRows builds an ArrayGrid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to rows do not leak in.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func ArrayGridFromRows[T any](rows [][]T) (*ArrayGrid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(row), w)
		}
	}
	values := make([][]T, h)
	for r := 0; r < h; r++ {
		values[r] = make([]T, w)
		copy(values[r], rows[r])
	}

	return &ArrayGrid[T]{bounds: bounds{dims: Vector{Rows: h, Columns: w}}, values: values}, nil
}

// Get returns the value at l.
func (g *ArrayGrid[T]) Get(l Location) (T, bool) {
	if !g.InBounds(l) {
		var zero T
		return zero, false
	}

	return g.values[l.Row][l.Column], true
}

// Set stores v at l. Returns ErrOutOfBounds outside the grid.
func (g *ArrayGrid[T]) Set(l Location, v T) error {
	if !g.InBounds(l) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, l)
	}
	g.values[l.Row][l.Column] = v

	return nil
}

// All yields every location with its value in row-major order.
func (g *ArrayGrid[T]) All() iter.Seq2[Location, T] {
	return func(yield func(Location, T) bool) {
		for r, row := range g.values {
			for c, v := range row {
				if !yield(Location{Row: r, Column: c}, v) {
					return
				}
			}
		}
	}
}

// Find returns the first location in row-major order whose value satisfies match.
func Find[T any](g Grid[T], match func(T) bool) (Location, bool) {
	for l, v := range g.All() {
		if match(v) {
			return l, true
		}
	}

	return Location{}, false
}
