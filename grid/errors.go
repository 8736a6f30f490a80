package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a write to a location outside the grid.
	ErrOutOfBounds = errors.New("grid: location out of bounds")
	// ErrInvalidLocation indicates text that does not parse as "row,column".
	ErrInvalidLocation = errors.New("grid: invalid location")
)
