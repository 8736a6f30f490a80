package grid

// Direction is one of the four orthogonal headings.
// The numeric value is the number of clockwise quarter turns from Up.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns Up, Down, Left, Right.
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return d.Rotate(Flip) }

// Clockwise returns the heading a quarter turn to the right.
func (d Direction) Clockwise() Direction { return d.Rotate(Clockwise) }

// Counterclockwise returns the heading a quarter turn to the left.
func (d Direction) Counterclockwise() Direction { return d.Rotate(Counterclockwise) }

// Rotate turns d by r.
func (d Direction) Rotate(r Rotation) Direction {
	return Direction(mod4(int(d) + int(r)))
}

// RotationTo returns the rotation that turns d into to.
func (d Direction) RotationTo(to Direction) Rotation {
	return Rotation(mod4(int(to) - int(d)))
}

// String returns "up", "right", "down" or "left".
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Rotation is a turn by a whole number of quarter turns, clockwise.
type Rotation int

const (
	None Rotation = iota
	Clockwise
	Flip
	Counterclockwise
)

// Add composes two rotations.
func (r Rotation) Add(o Rotation) Rotation { return Rotation(mod4(int(r) + int(o))) }

// Sub returns the rotation that, added to o, gives r.
func (r Rotation) Sub(o Rotation) Rotation { return Rotation(mod4(int(r) - int(o))) }

// Multiply repeats r factor times. Negative factors turn the other way.
func (r Rotation) Multiply(factor int) Rotation { return Rotation(mod4(int(r) * factor)) }

// Reverse returns the rotation undoing r.
func (r Rotation) Reverse() Rotation { return None.Sub(r) }

// String returns "None", "Clockwise", "Flip" or "Counterclockwise".
func (r Rotation) String() string {
	switch r {
	case None:
		return "None"
	case Clockwise:
		return "Clockwise"
	case Flip:
		return "Flip"
	case Counterclockwise:
		return "Counterclockwise"
	default:
		return "unknown"
	}
}

// mod4 is x mod 4 in [0,4).
func mod4(x int) int {
	return ((x % 4) + 4) % 4
}
