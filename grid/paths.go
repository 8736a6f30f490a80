package grid

import (
	"iter"

	"github.com/katalvlaran/lazypath/search"
)

// Successors returns a search successor function that steps from a cell to
// each in-bounds neighbor under conn at cost 1. passable decides whether the
// move from a cell holding from onto a cell holding to is allowed; nil
// allows every move.
func Successors[T any](g Grid[T], conn Connectivity, passable func(from, to T) bool) func(Location) iter.Seq2[Location, int] {
	offsets := conn.Offsets()
	return func(l Location) iter.Seq2[Location, int] {
		return func(yield func(Location, int) bool) {
			from, ok := g.Get(l)
			if !ok {
				return
			}
			for _, d := range offsets {
				n := l.Add(d)
				to, ok := g.Get(n)
				if !ok {
					continue
				}
				if passable != nil && !passable(from, to) {
					continue
				}
				if !yield(n, 1) {
					return
				}
			}
		}
	}
}

// LocationKey is a string key for locations, in the "row,column" form.
// Location is comparable, so search.Identity[Location] works as well.
func LocationKey(l Location) string { return l.String() }

// Manhattan returns the L1 distance to goal, an admissible heuristic for
// unit-cost orthogonal moves.
func Manhattan(goal Location) func(Location) int {
	return func(l Location) int { return l.Sub(goal).L1Norm() }
}

// LocationsInManhattanDistance yields every location whose L1 distance from
// center is at most distance, center included, row by row.
func LocationsInManhattanDistance(center Location, distance int) iter.Seq[Location] {
	return func(yield func(Location) bool) {
		for dr := -distance; dr <= distance; dr++ {
			span := distance - abs(dr)
			for dc := -span; dc <= span; dc++ {
				if !yield(Location{Row: center.Row + dr, Column: center.Column + dc}) {
					return
				}
			}
		}
	}
}

// Problem is a convenience constructor for a grid search from start to goal
// with unit costs, keyed by Location itself. Under Conn4 it also carries the
// Manhattan heuristic; diagonal moves would make that estimate too high.
func Problem[T any](g Grid[T], conn Connectivity, start, goal Location, passable func(from, to T) bool) search.Problem[Location, Location, int] {
	p := search.Problem[Location, Location, int]{
		Start:      start,
		Successors: Successors(g, conn, passable),
		Success:    func(l Location) bool { return l == goal },
		Key:        search.Identity[Location](),
	}
	if conn == Conn4 {
		p.Heuristic = Manhattan(goal)
	}

	return p
}
