package grid

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lazypath/search"
)

// Region is a maximal connected set of cells sharing one value.
type Region[T comparable] struct {
	Value     T
	Locations []Location // row-major order
	Perimeter int        // orthogonal cell sides bordering another value or the grid edge
}

// Area returns the number of cells in the region.
func (r Region[T]) Area() int { return len(r.Locations) }

// Regions partitions g into connected regions of equal value, according to
// conn connectivity. Regions are returned in row-major order of their first
// cell; each region is settled by one search.DijkstraAll run from that cell,
// so every Location in Regions[i].Locations shares Value and is reachable
// from the first one through equal-valued neighbors.
//
// Perimeter always counts orthogonal sides, also under Conn8.
//
// Time:   O(W·H·d·log(W·H)), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Regions[T comparable](g Grid[T], conn Connectivity) ([]Region[T], error) {
	dims := g.Dimensions()
	seen := make(map[Location]bool, dims.Rows*dims.Columns)
	var regions []Region[T]

	for start, value := range g.All() {
		if seen[start] {
			continue
		}
		reached, err := search.DijkstraAll(search.Problem[Location, Location, int]{
			Start:      start,
			Successors: Successors(g, conn, func(_, to T) bool { return to == value }),
			Key:        search.Identity[Location](),
		})
		if err != nil {
			return nil, err
		}

		region := Region[T]{Value: value, Locations: make([]Location, 0, len(reached))}
		for l := range reached {
			seen[l] = true
			region.Locations = append(region.Locations, l)
		}
		slices.SortFunc(region.Locations, compareLocations)
		region.Perimeter = perimeter(g, region.Locations, value)
		regions = append(regions, region)
	}

	return regions, nil
}

// perimeter counts the orthogonal sides of locs facing a different value.
func perimeter[T comparable](g Grid[T], locs []Location, value T) int {
	n := 0
	for _, l := range locs {
		for _, d := range orthogonal() {
			if v, ok := g.Get(l.Add(d)); !ok || v != value {
				n++
			}
		}
	}

	return n
}

// compareLocations orders locations row-major.
func compareLocations(a, b Location) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}

	return cmp.Compare(a.Column, b.Column)
}
