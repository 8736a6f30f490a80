package search

import (
	"iter"
	"slices"
)

// Bag is the set of all minimal-cost paths found by AStarBag.
//
// Paths are never stored explicitly: the Bag keeps the predecessor graph and
// derives counts, path lists and node sets from it on demand. Zero-cost
// cycles are allowed; only simple paths are counted or enumerated.
type Bag[N any, K comparable, C Cost] struct {
	cost  C
	preds *predecessorGraph[N, K]
}

// Cost returns the shared minimal cost of every path in the bag.
func (b *Bag[N, K, C]) Cost() C { return b.cost }

// Count returns the number of paths without materializing them.
func (b *Bag[N, K, C]) Count() int { return b.preds.total() }

// Paths returns every path, Start first. Sub-paths shared by several routes
// are computed once per key.
func (b *Bag[N, K, C]) Paths() [][]N {
	memo := make(map[K][][]N, len(b.preds.nodes))
	var out [][]N
	for _, s := range b.preds.sinks {
		out = append(out, b.preds.prefixes(s, memo)...)
	}

	return out
}

// All yields the same paths as Paths, in the same order, one at a time.
// Nothing beyond the path under construction is held, which suits bags too
// large to hold at once. Each yielded slice is freshly allocated.
func (b *Bag[N, K, C]) All() iter.Seq[[]N] {
	g := b.preds
	return func(yield func([]N) bool) {
		var walk func(k K, suffix []K) bool
		walk = func(k K, suffix []K) bool {
			for _, seg := range g.segments(k) {
				keys := append(slices.Clone(seg), suffix...)
				if seg[0] == g.start {
					if !yield(g.materialize(keys)) {
						return false
					}
					continue
				}
				for _, p := range g.entries(seg[0]) {
					if !walk(p, keys) {
						return false
					}
				}
			}
			return true
		}
		for _, s := range g.sinks {
			if !walk(s, nil) {
				return
			}
		}
	}
}

// Nodes returns each distinct node lying on at least one path of the bag,
// in order of discovery walking back from the sinks.
func (b *Bag[N, K, C]) Nodes() []N {
	g := b.preds
	visited := make(map[K]bool, len(g.nodes))
	added := make(map[K]bool, len(g.nodes))
	var out []N
	var walk func(k K)
	walk = func(k K) {
		if visited[k] {
			return
		}
		visited[k] = true
		for _, seg := range g.segments(k) {
			if g.enter(seg[0]) == 0 {
				continue
			}
			for i := len(seg) - 1; i >= 0; i-- {
				if !added[seg[i]] {
					added[seg[i]] = true
					out = append(out, g.nodes[seg[i]])
				}
			}
			for _, p := range g.entries(seg[0]) {
				walk(p)
			}
		}
	}
	for _, s := range g.sinks {
		walk(s)
	}

	return out
}

// Sinks returns the success nodes reached at the minimal cost.
func (b *Bag[N, K, C]) Sinks() []N {
	out := make([]N, 0, len(b.preds.sinks))
	for _, s := range b.preds.sinks {
		out = append(out, b.preds.nodes[s])
	}

	return out
}
