package search

// CountPaths returns the number of distinct minimal-cost paths from p.Start
// to nodes satisfying p.Success.
//
// It runs the same search as AStarBag, then propagates path multiplicities
// over the predecessor graph (count(Start) = 1, count(k) = Σ count(parent))
// instead of enumerating paths. Zero-cost cycles are resolved the same way
// Bag does it: only simple paths count. An unreachable goal yields 0.
//
// For unweighted graphs wrap the neighbor sequence with Unit.
func CountPaths[N any, K comparable, C Cost](p Problem[N, K, C], opts ...Option) (int, error) {
	r, err := prepare(p, opts, ModeCount, true)
	if err != nil {
		return 0, err
	}
	if err = r.run(); err != nil {
		return 0, err
	}
	if !r.found {
		return 0, nil
	}

	return r.buildPredecessors().total(), nil
}
