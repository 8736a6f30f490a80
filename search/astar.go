package search

// AStar finds one minimal-cost path from p.Start to a node satisfying
// p.Success, guided by p.Heuristic.
//
// Returns:
//
//   - path:  the nodes from Start to the goal, both included, and the total cost.
//     A Start that already satisfies Success yields a one-node path of cost 0.
//   - found: false when the frontier drained without reaching a goal.
//   - err:   ErrNilSuccessors, ErrNilKey, ErrNilSuccess, ErrOptionViolation
//     for an invalid call, ErrExpansionLimit when the budget ran out.
//
// The result is optimal when edge costs are nonnegative and the heuristic
// is admissible.
func AStar[N any, K comparable, C Cost](p Problem[N, K, C], opts ...Option) (path Path[N, C], found bool, err error) {
	r, err := prepare(p, opts, ModeAStar, true)
	if err != nil {
		return path, false, err
	}
	if err = r.run(); err != nil {
		return path, false, err
	}
	if !r.found {
		return path, false, nil
	}

	return Path[N, C]{Nodes: r.singlePath(r.sinks[0]), Cost: r.best}, true, nil
}

// Dijkstra is AStar without a heuristic: p.Heuristic is ignored and every
// node is prioritized by its accumulated cost alone.
func Dijkstra[N any, K comparable, C Cost](p Problem[N, K, C], opts ...Option) (Path[N, C], bool, error) {
	p.Heuristic = nil

	return AStar(p, opts...)
}

// AStarBag finds every path whose cost equals the global minimum cost from
// p.Start to any node satisfying p.Success.
//
// The search keeps all equal-cost predecessors of each key and keeps popping
// until the frontier priority exceeds the best success cost, so goals and
// routes tied at that cost are all captured. The returned Bag enumerates
// the paths from the recorded predecessor graph without searching again.
//
// found is false (and bag nil) when no goal is reachable.
func AStarBag[N any, K comparable, C Cost](p Problem[N, K, C], opts ...Option) (bag *Bag[N, K, C], found bool, err error) {
	r, err := prepare(p, opts, ModeBag, true)
	if err != nil {
		return nil, false, err
	}
	if err = r.run(); err != nil {
		return nil, false, err
	}
	if !r.found {
		return nil, false, nil
	}

	return &Bag[N, K, C]{cost: r.best, preds: r.buildPredecessors()}, true, nil
}

// prepare validates p and opts and returns a runner for mode.
func prepare[N any, K comparable, C Cost](p Problem[N, K, C], opts []Option, mode Mode, needSuccess bool) (*runner[N, K, C], error) {
	if err := p.validate(needSuccess); err != nil {
		return nil, err
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return newRunner(p, cfg, mode), nil
}
