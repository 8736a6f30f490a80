package search

// DijkstraAll settles every key reachable from p.Start and returns, for each,
// its minimal cost and one predecessor achieving it. p.Success and
// p.Heuristic are ignored; unreachable keys are simply absent.
//
// The Start key is present with cost 0 and HasParent == false.
func DijkstraAll[N any, K comparable, C Cost](p Problem[N, K, C], opts ...Option) (map[K]Reached[N, K, C], error) {
	p.Heuristic = nil
	r, err := prepare(p, opts, ModeDijkstraAll, false)
	if err != nil {
		return nil, err
	}
	if err = r.run(); err != nil {
		return nil, err
	}

	return r.reachedMap(), nil
}

// DijkstraPartial is DijkstraAll that stops as soon as a node satisfying
// p.Success is settled.
//
// Returns:
//
//   - reached: every key settled so far, the target included.
//   - target:  the key of the success node (zero value when not found).
//   - found:   false when the frontier drained first; reached then holds
//     every reachable key, as DijkstraAll would.
func DijkstraPartial[N any, K comparable, C Cost](p Problem[N, K, C], opts ...Option) (reached map[K]Reached[N, K, C], target K, found bool, err error) {
	p.Heuristic = nil
	r, err := prepare(p, opts, ModePartial, true)
	if err != nil {
		return nil, target, false, err
	}
	if err = r.run(); err != nil {
		return nil, target, false, err
	}
	if r.found {
		target = r.sinks[0]
	}

	return r.reachedMap(), target, r.found, nil
}

// BuildPath rebuilds the Start → target path recorded in a DijkstraAll or
// DijkstraPartial result. ok is false when target is absent from reached.
func BuildPath[N any, K comparable, C Cost](target K, reached map[K]Reached[N, K, C]) (path []N, ok bool) {
	cur, ok := reached[target]
	if !ok {
		return nil, false
	}
	path = append(path, cur.Node)
	// Every step moves to a strictly earlier settled key, so len(reached)
	// bounds the walk even for a corrupted map.
	for steps := 0; cur.HasParent && steps < len(reached); steps++ {
		cur, ok = reached[cur.Parent]
		if !ok {
			return nil, false
		}
		path = append(path, cur.Node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
