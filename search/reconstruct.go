package search

import "slices"

// singlePath follows the first predecessor of each key from target back to
// Start and returns the nodes in Start → target order.
func (r *runner[N, K, C]) singlePath(target K) []N {
	var nodes []N
	for k := target; ; {
		rec := r.records[k]
		nodes = append(nodes, rec.node)
		if k == r.startKey || len(rec.parents) == 0 {
			break
		}
		k = rec.parents[0]
	}
	slices.Reverse(nodes)

	return nodes
}

// reachedMap exports every settled key as a Reached record.
func (r *runner[N, K, C]) reachedMap() map[K]Reached[N, K, C] {
	out := make(map[K]Reached[N, K, C], len(r.records))
	for k, rec := range r.records {
		if !rec.settled {
			// pushed but never settled: DijkstraPartial stopped first
			continue
		}
		reached := Reached[N, K, C]{Node: rec.node, Cost: rec.cost}
		if k != r.startKey && len(rec.parents) > 0 {
			reached.Parent, reached.HasParent = rec.parents[0], true
		}
		out[k] = reached
	}

	return out
}

// predecessorGraph is the part of the predecessor multi-map that lies behind
// the success keys. Equal-cost predecessors can only form a cycle through
// zero-cost edges, so it is a DAG of strongly connected components where
// every nontrivial component is a zero-cost cycle.
//
// A simple path visits each component as one contiguous segment: once it
// leaves a component the DAG order forbids a return. The paths ending at k
// therefore split into a segment inside k's component, from some entry key u
// to k, preceded by any path ending at a parent of u outside the component.
// That prefix never touches k's component, so per-key memoization stays exact.
type predecessorGraph[N any, K comparable] struct {
	start   K
	nodes   map[K]N
	parents map[K][]K
	sinks   []K

	comp   map[K]int    // strongly connected component of each key
	cyclic map[int]bool // components with more than one key
	segs   map[K][][]K  // memoized in-component segments ending at a key
	counts map[K]int    // memoized path multiplicities
}

// buildPredecessors extracts the predecessor graph reachable backwards from
// r.sinks and labels its strongly connected components.
func (r *runner[N, K, C]) buildPredecessors() *predecessorGraph[N, K] {
	g := &predecessorGraph[N, K]{
		start:   r.startKey,
		nodes:   make(map[K]N),
		parents: make(map[K][]K),
		sinks:   slices.Clone(r.sinks),
		comp:    make(map[K]int),
		cyclic:  make(map[int]bool),
		segs:    make(map[K][][]K),
		counts:  make(map[K]int),
	}
	stack := slices.Clone(g.sinks)
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := g.nodes[k]; ok {
			continue
		}
		rec := r.records[k]
		g.nodes[k] = rec.node
		if k == r.startKey {
			continue
		}
		g.parents[k] = slices.Clone(rec.parents)
		stack = append(stack, rec.parents...)
	}
	g.components()

	return g
}

// components runs Tarjan's algorithm over the parent edges.
func (g *predecessorGraph[N, K]) components() {
	index := make(map[K]int, len(g.nodes))
	low := make(map[K]int, len(g.nodes))
	onStack := make(map[K]bool)
	var stack []K
	next, id := 0, 0

	var strong func(k K)
	strong = func(k K) {
		index[k], low[k] = next, next
		next++
		stack = append(stack, k)
		onStack[k] = true
		for _, p := range g.parents[k] {
			if _, seen := index[p]; !seen {
				strong(p)
				low[k] = min(low[k], low[p])
			} else if onStack[p] {
				low[k] = min(low[k], index[p])
			}
		}
		if low[k] != index[k] {
			return
		}
		size := 0
		for {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[top] = false
			g.comp[top] = id
			size++
			if top == k {
				break
			}
		}
		if size > 1 {
			g.cyclic[id] = true
		}
		id++
	}
	for _, s := range g.sinks {
		if _, seen := index[s]; !seen {
			strong(s)
		}
	}
}

// segments returns every simple path inside k's component that ends at k,
// entry key first. A key outside any cycle has the single segment [k].
func (g *predecessorGraph[N, K]) segments(k K) [][]K {
	if s, ok := g.segs[k]; ok {
		return s
	}
	c := g.comp[k]
	if !g.cyclic[c] {
		g.segs[k] = [][]K{{k}}
		return g.segs[k]
	}
	var out [][]K
	trail := []K{k} // k → current key
	onTrail := map[K]bool{k: true}
	var walk func(u K)
	walk = func(u K) {
		seg := slices.Clone(trail)
		slices.Reverse(seg)
		out = append(out, seg)
		for _, p := range g.parents[u] {
			if g.comp[p] != c || onTrail[p] {
				continue
			}
			onTrail[p] = true
			trail = append(trail, p)
			walk(p)
			trail = trail[:len(trail)-1]
			onTrail[p] = false
		}
	}
	walk(k)
	g.segs[k] = out

	return out
}

// entries lists the parents of u that lie outside its component.
func (g *predecessorGraph[N, K]) entries(u K) []K {
	var out []K
	for _, p := range g.parents[u] {
		if g.comp[p] != g.comp[u] {
			out = append(out, p)
		}
	}

	return out
}

// enter returns the number of paths that arrive at u from outside its
// component: 1 for start, otherwise Σ count(p) over the entries p of u.
func (g *predecessorGraph[N, K]) enter(u K) int {
	if u == g.start {
		return 1
	}
	total := 0
	for _, p := range g.entries(u) {
		total += g.count(p)
	}

	return total
}

// count returns the number of distinct simple paths from start to k.
func (g *predecessorGraph[N, K]) count(k K) int {
	if c, ok := g.counts[k]; ok {
		return c
	}
	total := 0
	for _, seg := range g.segments(k) {
		total += g.enter(seg[0])
	}
	g.counts[k] = total

	return total
}

// total sums count over the sinks.
func (g *predecessorGraph[N, K]) total() int {
	n := 0
	for _, s := range g.sinks {
		n += g.count(s)
	}

	return n
}

// materialize maps keys to their nodes.
func (g *predecessorGraph[N, K]) materialize(keys []K) []N {
	out := make([]N, len(keys))
	for i, k := range keys {
		out[i] = g.nodes[k]
	}

	return out
}

// prefixes returns every start → k path, memoized per key so a sub-graph
// shared by several routes is enumerated once.
func (g *predecessorGraph[N, K]) prefixes(k K, memo map[K][][]N) [][]N {
	if ps, ok := memo[k]; ok {
		return ps
	}
	var out [][]N
	for _, seg := range g.segments(k) {
		tail := g.materialize(seg)
		if seg[0] == g.start {
			out = append(out, tail)
			continue
		}
		for _, p := range g.entries(seg[0]) {
			for _, pre := range g.prefixes(p, memo) {
				path := make([]N, 0, len(pre)+len(tail))
				path = append(path, pre...)
				out = append(out, append(path, tail...))
			}
		}
	}
	memo[k] = out

	return out
}
