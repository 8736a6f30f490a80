package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lazypath/frontier"
)

// record is the settled bookkeeping for one key.
//
// In single-predecessor modes parents holds at most one key (the first
// predecessor found at the minimal cost). In bag and count modes it holds
// every distinct predecessor achieving the minimal cost.
type record[N any, K comparable, C Cost] struct {
	node    N
	cost    C
	parents []K
	settled bool
}

// pending is a frontier entry: the node to expand and the cost it was pushed with.
type pending[N any, K comparable, C Cost] struct {
	node N
	key  K
	cost C
}

// runner holds the mutable state for a single search execution.
type runner[N any, K comparable, C Cost] struct {
	p    Problem[N, K, C]
	opts Options
	mode Mode

	multi       bool // keep every equal-cost predecessor
	checkGoal   bool // consult Success on pop
	stopAtFirst bool // return on the first success pop

	startKey K
	records  map[K]*record[N, K, C]
	pq       *frontier.Queue[pending[N, K, C], C]

	found bool
	best  C   // cost of the best success node
	sinks []K // success keys settled at best

	report Report
}

// newRunner wires a runner for mode. The caller has already validated p.
func newRunner[N any, K comparable, C Cost](p Problem[N, K, C], opts Options, mode Mode) *runner[N, K, C] {
	r := &runner[N, K, C]{
		p:       p,
		opts:    opts,
		mode:    mode,
		records: make(map[K]*record[N, K, C], opts.CapacityHint),
		pq:      frontier.New[pending[N, K, C], C](opts.CapacityHint),
		report:  Report{Mode: mode},
	}
	switch mode {
	case ModeAStar, ModePartial:
		r.checkGoal, r.stopAtFirst = true, true
	case ModeBag, ModeCount:
		r.checkGoal, r.multi = true, true
	case ModeDijkstraAll:
		// settles everything, never consults Success
	}

	return r
}

// heuristic evaluates Problem.Heuristic, treating nil as the zero estimate.
func (r *runner[N, K, C]) heuristic(n N) C {
	if r.p.Heuristic == nil {
		var zero C
		return zero
	}

	return r.p.Heuristic(n)
}

// push enqueues n at cost with priority cost + heuristic(n).
func (r *runner[N, K, C]) push(n N, k K, cost C) {
	r.pq.Push(pending[N, K, C]{node: n, key: k, cost: cost}, cost+r.heuristic(n))
	r.report.Pushed++
	if l := r.pq.Len(); l > r.report.PeakFrontier {
		r.report.PeakFrontier = l
	}
}

// run executes the shared expansion loop and notifies the observer.
// A nil error with r.found == false means the frontier was exhausted.
func (r *runner[N, K, C]) run() (err error) {
	r.report.Started = time.Now()
	defer func() {
		r.report.Elapsed = time.Since(r.report.Started)
		r.report.Err = err
		switch {
		case err != nil:
			r.report.Outcome = OutcomeAborted
		case r.found:
			r.report.Outcome = OutcomeFound
		default:
			r.report.Outcome = OutcomeExhausted
		}
		if r.opts.Observer != nil {
			r.opts.Observer.ObserveSearch(r.report)
		}
	}()

	// 1) Seed the frontier with Start at cost 0.
	var zero C
	r.startKey = r.p.Key(r.p.Start)
	r.records[r.startKey] = &record[N, K, C]{node: r.p.Start, cost: zero}
	r.push(r.p.Start, r.startKey, zero)

	for {
		// 2) Pop the lowest priority entry; a drained frontier ends the search.
		e, priority, ok := r.pq.Pop()
		if !ok {
			return nil
		}

		// Bag/count: nothing pending can still tie with the best success cost.
		if r.found && priority > r.best {
			return nil
		}

		// 3) Stale (a cheaper cost settled since the push) or already expanded.
		rec := r.records[e.key]
		if e.cost > rec.cost || rec.settled {
			r.report.Discarded++
			continue
		}

		// 4) Goal test.
		if r.checkGoal && r.p.Success(e.node) {
			if r.stopAtFirst {
				rec.settled = true
				r.found, r.best = true, rec.cost
				r.sinks = append(r.sinks[:0], e.key)
				return nil
			}
			if !r.found || rec.cost < r.best {
				r.found, r.best = true, rec.cost
				r.sinks = r.sinks[:0]
			}
			if rec.cost == r.best {
				r.sinks = append(r.sinks, e.key)
			}
		}

		// Budget check before doing any more work.
		if r.opts.MaxExpansions > 0 && r.report.Expanded >= r.opts.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.report.Expanded)
		}

		// 5) Settle and relax.
		rec.settled = true
		r.report.Expanded++
		if r.p.OnExpand != nil {
			r.p.OnExpand(e.node, rec.cost)
		}
		r.relax(e.node, e.key, rec.cost)
	}
}

// relax pulls the successors of n (settled at cost) and records every
// improvement, plus equal-cost alternatives in multi mode.
func (r *runner[N, K, C]) relax(n N, k K, cost C) {
	seq := r.p.Successors(n)
	if seq == nil {
		return
	}
	for next, w := range seq {
		nc := cost + w
		nk := r.p.Key(next)
		rec, seen := r.records[nk]
		switch {
		case !seen:
			r.records[nk] = &record[N, K, C]{node: next, cost: nc, parents: []K{k}}
			r.push(next, nk, nc)

		case nc < rec.cost:
			// A strictly cheaper route: forget previous predecessors and
			// reopen the key even if it was expanded (inconsistent heuristic).
			rec.node, rec.cost, rec.settled = next, nc, false
			rec.parents = append(rec.parents[:0], k)
			r.push(next, nk, nc)

		case nc == rec.cost && r.multi && nk != r.startKey && nk != k:
			// Equal-cost alternative: already queued or settled at this
			// cost, so only the predecessor edge is merged.
			if !containsKey(rec.parents, k) {
				rec.parents = append(rec.parents, k)
			}
		}
	}
}

// containsKey reports whether ks holds k.
func containsKey[K comparable](ks []K, k K) bool {
	for _, x := range ks {
		if x == k {
			return true
		}
	}

	return false
}
