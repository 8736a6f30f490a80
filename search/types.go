package search

import (
	"errors"
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilSuccessors indicates Problem.Successors was not set.
	ErrNilSuccessors = errors.New("search: successors function is nil")

	// ErrNilKey indicates Problem.Key was not set.
	ErrNilKey = errors.New("search: key function is nil")

	// ErrNilSuccess indicates Problem.Success was not set for a variant that needs it.
	ErrNilSuccess = errors.New("search: success predicate is nil")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit indicates the WithMaxExpansions budget ran out
	// before the search could finish.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Cost is the set of numeric types usable as edge costs and priorities.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Problem describes one search: where it starts, how to move, and when to stop.
//
//	Start      – initial node.
//	Successors – neighbors of a node with the nonnegative cost of reaching them.
//	Heuristic  – optional admissible estimate of the remaining cost (nil = 0).
//	Success    – goal predicate. Ignored by DijkstraAll.
//	Key        – canonical identity of a node; nodes with equal keys are the same node.
//	OnExpand   – optional hook called each time a node is settled and expanded.
type Problem[N any, K comparable, C Cost] struct {
	Start      N
	Successors func(node N) iter.Seq2[N, C]
	Heuristic  func(node N) C
	Success    func(node N) bool
	Key        func(node N) K
	OnExpand   func(node N, cost C)
}

// validate checks the callbacks every variant needs, plus Success when needSuccess is set.
func (p *Problem[N, K, C]) validate(needSuccess bool) error {
	if p.Successors == nil {
		return ErrNilSuccessors
	}
	if p.Key == nil {
		return ErrNilKey
	}
	if needSuccess && p.Success == nil {
		return ErrNilSuccess
	}

	return nil
}

// Edge is an outgoing (neighbor, cost) pair, handy for building successor lists.
type Edge[N any, C Cost] struct {
	To   N
	Cost C
}

// Edges adapts a fixed list of edges to a successor sequence.
func Edges[N any, C Cost](edges ...Edge[N, C]) iter.Seq2[N, C] {
	return func(yield func(N, C) bool) {
		for _, e := range edges {
			if !yield(e.To, e.Cost) {
				return
			}
		}
	}
}

// Unit adapts a sequence of neighbors to a successor sequence where every
// edge costs 1.
func Unit[N any, C Cost](nodes iter.Seq[N]) iter.Seq2[N, C] {
	return func(yield func(N, C) bool) {
		for n := range nodes {
			if !yield(n, 1) {
				return
			}
		}
	}
}

// Identity returns a key function for node types that are already comparable.
func Identity[N comparable]() func(N) N {
	return func(n N) N { return n }
}

// Path is one route from Start to a success node with its total cost.
type Path[N any, C Cost] struct {
	Nodes []N
	Cost  C
}

// Len returns the number of nodes on the path, Start included.
func (p Path[N, C]) Len() int { return len(p.Nodes) }

// First returns the first node of the path. ok is false for an empty path.
func (p Path[N, C]) First() (n N, ok bool) {
	if len(p.Nodes) == 0 {
		return n, false
	}

	return p.Nodes[0], true
}

// Last returns the final node of the path. ok is false for an empty path.
func (p Path[N, C]) Last() (n N, ok bool) {
	if len(p.Nodes) == 0 {
		return n, false
	}

	return p.Nodes[len(p.Nodes)-1], true
}

// Reached is the DijkstraAll record for one key: the node, its minimal cost
// and the key of one predecessor achieving that cost. The Start key has
// HasParent == false.
type Reached[N any, K comparable, C Cost] struct {
	Node      N
	Cost      C
	Parent    K
	HasParent bool
}

// Options configures a search beyond the Problem itself.
//
// MaxExpansions – expansion budget; 0 means unlimited.
// Observer      – receives one Report per finished search (nil = none).
// CapacityHint  – initial size of the frontier and settled map.
type Options struct {
	MaxExpansions int
	Observer      Observer
	CapacityHint  int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with no budget, no observer and a small
// capacity hint.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Observer:      nil,
		CapacityHint:  64,
	}
}

// WithMaxExpansions caps the number of node expansions.
//
//	n > 0: stop with ErrExpansionLimit once n nodes were expanded and more are pending
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithObserver registers an Observer notified when the search finishes.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithCapacityHint presizes internal storage for roughly n nodes.
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: CapacityHint cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.CapacityHint = n
	}
}

// buildOptions applies opts over DefaultOptions and surfaces any recorded error.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}

	return cfg, nil
}
