package search

import "time"

// Mode identifies which entry point ran a search.
type Mode int

const (
	// ModeAStar is a single-path search (AStar, Dijkstra).
	ModeAStar Mode = iota
	// ModeBag collects every minimal-cost path (AStarBag).
	ModeBag
	// ModeCount counts minimal-cost paths (CountPaths).
	ModeCount
	// ModeDijkstraAll settles every reachable key (DijkstraAll).
	ModeDijkstraAll
	// ModePartial settles keys until a success node (DijkstraPartial).
	ModePartial
)

// String returns the lowercase name used in logs and metric labels.
func (m Mode) String() string {
	switch m {
	case ModeAStar:
		return "astar"
	case ModeBag:
		return "bag"
	case ModeCount:
		return "count"
	case ModeDijkstraAll:
		return "dijkstra_all"
	case ModePartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Outcome is how a search ended.
type Outcome int

const (
	// OutcomeFound means a success node was reached.
	OutcomeFound Outcome = iota
	// OutcomeExhausted means the frontier drained. For DijkstraAll this is
	// the normal ending.
	OutcomeExhausted
	// OutcomeAborted means the search stopped early with an error.
	OutcomeAborted
)

// String returns the lowercase name used in logs and metric labels.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Report summarizes one finished search.
type Report struct {
	Mode         Mode
	Outcome      Outcome
	Expanded     int // nodes settled and expanded
	Pushed       int // frontier entries pushed, Start included
	Discarded    int // stale or duplicate entries popped and dropped
	PeakFrontier int // largest frontier length observed
	Started      time.Time
	Elapsed      time.Duration
	Err          error // set when Outcome is OutcomeAborted
}

// Observer receives a Report when a search finishes. Implementations must be
// safe for concurrent use if searches run concurrently.
type Observer interface {
	ObserveSearch(r Report)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(r Report)

// ObserveSearch calls f(r).
func (f ObserverFunc) ObserveSearch(r Report) { f(r) }
