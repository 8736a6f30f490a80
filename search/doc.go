// Package search implements a generic, lazily evaluated best-first search
// engine: A*, Dijkstra, equal-cost path bags and minimal-path counting over
// caller-defined nodes.
//
// Overview:
//
//   - Nodes are opaque values of any type N. The engine never looks inside a
//     node: it asks Problem.Key for a comparable identity K and hands the node
//     back to the caller's callbacks.
//   - Problem.Successors yields (neighbor, edge cost) pairs lazily as an
//     iter.Seq2. A sequence is consumed at most once per expansion.
//   - Edge costs are any integer or floating point type C (see Cost).
//   - An optional Problem.Heuristic turns Dijkstra into A*.
//
// Entry points:
//
//   - AStar:           one optimal path to the first node satisfying Success.
//   - Dijkstra:        AStar with the heuristic forced to zero.
//   - AStarBag:        every path of globally minimal cost, as a Bag.
//   - CountPaths:      the number of minimal-cost paths, without materializing them.
//   - DijkstraAll:     cost and one predecessor for every reachable key.
//   - DijkstraPartial: DijkstraAll that stops once a Success node is settled.
//   - BuildPath:       rebuilds a path from a DijkstraAll/DijkstraPartial map.
//
// All variants share one expansion loop:
//
//  1. Seed the frontier with (Start, cost 0, priority Heuristic(Start)).
//  2. Pop the lowest priority entry; an empty frontier means "no path".
//  3. Discard the entry if its key was since reached more cheaply or was
//     already expanded.
//  4. Check Success. AStar stops at once; AStarBag and CountPaths keep
//     popping until the frontier priority exceeds the best success cost.
//  5. Relax each successor: a strictly cheaper cost replaces the recorded
//     predecessor and pushes a new entry; an equal cost adds an alternative
//     predecessor (bag and count modes only).
//
// Reconstruction:
//
//   - Single paths follow one predecessor per key back to Start.
//   - Bags and counts walk the predecessor multi-map with per-key
//     memoization so re-converging routes are not re-enumerated.
//   - Zero-cost cycles show up there as strongly connected components.
//     Only simple paths are produced; inside such a component they are
//     enumerated by backtracking, which is exponential in its size.
//
// Absence is a value, not an error:
//
//   - AStar, Dijkstra and AStarBag report found == false.
//   - DijkstraAll leaves unreachable keys out of its map.
//   - CountPaths returns 0.
//
// Errors are reserved for programmer mistakes detectable at the call
// boundary (nil callbacks, invalid options) and for an exceeded
// WithMaxExpansions budget.
//
// Preconditions (not checked):
//
//   - Edge costs are nonnegative.
//   - The heuristic is admissible (never overestimates the remaining cost).
//
// Violating either yields non-optimal results rather than an error.
//
// Complexity:
//
//   - Time:  O((V + E) log E) node expansions and relaxations.
//   - Space: O(V + E) for the settled map and the lazy frontier.
//   - Bag enumeration is proportional to the size of the output; Count is
//     O(V + E) over the predecessor graph when it has no zero-cost cycle.
//
// Thread safety:
//
//   - Each call allocates its own frontier and maps. Concurrent calls are
//     safe as long as the caller's callbacks are.
package search
