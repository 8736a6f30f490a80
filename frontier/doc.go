// Package frontier provides the priority queue that drives best-first search.
//
// Overview:
//
//   - Queue is a binary min-heap keyed by a caller-supplied priority.
//   - Equal priorities are served in insertion order (FIFO), so a sequence of
//     pushes and pops is fully deterministic for a given input.
//   - Pop and Peek report an empty queue through a boolean instead of panicking.
//
// Complexity:
//
//   - Push: O(log n)
//   - Pop:  O(log n)
//   - Peek, Len: O(1)
//   - Space: O(n) for n pending entries.
//
// The search package pushes one entry per relaxation and discards stale
// entries lazily on Pop (the "lazy decrease-key" strategy), so n is bounded
// by the number of relaxations rather than by the number of distinct nodes.
//
// Thread safety:
//
//   - A Queue is owned by a single search invocation and is not safe for
//     concurrent use.
package frontier
