// Package lazypath is a generic best-first search toolkit for graphs that are
// never built up front: successors are pulled lazily, one node at a time,
// from caller callbacks.
//
// 🚀 What is in the box?
//
//	• A*, Dijkstra and partial Dijkstra over any node type
//	• Bags of every minimal-cost path, enumerated lazily or all at once
//	• Counting minimal-cost paths without materializing them
//	• Single-source "cost to everything" maps with path rebuilding
//	• A 2D grid toolkit: locations, vectors, headings, rotations, regions
//	• Opt-in Prometheus metrics, OpenTelemetry spans and slog records
//
// ✨ Why choose lazypath?
//
//   - Generic – nodes of any type, identified by a comparable key you choose
//   - Lazy – successors are an iter.Seq2, so infinite or huge graphs are fine
//   - Exact – every equal-cost simple path is kept, even through zero-cost cycles
//   - Quiet – no logging or globals unless you plug an observer in
//
// Packages:
//
//	frontier/   : min-priority queue with FIFO tie-breaking
//	search/     : AStar, Dijkstra, AStarBag, CountPaths, DijkstraAll, DijkstraPartial
//	grid/       : Location, Vector, Direction, Rotation, CharacterGrid, ArrayGrid, Regions
//	instrument/ : search.Observer implementations for Prometheus, OpenTelemetry and slog
//
// Quick ASCII example:
//
//	S . . . .
//	# # # # .
//	E . . . .
//
//	the only route from S to E goes through the gap on the right: cost 10.
//
//	go get github.com/katalvlaran/lazypath
package lazypath
