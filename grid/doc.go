// Package grid provides the two-dimensional coordinate toolkit used with
// package search: locations, vectors, directions, rotations, and
// fixed-size grids of characters or arbitrary values.
//
// Coordinates are (Row, Column) with Row growing downward and Column growing
// to the right, so Up is a negative row offset.
//
// Grids are bounded: Get on an out-of-bounds Location reports ok == false
// instead of failing, which lets successor functions probe neighbors freely.
//
// Bridges into search:
//
//   - Successors turns a Grid plus a Connectivity and a passability rule into
//     a Problem.Successors function with unit edge costs.
//   - Manhattan builds an admissible A* heuristic towards a goal.
//   - Regions groups equal-valued cells into connected regions, settling each
//     region with search.DijkstraAll.
//
// Neighbor tables (OrthogonalNeighbors, DiagonalNeighbors, AllNeighbors) are
// built once per process and handed out as copies.
package grid
