// Package maze defines the immutable grid model of a rectangular maze:
// the Border mask and Role of a single cell, the Square value that ties them
// to a position, and the Maze and Solution aggregates.
//
// What:
//
//   - Border: 4-bit wall mask (Top, Bottom, Left, Right) with the derived
//     Corner, DeadEnd and Intersection predicates.
//   - Role: closed set of cell roles (None, Enemy, Entrance, Exit, Exterior,
//     Reward, Wall), small enough to share a byte with a Border.
//   - Square: value type {Index, Row, Column, Border, Role}.
//   - Maze: row-major, dense, validated sequence of Squares with exactly one
//     Entrance and one Exit.
//   - Solution: ordered path of Squares from Entrance to Exit whose
//     consecutive cells share a row or a column.
//
// Invariants are checked once, at construction. A Maze or Solution that
// exists is valid for its whole lifetime; nothing in this package mutates
// them afterwards.
//
// Errors:
//
//   - ErrGridInvariant wraps every construction failure; the specific cause
//     is reported by one of ErrEmptyMaze, ErrIndexOrder, ErrRowColumn,
//     ErrNotRectangular, ErrEntranceCount, ErrExitCount, ErrInvalidRole,
//     ErrEmptySolution, ErrSolutionStart, ErrSolutionEnd, ErrSolutionCorridor.
//
// Complexity:
//
//   - New:         O(N) time, O(N) memory (the input is copied).
//   - NewSolution: O(L) time, O(L) memory for a path of L squares.
package maze
