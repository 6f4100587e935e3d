// Package core implements the dense-integer-id engine backing the
// two-watched-literal family of search procedures (recursive and iterative,
// with optional VSIDS variable ordering and geometric restarts).
//
// Variables are assigned small integer ids; a Literal packs a variable id and
// a polarity bit (varID*2 + polarity), following the encoding used by
// two-watched-literal SAT engines generally. This package carries no
// conflict-driven clause learning: a conflict discovered during search is
// resolved by chronological backtracking to the most recent undecided
// alternative, not by deriving and recording a new clause.
package core
