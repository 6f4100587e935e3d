// Package sat implements a Boolean satisfiability engine built around the
// DPLL family of backtracking search procedures: naive chronological
// backtracking, unit propagation, pure-literal elimination, a
// two-watched-literal propagator (recursive and iterative), VSIDS
// variable-activity scoring, and geometric restarts.
//
// A formula is given as a list of clauses, each clause a list of literal
// tokens. A literal token is a variable name ("x"), or a variable name
// prefixed with "-" to denote its negation ("-x"). The package does not
// interpret variable names beyond equality; any string works.
//
// This package implements no conflict-driven clause learning and keeps no
// unsatisfiability proof: it is a pre-CDCL engine, matching the DPLL
// variants described above and nothing more.
package sat
