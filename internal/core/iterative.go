package core

import "log"

// SearchStatus reports the outcome of a single iterative search attempt.
type SearchStatus int

const (
	StatusUnsat SearchStatus = iota
	StatusSat
	StatusRestart
)

func (s SearchStatus) String() string {
	switch s {
	case StatusSat:
		return "sat"
	case StatusUnsat:
		return "unsat"
	default:
		return "restart"
	}
}

// decision records a branch taken during iterative search: the variable
// decided, and whether its negative phase has already been tried.
type decision struct {
	variable int
	flipped  bool
}

// SolveIterative runs DPLL over f using an explicit decision stack instead of
// recursion. scorer may be nil, in which case the first unassigned variable
// (in id order) is chosen at each decision. conflictLimit bounds the number
// of conflicts this attempt may absorb before giving up with StatusRestart;
// zero means no limit.
//
// A conflict is resolved by chronological backtracking: the most recent
// decision is flipped to its negative phase if that has not yet been tried,
// or popped entirely and the search backtracks further. No clause is ever
// learnt from a conflict.
func SolveIterative(f *Formula, scorer *VSIDSScorer, conflictLimit int64) SearchStatus {
	var stack []decision
	var conflicts int64

	if scorer != nil {
		// Every variable UndoOne unassigns must be offered back to NextVar,
		// not just the frame's own decision variable: NextVar pops entries
		// off the order heap as it skip-searches past assigned variables,
		// so a variable forced by BCP within a decision level is just as
		// liable to be evicted as the decision variable itself.
		f.SetUndoHook(scorer.Reinsert)
		defer f.SetUndoHook(nil)
	}

	if f.Propagate() != nil {
		return StatusUnsat
	}

	for {
		if f.Satisfied() {
			return StatusSat
		}

		var v int
		var hasVar bool
		if scorer != nil {
			v, hasVar = scorer.NextVar()
		} else {
			v, hasVar = firstUnassignedVar(f)
		}

		var conflict bool
		if !hasVar {
			conflict = !f.Satisfied()
		} else {
			f.Assume(PositiveLiteral(v))
			stack = append(stack, decision{variable: v})
			conflict = f.Propagate() != nil
		}

		for conflict {
			conflicts++
			if conflictLimit > 0 && conflicts >= conflictLimit {
				return StatusRestart
			}
			if len(stack) == 0 {
				return StatusUnsat
			}

			top := &stack[len(stack)-1]
			if scorer != nil {
				scorer.Bump(top.variable)
				scorer.Decay()
			}

			f.CancelUntil(len(stack) - 1)

			if !top.flipped {
				top.flipped = true
				f.Assume(NegativeLiteral(top.variable))
				conflict = f.Propagate() != nil
			} else {
				stack = stack[:len(stack)-1]
				conflict = true
			}
		}
	}
}

// SolveWithRestarts repeatedly attempts SolveIterative with a geometrically
// growing conflict budget, giving the (VSIDS) variable order a chance to
// settle on a better branching sequence after each restart. The formula is
// reset to the root level before every attempt, discarding the partial
// assignment accumulated so far; the watch lists themselves are never
// rebuilt, since they do not depend on the assignment.
func SolveWithRestarts(f *Formula, scorer *VSIDSScorer) SearchStatus {
	const (
		initialLimit = 100
		growthFactor = 1.5
		maxRestarts  = 1000
	)

	conflictLimit := int64(initialLimit)
	conflictRate := newEMA(0.9)

	for restart := 0; restart < maxRestarts; restart++ {
		before := f.Conflicts
		status := SolveIterative(f, scorer, conflictLimit)
		conflictRate.add(float64(f.Conflicts - before))

		if status != StatusRestart {
			return status
		}

		log.Printf("dpllsat: restart %d, conflict limit %d, conflict rate %.1f", restart, conflictLimit, conflictRate.val())

		if scorer != nil {
			f.SetUndoHook(scorer.Reinsert)
		}
		f.CancelUntil(0)
		f.SetUndoHook(nil)
		conflictLimit = int64(float64(conflictLimit) * growthFactor)
	}

	return SolveIterative(f, scorer, 0)
}
