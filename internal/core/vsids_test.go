package core

import "testing"

func TestVSIDSScorer_picksHighestActivityUnassigned(t *testing.T) {
	clauses := [][]Literal{lits(0), lits(1), lits(2)}
	f := NewFormula(3) // seed the scorer only: AddClause would assign unit clauses
	scorer := NewVSIDSScorer(f, clauses, 0.95)

	scorer.Bump(2)
	scorer.Bump(2)
	scorer.Bump(1)

	v, ok := scorer.NextVar()
	if !ok || v != 2 {
		t.Fatalf("NextVar() = (%d, %v), want (2, true)", v, ok)
	}
}

func TestVSIDSScorer_skipsAssignedVariables(t *testing.T) {
	clauses := [][]Literal{lits(0), lits(1)}
	f := NewFormula(2) // seed the scorer only: AddClause would assign unit clauses
	scorer := NewVSIDSScorer(f, clauses, 0.95)

	scorer.Bump(1)
	f.Assume(PositiveLiteral(1))

	v, ok := scorer.NextVar()
	if !ok || v != 0 {
		t.Fatalf("NextVar() = (%d, %v), want (0, true) once variable 1 is assigned", v, ok)
	}
}

func TestVSIDSScorer_reinsertMakesVariableCandidateAgain(t *testing.T) {
	clauses := [][]Literal{lits(0)}
	f := NewFormula(1) // seed the scorer only: AddClause would assign unit clauses
	scorer := NewVSIDSScorer(f, clauses, 0.95)

	f.Assume(PositiveLiteral(0))
	if _, ok := scorer.NextVar(); ok {
		t.Fatal("NextVar(): want no candidates while the only variable is assigned")
	}

	f.CancelUntil(0)
	scorer.Reinsert(0)
	if _, ok := scorer.NextVar(); !ok {
		t.Fatal("NextVar(): want variable 0 to be a candidate again after Reinsert")
	}
}

// TestVSIDSScorer_bcpAssignedVariableSurvivesEviction reproduces the
// scenario where a variable forced by BCP (not decided directly) gets
// popped off the order heap by an unrelated NextVar call while it is still
// assigned, and is later unassigned by backtracking. Without Formula's
// undo hook reinserting every unassigned variable (not just the frame's
// own decision variable), that BCP-derived variable is lost from the heap
// forever once backtracking unassigns it.
func TestVSIDSScorer_bcpAssignedVariableSurvivesEviction(t *testing.T) {
	// vars: A=0, B=1, C=2. A occurs twice (highest initial activity), so it
	// is the first decision; B occurs once via (-A v B), which forces
	// B=true once A is assumed true; C occurs once via (A v C).
	clauses := [][]Literal{
		lits(-0-1, 1), // -A v B
		lits(0, 2),    // A v C
	}
	f := buildFormula(t, 3, clauses)
	scorer := NewVSIDSScorer(f, clauses, 0.95)
	f.SetUndoHook(scorer.Reinsert)
	defer f.SetUndoHook(nil)

	f.Assume(PositiveLiteral(0)) // decide A=true
	if conflict := f.Propagate(); conflict != nil {
		t.Fatalf("Propagate(): unexpected conflict %v", conflict)
	}
	if f.VarValue(1) != True {
		t.Fatalf("VarValue(B) = %v, want True (forced by -A v B)", f.VarValue(1))
	}

	// An unrelated NextVar call (picking the next decision) pops A (highest
	// activity, already assigned, discarded) then B (also already
	// assigned, discarded) before finally returning the genuinely
	// unassigned C.
	v, ok := scorer.NextVar()
	if !ok || v != 2 {
		t.Fatalf("NextVar() = (%d, %v), want (2, true)", v, ok)
	}

	// Backtrack A's entire decision level: this unassigns both A and B.
	// Formula's undo hook must reinsert both, not just A (the frame's own
	// decision variable), or B is lost from the heap forever.
	f.CancelUntil(0)

	seen := map[int]bool{}
	for {
		cand, ok := scorer.NextVar()
		if !ok {
			break
		}
		seen[cand] = true
		f.Assume(PositiveLiteral(cand)) // mark assigned so the loop terminates
	}
	if !seen[1] {
		t.Error("NextVar(): variable B (BCP-assigned, then evicted) was never offered again after backtracking unassigned it")
	}
}

func TestVSIDSScorer_copyIsIndependent(t *testing.T) {
	clauses := [][]Literal{lits(0, 1)}
	f := buildFormula(t, 2, clauses)
	scorer := NewVSIDSScorer(f, clauses, 0.95)

	scorer.Bump(0)
	scorer.Bump(0)
	snapshot := scorer.Copy()
	scorer.Bump(1)
	scorer.Bump(1)
	scorer.Bump(1)

	// At snapshot time variable 0 leads (3 vs 1); the original has since
	// bumped variable 1 past it (4 vs 3). Each must answer from its own
	// heap.
	if v, ok := snapshot.NextVar(); !ok || v != 0 {
		t.Errorf("Copy().NextVar() = (%d, %v), want (0, true)", v, ok)
	}
	if v, ok := scorer.NextVar(); !ok || v != 1 {
		t.Errorf("NextVar() = (%d, %v), want (1, true) after bumps", v, ok)
	}
}
