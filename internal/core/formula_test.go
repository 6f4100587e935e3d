package core

import "testing"

func lits(xs ...int) []Literal {
	out := make([]Literal, len(xs))
	for i, x := range xs {
		if x < 0 {
			out[i] = NegativeLiteral(-x - 1)
		} else {
			out[i] = PositiveLiteral(x)
		}
	}
	return out
}

func TestFormula_unitPropagationThroughWatches(t *testing.T) {
	// vars 0, 1, 2. Clauses: (0), (-0 v 1), (-1 v 2).
	f := NewFormula(3)
	if !f.AddClause(lits(0)) {
		t.Fatal("AddClause(0): want ok")
	}
	if !f.AddClause(lits(-1, 1)) {
		t.Fatal("AddClause(-0 v 1): want ok")
	}
	if !f.AddClause(lits(-2, 2)) {
		t.Fatal("AddClause(-1 v 2): want ok")
	}

	if conflict := f.Propagate(); conflict != nil {
		t.Fatalf("Propagate(): unexpected conflict %v", conflict)
	}
	for v := 0; v < 3; v++ {
		if f.VarValue(v) != True {
			t.Errorf("VarValue(%d) = %v, want True", v, f.VarValue(v))
		}
	}
}

func TestFormula_propagateDetectsConflict(t *testing.T) {
	f := NewFormula(1)
	f.AddClause(lits(0))
	f.AddClause(lits(-0 - 1)) // -v0

	if conflict := f.Propagate(); conflict == nil {
		t.Fatal("Propagate(): want conflict, got none")
	}
}

func TestFormula_addClause_tautologyIsDropped(t *testing.T) {
	f := NewFormula(2)
	ok := f.AddClause(lits(0, -0-1, 1))
	if !ok {
		t.Fatal("AddClause(): tautology should not be reported unsatisfiable")
	}
	if len(f.clauses) != 0 {
		t.Errorf("AddClause(): tautology was stored as a real clause: %v", f.clauses)
	}
}

func TestFormula_addClause_emptyIsUnsat(t *testing.T) {
	f := NewFormula(1)
	if f.AddClause(nil) {
		t.Fatal("AddClause(nil): want false (unsatisfiable)")
	}
}

func TestFormula_cancelUntilRestoresAssignments(t *testing.T) {
	f := NewFormula(2)
	f.Assume(PositiveLiteral(0))
	f.Assume(PositiveLiteral(1))
	if f.VarValue(0) != True || f.VarValue(1) != True {
		t.Fatal("Assume(): expected both variables assigned")
	}

	f.CancelUntil(1)
	if f.VarValue(0) != True {
		t.Errorf("CancelUntil(1): VarValue(0) = %v, want True", f.VarValue(0))
	}
	if f.VarValue(1) != Unknown {
		t.Errorf("CancelUntil(1): VarValue(1) = %v, want Unknown", f.VarValue(1))
	}

	f.CancelUntil(0)
	if f.VarValue(0) != Unknown {
		t.Errorf("CancelUntil(0): VarValue(0) = %v, want Unknown", f.VarValue(0))
	}
}

func TestFormula_undoHookFiresForEveryUnassignedVariable(t *testing.T) {
	// vars 0, 1. Assume(0) at a fresh decision level, then assume(1) at the
	// next: CancelUntil back to level 0 must unassign both, and the hook
	// must fire for both, not just the most recent one.
	f := NewFormula(2)
	f.Assume(PositiveLiteral(0))
	f.Assume(PositiveLiteral(1))

	var undone []int
	f.SetUndoHook(func(v int) { undone = append(undone, v) })
	f.CancelUntil(0)
	f.SetUndoHook(nil)

	if len(undone) != 2 || undone[0] != 1 || undone[1] != 0 {
		t.Errorf("SetUndoHook(): got %v, want [1 0] (LIFO order)", undone)
	}
}

func TestFormula_satisfied(t *testing.T) {
	f := NewFormula(2)
	f.AddClause(lits(0, 1))

	if f.Satisfied() {
		t.Fatal("Satisfied(): want false before any assignment")
	}
	f.Assume(PositiveLiteral(0))
	if !f.Satisfied() {
		t.Fatal("Satisfied(): want true once clause's literal is true")
	}
}
