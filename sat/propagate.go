package sat

// UnitPropagate repeatedly locates unit clauses in clauses, commits their
// literal to model, and simplifies the clause list, until no unit clause
// remains. It returns the simplified clauses, the extended model, and
// whether a conflict (a unit clause contradicting an existing assignment)
// was encountered. The input clauses and model are left untouched; the
// returned model is an independent copy, while the returned clause list is
// the input list itself when no unit clause was simplified away.
//
// Unit clauses are located by a left-to-right scan of the (repeatedly
// re-simplified) clause list, so the result is deterministic given the
// input order.
//
// UnitPropagate is idempotent: a clause list with no remaining unit clause
// is returned unchanged by a second call.
func UnitPropagate(clauses [][]string, model Model) (out [][]string, newModel Model, conflict bool) {
	newModel = model.Clone()

	for {
		idx := firstUnitClause(clauses)
		if idx < 0 {
			break
		}
		lit := clauses[idx][0]
		v, positive := ParseLiteral(lit)

		if val, ok := newModel[v]; ok {
			if val != positive {
				return clauses, newModel, true
			}
			clauses = SimplifyClauses(clauses, lit)
			continue
		}

		newModel[v] = positive
		clauses = SimplifyClauses(clauses, lit)
	}

	return clauses, newModel, false
}

// firstUnitClause returns the index of the first clause with exactly one
// literal, or -1 if none remains.
func firstUnitClause(clauses [][]string) int {
	for i, c := range clauses {
		if len(c) == 1 {
			return i
		}
	}
	return -1
}
