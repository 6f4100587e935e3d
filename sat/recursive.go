package sat

// Stats collects search statistics, in the spirit of yass's Solver counters
// and xDarkicex's SolverStatistics: informational only, never load-bearing
// for correctness.
type Stats struct {
	Decisions    int64
	Propagations int64
	Conflicts    int64
}

// solveNaive implements plain chronological backtracking with no
// preprocessing: pick the first unassigned variable, recurse on true, then
// on false, materializing a fresh clause list on every branch.
func solveNaive(vars []string, clauses [][]string, model Model, stats *Stats) (Model, bool) {
	if len(clauses) == 0 {
		return model, true
	}
	for _, c := range clauses {
		if len(c) == 0 {
			return nil, false
		}
	}

	v := firstUnassigned(vars, model)
	if v == "" {
		return nil, false
	}
	stats.Decisions++

	if m, ok := solveNaive(vars, SimplifyClauses(clauses, v), assign(model, v, true), stats); ok {
		return m, true
	}
	return solveNaive(vars, SimplifyClauses(clauses, "-"+v), assign(model, v, false), stats)
}

// solveUnit implements DPLL with whole-formula unit propagation run before
// every branch decision.
func solveUnit(vars []string, clauses [][]string, model Model, stats *Stats) (Model, bool) {
	clauses, model, conflict := UnitPropagate(clauses, model)
	if conflict {
		return nil, false
	}
	stats.Propagations++

	if len(clauses) == 0 {
		return model, true
	}
	for _, c := range clauses {
		if len(c) == 0 {
			return nil, false
		}
	}

	v := firstUnassigned(vars, model)
	if v == "" {
		return nil, false
	}
	stats.Decisions++

	if m, ok := solveUnit(vars, SimplifyClauses(clauses, v), assign(model, v, true), stats); ok {
		return m, true
	}
	return solveUnit(vars, SimplifyClauses(clauses, "-"+v), assign(model, v, false), stats)
}

// solvePure implements DPLL with pure-literal elimination applied once at
// entry. Pure-literal elimination is a preprocessing step here, not re-run
// at every branch.
func solvePure(vars []string, clauses [][]string, model Model, stats *Stats) (Model, bool) {
	clauses, model = EliminatePureLiterals(clauses, model)
	return solvePureStep(vars, clauses, model, stats)
}

func solvePureStep(vars []string, clauses [][]string, model Model, stats *Stats) (Model, bool) {
	if len(clauses) == 0 {
		return model, true
	}
	for _, c := range clauses {
		if len(c) == 0 {
			return nil, false
		}
	}

	v := firstUnassigned(vars, model)
	if v == "" {
		return nil, false
	}
	stats.Decisions++

	if m, ok := solvePureStep(vars, SimplifyClauses(clauses, v), assign(model, v, true), stats); ok {
		return m, true
	}
	return solvePureStep(vars, SimplifyClauses(clauses, "-"+v), assign(model, v, false), stats)
}

// solveUnitPure combines unit propagation and pure-literal elimination:
// unit propagation runs at entry and before every branch decision;
// pure-literal elimination runs once, at entry only.
func solveUnitPure(vars []string, clauses [][]string, model Model, stats *Stats) (Model, bool) {
	clauses, model, conflict := UnitPropagate(clauses, model)
	if conflict {
		return nil, false
	}
	clauses, model = EliminatePureLiterals(clauses, model)
	return solveUnitPureStep(vars, clauses, model, stats)
}

func solveUnitPureStep(vars []string, clauses [][]string, model Model, stats *Stats) (Model, bool) {
	clauses, model, conflict := UnitPropagate(clauses, model)
	if conflict {
		return nil, false
	}
	stats.Propagations++

	if len(clauses) == 0 {
		return model, true
	}
	for _, c := range clauses {
		if len(c) == 0 {
			return nil, false
		}
	}

	v := firstUnassigned(vars, model)
	if v == "" {
		return nil, false
	}
	stats.Decisions++

	if m, ok := solveUnitPureStep(vars, SimplifyClauses(clauses, v), assign(model, v, true), stats); ok {
		return m, true
	}
	return solveUnitPureStep(vars, SimplifyClauses(clauses, "-"+v), assign(model, v, false), stats)
}

func firstUnassigned(vars []string, model Model) string {
	for _, v := range vars {
		if _, ok := model[v]; !ok {
			return v
		}
	}
	return ""
}

func assign(model Model, v string, val bool) Model {
	m := model.Clone()
	m[v] = val
	return m
}
