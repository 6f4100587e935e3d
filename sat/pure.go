package sat

// EliminatePureLiterals scans clauses once and commits every unassigned
// variable that occurs in only one polarity across the remaining clauses,
// then simplifies by those commitments. It is applied once per call site
// (preprocessing, or before a branch), never recursively during search.
//
// EliminatePureLiterals is idempotent: a clause list with no remaining pure
// literal is returned unchanged by a second call.
func EliminatePureLiterals(clauses [][]string, model Model) (out [][]string, newModel Model) {
	newModel = model.Clone()

	// polarity[v]: true/false once seen positive-only/negative-only, nil
	// (absent) once mixed.
	polarity := map[string]*bool{}
	order := make([]string, 0)

	for _, clause := range clauses {
		for _, lit := range clause {
			v, positive := ParseLiteral(lit)
			if _, assigned := newModel[v]; assigned {
				continue
			}
			p, seen := polarity[v]
			switch {
			case !seen:
				val := positive
				polarity[v] = &val
				order = append(order, v)
			case p != nil && *p != positive:
				polarity[v] = nil // mixed: no longer pure
			}
		}
	}

	pureLiterals := make([]string, 0)
	for _, v := range order {
		p := polarity[v]
		if p == nil {
			continue
		}
		newModel[v] = *p
		if *p {
			pureLiterals = append(pureLiterals, v)
		} else {
			pureLiterals = append(pureLiterals, "-"+v)
		}
	}

	out = clauses
	for _, lit := range pureLiterals {
		out = SimplifyClauses(out, lit)
	}
	return out, newModel
}
