package sat

import "sort"

// ParseLiteral splits a literal token into its underlying variable and
// polarity. A token prefixed with "-" denotes the negative literal.
func ParseLiteral(lit string) (variable string, positive bool) {
	if len(lit) > 0 && lit[0] == '-' {
		return lit[1:], false
	}
	return lit, true
}

// NegateLiteral returns the opposite literal token.
func NegateLiteral(lit string) string {
	if len(lit) > 0 && lit[0] == '-' {
		return lit[1:]
	}
	return "-" + lit
}

// SimplifyClauses returns a new clause list with every clause containing
// literal dropped (satisfied) and every clause containing its negation
// shortened by that negation's removal. The order of surviving clauses is
// preserved, matching the recursive DPLL variants that materialize a fresh
// clause list per branch.
func SimplifyClauses(clauses [][]string, lit string) [][]string {
	neg := NegateLiteral(lit)
	out := make([][]string, 0, len(clauses))

clauseLoop:
	for _, clause := range clauses {
		newClause := make([]string, 0, len(clause))
		for _, l := range clause {
			if l == lit {
				continue clauseLoop // clause satisfied, drop it entirely
			}
			if l == neg {
				continue // falsified literal, drop it from the clause
			}
			newClause = append(newClause, l)
		}
		out = append(out, newClause)
	}
	return out
}

// Variables returns the sorted set of variable names appearing in clauses.
func Variables(clauses [][]string) []string {
	seen := map[string]struct{}{}
	for _, clause := range clauses {
		for _, lit := range clause {
			v, _ := ParseLiteral(lit)
			seen[v] = struct{}{}
		}
	}
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}
