package sat

// Verify reports whether model satisfies every clause in clauses: every
// clause must contain at least one literal whose variable is assigned in
// model with matching polarity. An unassigned variable never satisfies a
// literal, so a partial model fails Verify unless every clause is already
// covered by the assigned portion.
func Verify(clauses [][]string, model Model) bool {
	for _, clause := range clauses {
		if !model.Satisfies(clause) {
			return false
		}
	}
	return true
}
