package sat

// Model is a partial mapping from variable to truth value.
type Model map[string]bool

// Clone returns an independent copy of m.
func (m Model) Clone() Model {
	out := make(Model, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Satisfies reports whether clause contains a literal made true by m.
func (m Model) Satisfies(clause []string) bool {
	for _, lit := range clause {
		v, positive := ParseLiteral(lit)
		if val, ok := m[v]; ok && val == positive {
			return true
		}
	}
	return false
}
