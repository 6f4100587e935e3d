package core

import "github.com/rhartert/yagh"

// VSIDSScorer implements variable-state independent decaying sum scoring: a
// per-variable activity bumped when the variable is involved in a conflict
// and periodically decayed, with the next decision variable chosen as the
// highest-activity unassigned variable. Candidate lookup is a lazy binary
// heap: entries go stale once a variable is assigned, and NextVar skips
// stale or already-assigned entries as it drains the heap, re-seeding
// nothing since a variable is reinserted explicitly when it becomes
// unassigned again.
type VSIDSScorer struct {
	order   *yagh.IntMap[float64]
	scores  []float64
	inc     float64
	decay   float64
	formula *Formula
}

// NewVSIDSScorer builds a scorer for f, seeding every variable's initial
// activity with its occurrence count across clauses.
func NewVSIDSScorer(f *Formula, clauses [][]Literal, decay float64) *VSIDSScorer {
	numVars := f.NumVars()
	vs := &VSIDSScorer{
		order:   yagh.New[float64](0),
		scores:  make([]float64, numVars),
		inc:     1,
		decay:   decay,
		formula: f,
	}
	vs.order.GrowBy(numVars)
	for _, clause := range clauses {
		for _, l := range clause {
			vs.scores[l.VarID()]++
		}
	}
	for v := 0; v < numVars; v++ {
		vs.order.Put(v, -vs.scores[v])
	}
	return vs
}

// Bump increases the activity of variable v, rescaling every score if any
// activity would otherwise overflow.
func (vs *VSIDSScorer) Bump(v int) {
	vs.scores[v] += vs.inc
	if vs.order.Contains(v) {
		vs.order.Put(v, -vs.scores[v])
	}
	if vs.scores[v] > 1e100 {
		vs.rescale()
	}
}

// Decay shrinks the relative weight of past bumps against future ones.
func (vs *VSIDSScorer) Decay() {
	vs.inc /= vs.decay
	if vs.inc > 1e100 {
		vs.rescale()
	}
}

func (vs *VSIDSScorer) rescale() {
	vs.inc *= 1e-100
	for v, s := range vs.scores {
		vs.scores[v] = s * 1e-100
		if vs.order.Contains(v) {
			vs.order.Put(v, -vs.scores[v])
		}
	}
}

// Copy returns an independent snapshot of the scorer: activities, the
// current bump increment, and the candidate heap are all duplicated, so
// bumps and pops on the copy never affect the original. The copy still
// reads assignments from the same Formula.
func (vs *VSIDSScorer) Copy() *VSIDSScorer {
	out := &VSIDSScorer{
		order:   yagh.New[float64](0),
		scores:  append([]float64(nil), vs.scores...),
		inc:     vs.inc,
		decay:   vs.decay,
		formula: vs.formula,
	}
	out.order.GrowBy(len(vs.scores))
	for v := range vs.scores {
		if vs.order.Contains(v) {
			out.order.Put(v, -vs.scores[v])
		}
	}
	return out
}

// Reinsert makes v a candidate for selection again; called when v is
// unassigned during backtracking.
func (vs *VSIDSScorer) Reinsert(v int) {
	vs.order.Put(v, -vs.scores[v])
}

// NextVar returns the unassigned variable with the highest activity, or
// false if every variable is already assigned.
func (vs *VSIDSScorer) NextVar() (int, bool) {
	for {
		next, ok := vs.order.Pop()
		if !ok {
			return 0, false
		}
		if vs.formula.VarValue(next.Elem) != Unknown {
			continue
		}
		return next.Elem, true
	}
}
