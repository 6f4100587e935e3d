package core

import "fmt"

// Clause is a disjunction of literals tracked by exactly two watched
// literals, clauses.literals[0] and clauses.literals[1]. A clause is never
// learnt or deleted in this engine: the clause set is fixed at construction.
type Clause struct {
	literals []Literal
}

// NewClause builds a clause from a fixed literal slice. The slice is copied;
// the caller's slice is never retained.
func NewClause(literals []Literal) *Clause {
	return &Clause{literals: append([]Literal(nil), literals...)}
}

func (c *Clause) String() string {
	return fmt.Sprintf("%v", c.literals)
}

// watcher is an entry in a literal's watch list: a clause to re-examine when
// that literal becomes true, and a guard literal that, if already true,
// lets propagation skip loading the clause.
type watcher struct {
	clause *Clause
	guard  Literal
}

// Formula holds a fixed clause set plus the mutable propagation state
// (assignment trail, watch lists, BCP worklist) threaded through search. Its
// watch-list bookkeeping never needs to be undone on backtrack: a watcher
// entry remains a valid place to resume propagation regardless of which
// variables are later unassigned, so CancelUntil only rewinds the
// assignment trail.
type Formula struct {
	clauses []*Clause

	watchers [][]watcher // indexed by Literal
	assigns  []LBool     // indexed by Literal (both polarities kept in sync)

	trail    []Literal
	trailLim []int

	queue       *litQueue
	tmpWatchers []watcher
	seenLit     *resetSet

	// onUndo, if set, is called with the id of every variable UndoOne
	// unassigns, whether it was a decision or a BCP-derived assignment. A
	// VSIDS-ordered search uses this to reinsert the variable as a
	// candidate again: NextVar permanently pops entries off the order heap
	// as it skip-searches past already-assigned variables, so any variable
	// assigned between decisions (not just the decision variable itself)
	// must be reinserted once it becomes unassigned again, or it is lost
	// from the heap forever.
	onUndo func(varID int)

	// rootConflict is the clause AddClause found unsatisfiable at the root
	// level, if any; Propagate reports it on every later call.
	rootConflict *Clause

	Conflicts int64
}

// NewFormula returns an empty Formula sized for numVars variables.
func NewFormula(numVars int) *Formula {
	f := &Formula{
		watchers: make([][]watcher, numVars*2),
		assigns:  make([]LBool, numVars*2),
		queue:    newLitQueue(128),
		seenLit:  newResetSet(numVars * 2),
	}
	return f
}

func (f *Formula) NumVars() int {
	return len(f.assigns) / 2
}

func (f *Formula) VarValue(v int) LBool {
	return f.assigns[PositiveLiteral(v)]
}

func (f *Formula) LitValue(l Literal) LBool {
	return f.assigns[l]
}

func (f *Formula) DecisionLevel() int {
	return len(f.trailLim)
}

func (f *Formula) Watch(c *Clause, watch, guard Literal) {
	f.watchers[watch] = append(f.watchers[watch], watcher{clause: c, guard: guard})
}

func (f *Formula) Unwatch(c *Clause, watch Literal) {
	ws := f.watchers[watch]
	j := 0
	for i := range ws {
		if ws[i].clause != c {
			ws[j] = ws[i]
			j++
		}
	}
	f.watchers[watch] = ws[:j]
}

// AddClause registers a clause at the root level, after deduplicating
// repeated literals and discarding the clause entirely if it is a tautology
// (contains both a literal and its negation). It returns false if the
// normalized clause is empty (trivially unsatisfiable) or if it is a unit
// clause whose commitment immediately conflicts with an earlier one. In both
// cases the conflict is also recorded, so that Propagate reports it.
func (f *Formula) AddClause(literals []Literal) bool {
	normalized, tautology := f.normalize(literals)
	if tautology {
		return true
	}
	switch len(normalized) {
	case 0:
		f.rootConflict = NewClause(nil)
		return false
	case 1:
		if !f.enqueue(normalized[0]) {
			f.rootConflict = NewClause(normalized)
			return false
		}
		return true
	default:
		c := NewClause(normalized)
		f.clauses = append(f.clauses, c)
		f.Watch(c, c.literals[0].Opposite(), c.literals[1])
		f.Watch(c, c.literals[1].Opposite(), c.literals[0])
		return true
	}
}

// normalize drops duplicate literals and reports whether literals form a
// tautology, using seenLit as a scratch membership set cleared on every call.
func (f *Formula) normalize(literals []Literal) (out []Literal, tautology bool) {
	f.seenLit.Clear()
	out = make([]Literal, 0, len(literals))
	for _, l := range literals {
		if f.seenLit.Contains(int(l.Opposite())) {
			return nil, true
		}
		if f.seenLit.Contains(int(l)) {
			continue
		}
		f.seenLit.Add(int(l))
		out = append(out, l)
	}
	return out, false
}

func (f *Formula) enqueue(l Literal) bool {
	switch f.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		f.assigns[l] = True
		f.assigns[l.Opposite()] = False
		f.trail = append(f.trail, l)
		f.queue.Push(l)
		return true
	}
}

// Assume pushes a new decision level and commits l as the decision literal.
func (f *Formula) Assume(l Literal) bool {
	f.trailLim = append(f.trailLim, len(f.trail))
	return f.enqueue(l)
}

// UndoOne unassigns the most recently trailed literal.
func (f *Formula) UndoOne() {
	l := f.trail[len(f.trail)-1]
	f.assigns[l] = Unknown
	f.assigns[l.Opposite()] = Unknown
	f.trail = f.trail[:len(f.trail)-1]
	if f.onUndo != nil {
		f.onUndo(l.VarID())
	}
}

// SetUndoHook registers fn to be called with the id of every variable
// UndoOne unassigns. Pass nil to clear it.
func (f *Formula) SetUndoHook(fn func(varID int)) {
	f.onUndo = fn
}

// CancelUntil unassigns literals back to the given decision level.
func (f *Formula) CancelUntil(level int) {
	for f.DecisionLevel() > level {
		target := f.trailLim[len(f.trailLim)-1]
		for len(f.trail) > target {
			f.UndoOne()
		}
		f.trailLim = f.trailLim[:len(f.trailLim)-1]
	}
}

// Propagate drains the BCP worklist, applying unit propagation through the
// watched-literal scheme. It returns the first conflicting clause found, or
// nil if the worklist drained cleanly. A root-level conflict recorded by
// AddClause is returned by every call.
func (f *Formula) Propagate() *Clause {
	if f.rootConflict != nil {
		f.queue.Clear()
		return f.rootConflict
	}
	for !f.queue.Empty() {
		l := f.queue.Pop()

		ws := f.watchers[l]
		f.tmpWatchers = append(f.tmpWatchers[:0], ws...)
		f.watchers[l] = f.watchers[l][:0]

		for i, w := range f.tmpWatchers {
			if f.LitValue(w.guard) == True {
				f.watchers[l] = append(f.watchers[l], w)
				continue
			}
			if f.propagateClause(w.clause, l) {
				continue
			}
			f.watchers[l] = append(f.watchers[l], f.tmpWatchers[i+1:]...)
			f.queue.Clear()
			f.Conflicts++
			return w.clause
		}
	}
	return nil
}

// propagateClause re-establishes clause's watched pair after l (the opposite
// of one of its watched literals) was assigned true. It returns false if the
// clause is now conflicting, enqueuing its forced literal otherwise.
func (f *Formula) propagateClause(c *Clause, l Literal) bool {
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}

	if f.LitValue(c.literals[0]) == True {
		f.Watch(c, l, c.literals[0])
		return true
	}

	for i := 2; i < len(c.literals); i++ {
		if f.LitValue(c.literals[i]) != False {
			c.literals[1], c.literals[i] = c.literals[i], c.literals[1]
			f.Watch(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}

	f.Watch(c, l, c.literals[0])
	return f.enqueue(c.literals[0])
}

// Satisfied reports whether every clause currently has a literal assigned
// true.
func (f *Formula) Satisfied() bool {
	for _, c := range f.clauses {
		if !f.clauseSatisfied(c) {
			return false
		}
	}
	return true
}

func (f *Formula) clauseSatisfied(c *Clause) bool {
	for _, l := range c.literals {
		if f.LitValue(l) == True {
			return true
		}
	}
	return false
}
