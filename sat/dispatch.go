package sat

import (
	"errors"
	"fmt"

	"github.com/arourke/dpllsat/internal/core"
)

// Algorithm identifies one of the DPLL variants this package implements.
type Algorithm int

const (
	// Naive performs plain chronological backtracking with no heuristics.
	Naive Algorithm = iota
	// Unit adds whole-formula unit propagation before every decision.
	Unit
	// Pure adds pure-literal elimination, applied once at entry.
	Pure
	// UnitPure combines Unit and Pure.
	UnitPure
	// TwoWatched performs recursive DPLL over a two-watched-literal formula.
	TwoWatched
	// TwoWatchedIterative runs the same search with an explicit decision
	// stack instead of recursion.
	TwoWatchedIterative
	// VSIDS adds variable-activity branching on top of TwoWatchedIterative.
	VSIDS
	// Restarts adds geometric restarts on top of VSIDS.
	Restarts
)

func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "naive"
	case Unit:
		return "unit"
	case Pure:
		return "pure"
	case UnitPure:
		return "unit+pure"
	case TwoWatched:
		return "2wl"
	case TwoWatchedIterative:
		return "2wli"
	case VSIDS:
		return "vsids"
	case Restarts:
		return "restarts"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ErrInvalidConfig is wrapped by Solve when asked to run an unknown
// Algorithm.
var ErrInvalidConfig = errors.New("dpllsat: invalid configuration")

// Config selects the algorithm variant and its tunable parameters.
type Config struct {
	Algorithm Algorithm

	// VSIDSDecay is the variable-activity decay factor used by VSIDS and
	// Restarts. Zero selects the package default of 0.95.
	VSIDSDecay float64

	Stats *Stats
}

// Solve decides the satisfiability of clauses over variables, returning a
// satisfying model when one exists. The returned model is always total over
// variables when ok is true.
func Solve(variables []string, clauses [][]string, cfg Config) (model Model, ok bool, err error) {
	stats := cfg.Stats
	if stats == nil {
		stats = &Stats{}
	}

	switch cfg.Algorithm {
	case Naive:
		m, sat := solveNaive(variables, clauses, Model{}, stats)
		return totalize(m, variables, sat), sat, nil
	case Unit:
		m, sat := solveUnit(variables, clauses, Model{}, stats)
		return totalize(m, variables, sat), sat, nil
	case Pure:
		m, sat := solvePure(variables, clauses, Model{}, stats)
		return totalize(m, variables, sat), sat, nil
	case UnitPure:
		m, sat := solveUnitPure(variables, clauses, Model{}, stats)
		return totalize(m, variables, sat), sat, nil
	case TwoWatched, TwoWatchedIterative, VSIDS, Restarts:
		return solveCore(variables, clauses, cfg, stats)
	default:
		return nil, false, fmt.Errorf("dpllsat: unknown algorithm %v: %w", cfg.Algorithm, ErrInvalidConfig)
	}
}

// symbolTable assigns a dense integer id to each variable name, in the order
// the caller's variable list provides, so that the int-keyed internal/core
// engine can be bridged back to the string-keyed public API.
type symbolTable struct {
	idOf  map[string]int
	names []string
}

func newSymbolTable(variables []string) *symbolTable {
	st := &symbolTable{
		idOf:  make(map[string]int, len(variables)),
		names: append([]string(nil), variables...),
	}
	for i, v := range variables {
		st.idOf[v] = i
	}
	return st
}

func (st *symbolTable) literal(tok string) core.Literal {
	v, positive := ParseLiteral(tok)
	id := st.idOf[v]
	if positive {
		return core.PositiveLiteral(id)
	}
	return core.NegativeLiteral(id)
}

func solveCore(variables []string, clauses [][]string, cfg Config, stats *Stats) (Model, bool, error) {
	st := newSymbolTable(variables)

	f := core.NewFormula(len(variables))
	coreClauses := make([][]core.Literal, 0, len(clauses))
	unsatAtRoot := false
	for _, clause := range clauses {
		lits := make([]core.Literal, len(clause))
		for i, tok := range clause {
			lits[i] = st.literal(tok)
		}
		coreClauses = append(coreClauses, lits)
		if !f.AddClause(lits) {
			unsatAtRoot = true
		}
	}
	if unsatAtRoot {
		return nil, false, nil
	}

	defer func() { stats.Conflicts += f.Conflicts }()

	var status bool
	switch cfg.Algorithm {
	case TwoWatched:
		status = core.SolveRecursive(f)
	case TwoWatchedIterative:
		status = core.SolveIterative(f, nil, 0) == core.StatusSat
	case VSIDS:
		scorer := core.NewVSIDSScorer(f, coreClauses, decayOrDefault(cfg.VSIDSDecay))
		status = core.SolveIterative(f, scorer, 0) == core.StatusSat
	case Restarts:
		scorer := core.NewVSIDSScorer(f, coreClauses, decayOrDefault(cfg.VSIDSDecay))
		status = core.SolveWithRestarts(f, scorer) == core.StatusSat
	}

	if !status {
		return nil, false, nil
	}

	model := make(Model, len(variables))
	for id, name := range st.names {
		model[name] = f.VarValue(id) == core.True
	}
	return model, true, nil
}

func decayOrDefault(d float64) float64 {
	if d == 0 {
		return 0.95
	}
	return d
}

// totalize extends a (possibly partial) solved model so that every variable
// in variables is present, defaulting any variable the search never touched
// (because it appears in no clause, or every clause it appears in was
// already satisfied) to true.
func totalize(m Model, variables []string, sat bool) Model {
	if !sat {
		return nil
	}
	out := m.Clone()
	for _, v := range variables {
		if _, ok := out[v]; !ok {
			out[v] = true
		}
	}
	return out
}
