// Package dimacs loads CNF formulas in DIMACS format into dpllsat's
// string-literal representation, wrapping the third-party DIMACS parser
// rather than re-implementing its line-scanning.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"

	rdimacs "github.com/rhartert/dimacs"
)

// Formula is a CNF instance using dpllsat's variable-name convention: DIMACS
// variable i (1-indexed) becomes the name "v<i>", and its clauses become
// literal tokens ("v<i>" or "-v<i>").
type Formula struct {
	Variables []string
	Clauses   [][]string
}

func varName(i int) string {
	return "v" + strconv.Itoa(i)
}

// Load reads a DIMACS CNF file, transparently gunzipping it first if
// gzipped is set.
func Load(filename string, gzipped bool) (Formula, error) {
	r, err := open(filename, gzipped)
	if err != nil {
		return Formula{}, fmt.Errorf("dpllsat: open %q: %w", filename, err)
	}
	defer r.Close()
	return Parse(r)
}

// Parse reads a DIMACS CNF formula from r.
func Parse(r io.Reader) (Formula, error) {
	b := &builder{}
	if err := rdimacs.ReadBuilder(r, b); err != nil {
		return Formula{}, fmt.Errorf("dpllsat: parse dimacs: %w", err)
	}

	vars := make([]string, b.numVars)
	for i := range vars {
		vars[i] = varName(i + 1)
	}

	return Formula{Variables: vars, Clauses: b.clauses}, nil
}

// builder implements dimacs.Builder, the callback interface the real
// dependency drives as it scans the file: Problem reports the header's
// variable count, Clause is invoked once per clause line.
type builder struct {
	numVars int
	clauses [][]string
}

func (b *builder) Problem(problem string, nVars, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dpllsat: not a CNF problem: %q", problem)
	}
	b.numVars = nVars
	b.clauses = make([][]string, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	lits := make([]string, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			lits[i] = "-" + varName(-l)
		} else {
			lits[i] = varName(l)
		}
	}
	b.clauses = append(b.clauses, lits)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if !gzipped {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzipFile{Reader: gz, f: f}, nil
}

// gzipFile closes both the gzip stream and the underlying file.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	if err := g.Reader.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}
