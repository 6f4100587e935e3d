// Package encoders builds CNF formulas for concrete puzzles, translating
// domain constraints into the clause sets the sat package consumes.
package encoders

import (
	"fmt"

	"github.com/arourke/dpllsat/sat"
)

// Board is a 9x9 Sudoku grid; 0 marks an empty cell.
type Board [9][9]int

func cellVar(r, c, n int) string {
	return fmt.Sprintf("%d-%d-%d", r, c, n)
}

// SudokuClauses returns the CNF clauses encoding Sudoku's structural rules —
// exactly one value per cell, and no repeated value within any row, column,
// or 3x3 box — independent of any particular puzzle's givens.
func SudokuClauses() [][]string {
	var clauses [][]string

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := make([]string, 9)
			for n := 1; n <= 9; n++ {
				cell[n-1] = cellVar(r, c, n)
			}
			clauses = append(clauses, cell)
			clauses = append(clauses, atMostOne(cell)...)
		}
	}

	for n := 1; n <= 9; n++ {
		for r := 0; r < 9; r++ {
			row := make([]string, 9)
			for c := 0; c < 9; c++ {
				row[c] = cellVar(r, c, n)
			}
			clauses = append(clauses, row)
			clauses = append(clauses, atMostOne(row)...)
		}

		for c := 0; c < 9; c++ {
			col := make([]string, 9)
			for r := 0; r < 9; r++ {
				col[r] = cellVar(r, c, n)
			}
			clauses = append(clauses, col)
			clauses = append(clauses, atMostOne(col)...)
		}
	}

	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			for n := 1; n <= 9; n++ {
				box := make([]string, 0, 9)
				for ro := 0; ro < 3; ro++ {
					for co := 0; co < 3; co++ {
						box = append(box, cellVar(br*3+ro, bc*3+co, n))
					}
				}
				clauses = append(clauses, box)
				clauses = append(clauses, atMostOne(box)...)
			}
		}
	}

	return clauses
}

// atMostOne returns the pairwise clauses forbidding two of vars from holding
// simultaneously, the usual quadratic (but for a fixed 9-way choice, cheap)
// at-most-one encoding.
func atMostOne(vars []string) [][]string {
	var clauses [][]string
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			clauses = append(clauses, []string{"-" + vars[i], "-" + vars[j]})
		}
	}
	return clauses
}

// EncodeBoard returns the full variable and clause set for board: the
// structural Sudoku clauses plus one unit clause per filled-in cell.
func EncodeBoard(board Board) (variables []string, clauses [][]string) {
	clauses = SudokuClauses()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if board[r][c] != 0 {
				clauses = append(clauses, []string{cellVar(r, c, board[r][c])})
			}
		}
	}
	return sat.Variables(clauses), clauses
}

// DecodeBoard fills board's empty cells from model, the satisfying
// assignment returned by sat.Solve for the clauses EncodeBoard produced.
func DecodeBoard(board *Board, model sat.Model) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if board[r][c] != 0 {
				continue
			}
			for n := 1; n <= 9; n++ {
				if model[cellVar(r, c, n)] {
					board[r][c] = n
					break
				}
			}
		}
	}
}
