// Package cover builds the Sudoku exact-cover instance: the set of
// constraint columns and candidate rows for a given Grid.
package cover

import "svw.info/sudoku-dlx/internal/grid"

// Candidate is one candidate row of the exact-cover matrix: placing
// digit Digit at (Row, Col). ID is the bijective encoding
// (row*N+col)*N + (digit-1), letting the solver reconstruct (r,c,d)
// from an id without a side table.
type Candidate struct {
	Row, Col, Digit int
	ID              int
}

// Column offsets, in units of N*N: Cell, RowDigit, ColDigit, BoxDigit.
const (
	cellBlock = 0
	rowBlock  = 1
	colBlock  = 2
	boxBlock  = 3
	numBlocks = 4
)

// NumColumns returns the constraint column count for an N-sided grid:
// 4*N*N (cell, row-digit, col-digit, box-digit).
func NumColumns(n int) int {
	return numBlocks * n * n
}

// Columns returns the four column indices a candidate (r,c,d) touches:
// Cell(r,c), RowDigit(r,d), ColDigit(c,d), BoxDigit(box,d). region is
// the grid's region side (sqrt(n)).
func Columns(n, region, r, c, d int) [4]int {
	box := (r/region)*region + (c / region)
	nn := n * n
	return [4]int{
		cellBlock*nn + r*n + c,
		rowBlock*nn + r*n + (d - 1),
		colBlock*nn + c*n + (d - 1),
		boxBlock*nn + box*n + (d - 1),
	}
}

// EncodeID returns the candidate id for (r,c,d) in an N-sided grid.
func EncodeID(n, r, c, d int) int {
	return (r*n+c)*n + (d - 1)
}

// DecodeID inverts EncodeID.
func DecodeID(n, id int) (r, c, d int) {
	cell := id / n
	d = (id % n) + 1
	r = cell / n
	c = cell % n
	return
}

// Build constructs the candidate list for g: for each filled cell, the
// single candidate matching its given value; for each empty cell, one
// candidate per digit 1..N. Conflicting givens (duplicate in a row,
// column, or box) are emitted faithfully — Build never rejects a
// syntactically legal grid; DLX search failing to find a solution is
// how semantic unsolvability is reported.
//
// Candidate enumeration order is row outer, col middle, digit inner,
// with givens collapsed to a single candidate. This order is part of
// the contract: it is what makes the first solution DLX finds
// deterministic.
func Build(g *grid.Grid) (numCols, region int, candidates []Candidate) {
	n := g.N
	numCols = NumColumns(n)
	candidates = make([]Candidate, 0, n*n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := int(g.Get(r, c)); v != 0 {
				candidates = append(candidates, Candidate{Row: r, Col: c, Digit: v, ID: EncodeID(n, r, c, v)})
				continue
			}
			for d := 1; d <= n; d++ {
				candidates = append(candidates, Candidate{Row: r, Col: c, Digit: d, ID: EncodeID(n, r, c, d)})
			}
		}
	}
	return numCols, g.R, candidates
}
