// Package dlx implements Dancing Links: a toroidal doubly-linked
// sparse-matrix representation of an exact-cover instance, and the
// recursive backtracking search with the minimum-remaining-values
// column heuristic (Knuth's Algorithm X).
//
// The pool is a single type, cell, shared by the root sentinel, the
// column headers, and the body nodes — the classic Dancing Links
// layout, where a header is simply a cell whose up/down ring anchors
// its column and whose left/right position it in the header row.
// This merges what were once separate node/column types (tracking
// column membership with an "active" flag instead of a root ring)
// back into a single-ring design: the root's horizontal list must
// contain exactly the live column headers.
package dlx

import "svw.info/sudoku-dlx/internal/cover"

// cell is one node of the toroidal matrix pool. For a header cell,
// size and name are meaningful and candidateID is -1. For a body
// cell, head points at its owning header and candidateID identifies
// the originating exact-cover candidate row. The root is a header-like
// sentinel with name -1, candidateID -1, and no column of its own.
type cell struct {
	left, right, up, down *cell
	head                  *cell
	size                  int
	name                  int
	candidateID           int
}

// Matrix is one solve's worth of exact-cover state: built once,
// mutated only via cover/uncover during search, and discarded after
// the solve returns.
type Matrix struct {
	root     *cell
	headers  []*cell
	solution []int
	solLen   int
}

// Build allocates the node pool and links it into the initial,
// fully-uncovered toroidal matrix for the given candidates. numCols
// and region come from cover.Build. Candidate enumeration order is
// preserved as vertical (and, within a row, horizontal) insertion
// order, which is what makes the first solution found deterministic.
func Build(n, region, numCols int, candidates []cover.Candidate) *Matrix {
	root := &cell{name: -1, candidateID: -1}
	root.left, root.right = root, root

	headers := make([]*cell, numCols)
	for i := 0; i < numCols; i++ {
		h := &cell{name: i, candidateID: -1}
		h.up, h.down = h, h
		// insert at the end of the header ring, just before root
		h.left = root.left
		h.right = root
		root.left.right = h
		root.left = h
		headers[i] = h
	}

	for _, cand := range candidates {
		cols := cover.Columns(n, region, cand.Row, cand.Col, cand.Digit)
		var first, prev *cell
		for _, colID := range cols {
			h := headers[colID]
			nc := &cell{head: h, name: -1, candidateID: cand.ID}
			// insert at the bottom of the column's vertical ring
			nc.down = h
			nc.up = h.up
			h.up.down = nc
			h.up = nc
			h.size++
			// splice into the horizontal ring of this row's 4 nodes
			if first == nil {
				first = nc
				nc.left, nc.right = nc, nc
			} else {
				nc.left = prev
				nc.right = prev.right
				prev.right.left = nc
				prev.right = nc
			}
			prev = nc
		}
	}

	return &Matrix{root: root, headers: headers, solution: make([]int, n*n)}
}

// cover removes column h and every row intersecting it from the
// active matrix.
func coverColumn(h *cell) {
	h.right.left = h.left
	h.left.right = h.right
	for i := h.down; i != h; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.head.size--
			assertf(j.head.size >= 0, "column %d size went negative during cover", j.head.name)
		}
	}
}

// uncover is the exact reverse of cover. Ordering matters: rows must
// be walked bottom-to-top and, within a row, columns right-to-left, so
// every relink references a node that has itself already been
// restored.
func uncover(h *cell) {
	for i := h.up; i != h; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.head.size++
			j.down.up = j
			j.up.down = j
		}
	}
	h.right.left = h
	h.left.right = h
}

// chooseColumn returns the active header with the fewest remaining
// rows (the minimum-remaining-values heuristic), breaking ties by
// first-encountered walking right from root.
func (m *Matrix) chooseColumn() *cell {
	var best *cell
	for h := m.root.right; h != m.root; h = h.right {
		if best == nil || h.size < best.size {
			best = h
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// Search runs Algorithm X to completion and returns true on the first
// solution found (DLX never enumerates past it). On success,
// Solution() returns the chosen candidate ids. Every cover is matched
// by an uncover before Search returns, on success as well as failure,
// so the matrix is left with its as-built linkage.
func (m *Matrix) Search() bool {
	m.solLen = 0
	return m.search()
}

func (m *Matrix) search() bool {
	if m.root.right == m.root {
		return true
	}
	h := m.chooseColumn()
	if h.size == 0 {
		return false
	}
	coverColumn(h)
	for r := h.down; r != h; r = r.down {
		m.solution[m.solLen] = r.candidateID
		m.solLen++
		for j := r.right; j != r; j = j.right {
			coverColumn(j.head)
		}
		if m.search() {
			for j := r.left; j != r; j = j.left {
				uncover(j.head)
			}
			uncover(h)
			return true
		}
		m.solLen--
		for j := r.left; j != r; j = j.left {
			uncover(j.head)
		}
	}
	uncover(h)
	return false
}

// Solution returns the candidate ids chosen by the most recent
// successful Search, in the order they were chosen.
func (m *Matrix) Solution() []int {
	out := make([]int, m.solLen)
	copy(out, m.solution[:m.solLen])
	return out
}
