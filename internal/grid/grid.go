// Package grid implements the Grid Model: a rectangular N×N array of
// Sudoku cell values and its textual serialization. It has no solving
// logic of its own.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidSize is returned when a requested grid size is not a
// perfect square ≥ 4.
var ErrInvalidSize = errors.New("grid: invalid size")

// ErrParse is returned when a grid string has the wrong length or an
// unrecognized character.
var ErrParse = errors.New("grid: parse error")

// Grid is a rectangular N×N array of cell values, 0 meaning empty.
type Grid struct {
	N     int
	R     int // region side, sqrt(N)
	cells []uint8
}

// New creates an empty Grid of side n. n must be a perfect square ≥ 4.
func New(n int) (*Grid, error) {
	r, ok := integerSqrt(n)
	if n < 4 || !ok {
		return nil, fmt.Errorf("%w: %d is not a perfect square >= 4", ErrInvalidSize, n)
	}
	return &Grid{N: n, R: r, cells: make([]uint8, n*n)}, nil
}

func integerSqrt(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	r := int(math.Sqrt(float64(n)))
	// adjust for floating point error near the boundary
	for r > 1 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r, r*r == n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{N: g.N, R: g.R, cells: make([]uint8, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

func (g *Grid) index(r, c int) (int, error) {
	if r < 0 || r >= g.N || c < 0 || c >= g.N {
		return 0, fmt.Errorf("grid: cell (%d,%d) out of bounds for N=%d", r, c, g.N)
	}
	return r*g.N + c, nil
}

// Get returns the value at (r,c), 0 meaning empty.
func (g *Grid) Get(r, c int) uint8 {
	i, err := g.index(r, c)
	if err != nil {
		return 0
	}
	return g.cells[i]
}

// Set assigns v to (r,c). v must be in 0..N (0 meaning empty).
func (g *Grid) Set(r, c, v int) error {
	i, err := g.index(r, c)
	if err != nil {
		return err
	}
	if v < 0 || v > g.N {
		return fmt.Errorf("grid: value %d out of range 0..%d", v, g.N)
	}
	g.cells[i] = uint8(v)
	return nil
}

// Reset sets every cell back to empty.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// digitWidth is the widest decimal digit run a single cell's value can
// take (e.g. 2 for N=16), and so the longest run LoadString tries.
func digitWidth(n int) int {
	return len(strconv.Itoa(n))
}

// LoadString parses s into a Grid of side n. s must describe exactly
// n*n cells. Empty cells are '.'. For n <= 9 each value is a single
// character '1'..'9', so s has length n*n. For n > 9, values are
// concatenated decimal digits without separators, so s is longer than
// n*n whenever a value of 10 or more is present; parsing is
// greedy-longest-match: at each cell, the
// parser tries the widest digit run (up to digitWidth(n) characters)
// that decodes to a value in 1..n before falling back to a shorter
// run. This matches the project's 16x16 test vectors, which carry no
// per-cell separator.
func LoadString(s string, n int) (*Grid, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	width := digitWidth(n)
	pos := 0
	for i := 0; i < n*n; i++ {
		if pos >= len(s) {
			return nil, fmt.Errorf("%w: input too short for N=%d (got %d chars)", ErrParse, n, len(s))
		}
		if s[pos] == '.' {
			pos++
			continue
		}
		v, consumed, ok := greedyDigits(s, pos, width, n)
		if !ok {
			return nil, fmt.Errorf("%w: invalid character(s) at offset %d", ErrParse, pos)
		}
		r, c := i/n, i%n
		_ = g.Set(r, c, v) // bounds/range already validated
		pos += consumed
	}
	if pos != len(s) {
		return nil, fmt.Errorf("%w: trailing characters after offset %d", ErrParse, pos)
	}
	return g, nil
}

// greedyDigits tries the longest digit run (maxWidth down to 1 char)
// starting at pos that parses to a value in 1..n.
func greedyDigits(s string, pos, maxWidth, n int) (value, consumed int, ok bool) {
	for l := maxWidth; l >= 1; l-- {
		if pos+l > len(s) {
			continue
		}
		chunk := s[pos : pos+l]
		if !isAllDigits(chunk) {
			continue
		}
		v, err := strconv.Atoi(chunk)
		if err != nil {
			continue
		}
		if v >= 1 && v <= n {
			return v, l, true
		}
	}
	return 0, 0, false
}

func isAllDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// String renders the grid to its serialization, the inverse of
// LoadString: empties are '.'; values render as bare decimal digits
// with no padding, so the result has N*N characters only when no
// value is 10 or more.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.N * g.N)
	for _, v := range g.cells {
		if v == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteString(strconv.Itoa(int(v)))
		}
	}
	return sb.String()
}
