package pcgs

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

var _ mat.Matrix = (*SymmetricMatrix)(nil)

// Entry is an unordered input record (row, col, value). Duplicates are
// allowed; entries need not be presented in any particular order or
// triangle.
type Entry struct {
	Row   int
	Col   int
	Value float64
}

// SymmetricMatrix is the assembled form of a sparse SPD matrix: a
// deduplicated, sorted, lower-triangle-only structure keyed by column.
// For column i, Indices[i] holds the ordered row indices j >= i that
// are nonzero in column i, and Values[i] holds the coefficients
// aligned positionally with Indices[i]. Dimension is Length+1.
//
// SymmetricMatrix is built once from a batch of entries and is
// immutable thereafter.
type SymmetricMatrix struct {
	Length  int
	Indices [][]int
	Values  [][]float64
}

// NewSymmetricMatrix builds a SymmetricMatrix from an unordered list of
// entries. Each entry is reflected to (min(row,col), max(row,col)),
// sorted lexicographically by (col, row), and deduplicated so that the
// last occurrence in entries wins, matching Octave-style "latest
// assignment" semantics. The dimension is one more than the largest
// index seen across all entries; an empty entries list yields a 1x1
// matrix with a single empty column.
//
// The dedupe rule (last write wins) needs original input order
// preserved within a duplicate group, hence the stable sort.
func NewSymmetricMatrix(entries []Entry) *SymmetricMatrix {
	// After reflection, Row holds min(row,col) (the storage column) and
	// Col holds max(row,col) (the row stored within that column).
	reflected := make([]Entry, len(entries))
	for i, e := range entries {
		row, col := e.Row, e.Col
		if row > col {
			row, col = col, row
		}
		reflected[i] = Entry{Row: row, Col: col, Value: e.Value}
	}

	sort.SliceStable(reflected, func(i, j int) bool {
		if reflected[i].Row != reflected[j].Row {
			return reflected[i].Row < reflected[j].Row
		}
		return reflected[i].Col < reflected[j].Col
	})

	deduped := reflected[:0]
	for _, e := range reflected {
		if n := len(deduped); n > 0 && deduped[n-1].Row == e.Row && deduped[n-1].Col == e.Col {
			deduped[n-1] = e
			continue
		}
		deduped = append(deduped, e)
	}

	length := 0
	for _, e := range deduped {
		if e.Col > length {
			length = e.Col
		}
	}

	indices := make([][]int, length+1)
	values := make([][]float64, length+1)
	for _, e := range deduped {
		indices[e.Row] = append(indices[e.Row], e.Col)
		values[e.Row] = append(values[e.Row], e.Value)
	}

	return &SymmetricMatrix{Length: length, Indices: indices, Values: values}
}

// Dims returns the matrix's dimensions, satisfying mat.Matrix.
func (m *SymmetricMatrix) Dims() (r, c int) {
	n := m.Length + 1
	return n, n
}

// At returns the full (both-triangle) value at row i, column j,
// satisfying mat.Matrix. At will panic if i or j are out of range.
func (m *SymmetricMatrix) At(i, j int) float64 {
	n := m.Length + 1
	if uint(i) >= uint(n) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(n) {
		panic(mat.ErrColAccess)
	}

	col, row := i, j
	if col > row {
		col, row = row, col
	}

	rows := m.Indices[col]
	idx := sort.SearchInts(rows, row)
	if idx < len(rows) && rows[idx] == row {
		return m.Values[col][idx]
	}
	return 0
}

// T returns the receiver: SymmetricMatrix is its own transpose.
func (m *SymmetricMatrix) T() mat.Matrix {
	return m
}

// SymmetricDim returns the matrix dimension, satisfying gonum's Symmetric
// interface.
func (m *SymmetricMatrix) SymmetricDim() int {
	return m.Length + 1
}
