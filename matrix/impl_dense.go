// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors and mutators return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Validate every precondition of a mutator before the first write (no partial updates).
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row/Column: O(c)/O(r);
//     SwapRows: O(c); SwapColumns: O(r); Clone/Transpose: O(r*c); Submatrix: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxApply     = "Apply"
	ctxRow       = "Row"
	ctxColumn    = "Column"
	ctxSetRow    = "SetRow"
	ctxSetColumn = "SetColumn"
	ctxSwapRows  = "SwapRows"
	ctxSwapCols  = "SwapColumns"
	ctxSubmatrix = "Submatrix"
	ctxInduce    = "Induced"
	ctxCombine   = "Combine"
	ctxWithValue = "WithValue"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// denseAxisErrorf wraps an error raised by a single-axis operation (rows or columns).
func denseAxisErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1 for every public constructor.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
//
// Shape is fixed for the lifetime of a value. Mutation happens only through
// Set, SetRow, SetColumn, SwapRows, SwapColumns, Apply and Combine; every other
// method leaves the receiver untouched and returns a new *Dense.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return newDense(rows, cols, o.validateNaNInf), nil
}

// newDense allocates without validation; callers guarantee rows, cols ≥ 1.
func newDense(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: validateNaNInf,
	}
}

// NewConstant creates an r×c matrix with every entry equal to v.
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//   - ErrNaNInf when v is not finite and WithValidateNaNInf is set.
func NewConstant(rows, cols int, v float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return nil, fmt.Errorf("NewConstant: %w", ErrNaNInf)
	}
	for k := range m.data {
		m.data[k] = v
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
//
// Errors:
//   - ErrInvalidDimensions when n ≤ 0.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// NewFromRows builds a matrix from a row-major 2-D array. The data is copied;
// later changes to the argument do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions for zero rows or zero columns.
//   - ErrBadShape for ragged rows.
//   - ErrNaNInf for non-finite entries when WithValidateNaNInf is set.
func NewFromRows(data [][]float64, opts ...Option) (*Dense, error) {
	rows, cols, err := ValidateRectangular(data)
	if err != nil {
		return nil, fmt.Errorf("NewFromRows: %w", err)
	}
	o := gatherOptions(opts...)
	m := newDense(rows, cols, o.validateNaNInf)
	for i, row := range data {
		if m.validateNaNInf {
			if err = validateFinite(row); err != nil {
				return nil, fmt.Errorf("NewFromRows: row %d: %w", i, err)
			}
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewFromColumns builds a matrix from a column-major 2-D array: columns[j] is
// column j of the result. The data is copied.
//
// Errors: as NewFromRows, with "row" read as "column".
func NewFromColumns(columns [][]float64, opts ...Option) (*Dense, error) {
	cols, rows, err := ValidateRectangular(columns)
	if err != nil {
		return nil, fmt.Errorf("NewFromColumns: %w", err)
	}
	o := gatherOptions(opts...)
	m := newDense(rows, cols, o.validateNaNInf)
	for j, col := range columns {
		if m.validateNaNInf {
			if err = validateFinite(col); err != nil {
				return nil, fmt.Errorf("NewFromColumns: column %d: %w", j, err)
			}
		}
		for i, v := range col {
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Dims is an alias of Shape matching the naming used by numeric libraries.
func (m *Dense) Dims() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, fmt.Errorf("shape %dx%d: %w", m.r, m.c, err))
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the finite-only policy.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, fmt.Errorf("shape %dx%d: %w", m.r, m.c, err))
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// WithValue returns a copy of m with (row, col) set to v; m is not modified.
// This is the copy-before-mutate counterpart of Set.
func (m *Dense) WithValue(row, col int, v float64) (*Dense, error) {
	if _, err := m.indexOf(row, col); err != nil {
		return nil, denseErrorf(ctxWithValue, row, col, fmt.Errorf("shape %dx%d: %w", m.r, m.c, err))
	}
	cp := m.Copy()
	if err := cp.Set(row, col, v); err != nil {
		return nil, err
	}

	return cp, nil
}

// Row returns a fresh copy of row r.
func (m *Dense) Row(r int) ([]float64, error) {
	if err := validateIndex("row", r, m.r); err != nil {
		return nil, denseAxisErrorf(ctxRow, err)
	}
	out := make([]float64, m.c)
	copy(out, m.data[r*m.c:(r+1)*m.c])

	return out, nil
}

// Column returns a fresh copy of column c.
func (m *Dense) Column(c int) ([]float64, error) {
	if err := validateIndex("column", c, m.c); err != nil {
		return nil, denseAxisErrorf(ctxColumn, err)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+c]
	}

	return out, nil
}

// SetRow replaces row r with values.
//
// Errors (checked before any write):
//   - ErrOutOfRange when r is outside [0, Rows()).
//   - ErrBadShape when len(values) != Cols().
//   - ErrNaNInf for non-finite values under the finite-only policy.
func (m *Dense) SetRow(r int, values []float64) error {
	if err := validateIndex("row", r, m.r); err != nil {
		return denseAxisErrorf(ctxSetRow, err)
	}
	if len(values) != m.c {
		return denseAxisErrorf(ctxSetRow,
			fmt.Errorf("got %d values for a matrix with %d columns: %w", len(values), m.c, ErrBadShape))
	}
	if m.validateNaNInf {
		if err := validateFinite(values); err != nil {
			return denseAxisErrorf(ctxSetRow, err)
		}
	}
	copy(m.data[r*m.c:(r+1)*m.c], values)

	return nil
}

// SetColumn replaces column c with values.
//
// Errors (checked before any write):
//   - ErrOutOfRange when c is outside [0, Cols()).
//   - ErrBadShape when len(values) != Rows().
//   - ErrNaNInf for non-finite values under the finite-only policy.
func (m *Dense) SetColumn(c int, values []float64) error {
	if err := validateIndex("column", c, m.c); err != nil {
		return denseAxisErrorf(ctxSetColumn, err)
	}
	if len(values) != m.r {
		return denseAxisErrorf(ctxSetColumn,
			fmt.Errorf("got %d values for a matrix with %d rows: %w", len(values), m.r, ErrBadShape))
	}
	if m.validateNaNInf {
		if err := validateFinite(values); err != nil {
			return denseAxisErrorf(ctxSetColumn, err)
		}
	}
	for i, v := range values {
		m.data[i*m.c+c] = v
	}

	return nil
}

// SwapRows exchanges rows i and j in place. i == j is a no-op.
// Both indices are checked before any write.
func (m *Dense) SwapRows(i, j int) error {
	if err := validateIndex("first row", i, m.r); err != nil {
		return denseAxisErrorf(ctxSwapRows, err)
	}
	if err := validateIndex("second row", j, m.r); err != nil {
		return denseAxisErrorf(ctxSwapRows, err)
	}
	if i == j {
		return nil
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := 0; k < m.c; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// SwapColumns exchanges columns i and j in place. i == j is a no-op.
// Both indices are checked before any write.
func (m *Dense) SwapColumns(i, j int) error {
	if err := validateIndex("first column", i, m.c); err != nil {
		return denseAxisErrorf(ctxSwapCols, err)
	}
	if err := validateIndex("second column", j, m.c); err != nil {
		return denseAxisErrorf(ctxSwapCols, err)
	}
	if i == j {
		return nil
	}
	var base int
	for r := 0; r < m.r; r++ {
		base = r * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy) as a Matrix.
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy returns a deep copy with the concrete type preserved.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Transpose returns a new cols×rows matrix. It is a pure permutation of the
// entries, so m.Transpose().Transpose() is bit-identical to m.
func (m *Dense) Transpose() *Dense {
	res := newDense(m.c, m.r, m.validateNaNInf)
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// Submatrix copies the half-open block [r1,r2) × [c1,c2).
//
// Errors, checked in this order:
//   - ErrOutOfRange when r1 ∉ [0,Rows()), c1 ∉ [0,Cols()), r2 ∉ [1,Rows()] or c2 ∉ [1,Cols()].
//   - ErrInvalidDimensions when r2 ≤ r1 or c2 ≤ c1 (the block would be empty).
//
// Complexity: O((r2-r1)*(c2-c1)).
func (m *Dense) Submatrix(r1, c1, r2, c2 int) (*Dense, error) {
	if r1 < 0 || r1 >= m.r {
		return nil, denseAxisErrorf(ctxSubmatrix,
			fmt.Errorf("start row index %d not in [0,%d]: %w", r1, m.r-1, ErrOutOfRange))
	}
	if c1 < 0 || c1 >= m.c {
		return nil, denseAxisErrorf(ctxSubmatrix,
			fmt.Errorf("start column index %d not in [0,%d]: %w", c1, m.c-1, ErrOutOfRange))
	}
	if r2 < 1 || r2 > m.r {
		return nil, denseAxisErrorf(ctxSubmatrix,
			fmt.Errorf("end row index %d not in [1,%d]: %w", r2, m.r, ErrOutOfRange))
	}
	if c2 < 1 || c2 > m.c {
		return nil, denseAxisErrorf(ctxSubmatrix,
			fmt.Errorf("end column index %d not in [1,%d]: %w", c2, m.c, ErrOutOfRange))
	}
	if r2 <= r1 || c2 <= c1 {
		return nil, denseAxisErrorf(ctxSubmatrix,
			fmt.Errorf("empty block [%d,%d)x[%d,%d): %w", r1, r2, c1, c2, ErrInvalidDimensions))
	}

	rowsIdx := make([]int, r2-r1)
	for k := range rowsIdx {
		rowsIdx[k] = r1 + k
	}
	colsIdx := make([]int, c2-c1)
	for k := range colsIdx {
		colsIdx[k] = c1 + k
	}

	return m.Induced(rowsIdx, colsIdx)
}

// Induced materializes a copy submatrix using explicit index sets.
// Duplicates in index sets are allowed (repeated rows/cols in the result).
//
// Errors:
//   - ErrInvalidDimensions when either index set is empty.
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	if rp == 0 || cp == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, ErrInvalidDimensions)
	}
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}

	res := newDense(rp, cp, m.validateNaNInf)
	var i, j int
	for i = 0; i < rp; i++ {
		src := rowsIdx[i] * m.c
		dst := i * cp
		for j = 0; j < cp; j++ {
			res.data[dst+j] = m.data[src+colsIdx[j]]
		}
	}

	return res, nil
}

// ToRows exports the matrix as a fresh row-major 2-D array.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// ToColumns exports the matrix as a fresh column-major 2-D array.
func (m *Dense) ToColumns() [][]float64 {
	out := make([][]float64, m.c)
	for j := range out {
		out[j] = make([]float64, m.r)
		for i := 0; i < m.r; i++ {
			out[j][i] = m.data[i*m.c+j]
		}
	}

	return out
}

// RawData returns a copy of the row-major buffer.
func (m *Dense) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Same reports whether m and other are the same storage instance (shallow equality).
func (m *Dense) Same(other *Dense) bool { return m == other }

// Equal reports deep, exact equality: same shape and bit-identical elements
// compared with ==. NaN entries therefore never compare equal. The check is
// meant for change detection, use AllClose for numerical comparison.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k, v := range m.data {
		if v != other.data[k] {
			return false
		}
	}

	return true
}

// String provides a readable row-wise dump for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Under the finite-only policy, the transform is evaluated on every element
//     first and nothing is written if any result is NaN/±Inf.
//
// Returns:
//   - error: ErrNaNInf when the transformer produced a non-finite value (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) with the policy on, O(1) otherwise.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	if !m.validateNaNInf {
		for i = 0; i < m.r; i++ {
			base = i * m.c
			for j = 0; j < m.c; j++ {
				m.data[base+j] = f(i, j, m.data[base+j])
			}
		}

		return nil
	}

	staged := make([]float64, len(m.data))
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if math.IsNaN(nv) || math.IsInf(nv, 0) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			staged[base+j] = nv
		}
	}
	copy(m.data, staged)

	return nil
}

// Combine updates m in place with m[i,j] = f(m[i,j], other[i,j]).
// Shapes must match exactly; nothing is written on error.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validated first).
//   - ErrNaNInf under the finite-only policy.
func (m *Dense) Combine(other Matrix, f func(a, b float64) float64) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return denseAxisErrorf(ctxCombine, err)
	}
	if od, ok := other.(*Dense); ok {
		return m.Apply(func(i, j int, v float64) float64 {
			return f(v, od.data[i*od.c+j])
		})
	}

	// Generic fallback: snapshot the operand first so that Apply never sees an At error.
	snapshot := make([]float64, m.r*m.c)
	var err error
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if snapshot[i*m.c+j], err = other.At(i, j); err != nil {
				return denseAxisErrorf(ctxCombine, err)
			}
		}
	}

	return m.Apply(func(i, j int, v float64) float64 {
		return f(v, snapshot[i*m.c+j])
	})
}
