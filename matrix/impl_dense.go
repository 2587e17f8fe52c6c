// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support row-granular access (Row/SetRow) with private-buffer semantics.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Storage invariants:
//   - len(data) == r*c at all times; element (i,j) lives at data[i*c+j].
//   - A freshly allocated Dense is a valid all-zero matrix; kernels that
//     promise zero-initialized output rely on this.
//
// Policy:
//   - validateNaNInf guards every write (Set/SetRow); reads never validate.
//     Factorization kernels construct their outputs with the policy off so a
//     zero pivot may propagate non-finite values as documented.

package matrix

import (
	"fmt"
	"strings"
)

// Method tags for uniform error decoration on Dense accessors.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxSetRow = "SetRow"
)

// String rendering atoms (constants, not inline magic literals).
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtElem     = "%g"
)

// denseErrorf decorates err with a cell-level context: "Dense.<method>(i,j): ...".
// The underlying sentinel stays reachable through errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// denseRowErrorf decorates err with a row-level context: "Dense.<method>(i): ...".
func denseRowErrorf(method string, row int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, row, err)
}

// Dense is the canonical row-major float64 implementation of Matrix.
//
// The backing slice is contiguous, which unlocks the flat fast-paths inside
// every kernel of this package. Dense is not safe for concurrent mutation;
// concurrent reads are fine.
type Dense struct {
	r, c int       // dimensions, immutable after construction
	data []float64 // flat row-major backing store, len == r*c

	validateNaNInf bool // write policy: reject non-finite values when true
}

// Compile-time proof that *Dense satisfies Matrix.
var _ Matrix = (*Dense)(nil)

// NewDense allocates a zero-filled rows×cols matrix with the strict
// non-finite write policy enabled (see DefaultValidateNaNInf).
//
// Inputs:
//   - rows, cols: strictly positive dimensions.
//
// Returns:
//   - *Dense: all-zero matrix ready for use.
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//
// Complexity: O(rows*cols) for the zeroed allocation.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseZeroOK allocates like NewDense but additionally accepts zero
// dimensions, producing a degenerate empty matrix. Statistics kernels use
// it to mirror a zero-column input with a 0×0 result.
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy allocates a zero-filled matrix with an explicit write
// policy. Factorization kernels pass validate=false: their factors may
// legitimately carry the NaN/±Inf a zero pivot produces, and later Set or
// SetRow calls on such a factor must not reject them.
func newDenseWithPolicy(rows, cols int, validate bool) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	d.validateNaNInf = validate

	return d, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.c }

// indexOf maps (i,j) to the flat offset, or reports ErrOutOfRange.
// Callers wrap the sentinel with the method tag at the boundary.
func (d *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, ErrOutOfRange
	}

	return i*d.c + j, nil
}

// At returns the element at (i, j).
//
// Errors: ErrOutOfRange, wrapped as "Dense.At(i,j): ...".
func (d *Dense) At(i, j int) (float64, error) {
	idx, err := d.indexOf(i, j)
	if err != nil {
		return 0, denseErrorf(ctxAt, i, j, err)
	}

	return d.data[idx], nil
}

// Set stores v at (i, j), enforcing the non-finite write policy.
//
// Errors: ErrOutOfRange on bad indices; ErrNaNInf when the policy is on
// and v is NaN or ±Inf.
func (d *Dense) Set(i, j int, v float64) error {
	idx, err := d.indexOf(i, j)
	if err != nil {
		return denseErrorf(ctxSet, i, j, err)
	}
	if d.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	d.data[idx] = v

	return nil
}

// Row returns a fresh copy of row i. The returned slice is a private
// buffer: mutating it never touches the matrix until it is written back
// via SetRow. Length always equals Cols().
//
// Errors: ErrOutOfRange, wrapped as "Dense.Row(i): ...".
func (d *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.r {
		return nil, denseRowErrorf(ctxRow, i, ErrOutOfRange)
	}
	row := make([]float64, d.c)
	copy(row, d.data[i*d.c:(i+1)*d.c])

	return row, nil
}

// SetRow copies row into row i, enforcing length and the write policy.
// The input slice is copied, never aliased, so callers may reuse it.
//
// Errors:
//   - ErrOutOfRange        when i is outside [0, rows).
//   - ErrNilMatrix         when row is nil.
//   - ErrDimensionMismatch when len(row) != Cols().
//   - ErrNaNInf            when the policy is on and row carries NaN/±Inf.
func (d *Dense) SetRow(i int, row []float64) error {
	if i < 0 || i >= d.r {
		return denseRowErrorf(ctxSetRow, i, ErrOutOfRange)
	}
	if row == nil {
		return denseRowErrorf(ctxSetRow, i, ErrNilMatrix)
	}
	if len(row) != d.c {
		return denseRowErrorf(ctxSetRow, i, ErrDimensionMismatch)
	}
	if d.validateNaNInf {
		for j, v := range row {
			if isNonFinite(v) {
				return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
			}
		}
	}
	copy(d.data[i*d.c:(i+1)*d.c], row)

	return nil
}

// Clone returns a deep, independent copy, preserving the write policy.
func (d *Dense) Clone() Matrix {
	cp := &Dense{
		r:              d.r,
		c:              d.c,
		data:           make([]float64, len(d.data)),
		validateNaNInf: d.validateNaNInf,
	}
	copy(cp.data, d.data)

	return cp
}

// String renders the matrix row by row as "[a, b, c]\n" with %g formatting.
// Intended for debugging and examples, not for machine parsing.
func (d *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < d.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, _fmtElem, d.data[i*d.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
