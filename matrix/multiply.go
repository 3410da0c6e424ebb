// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix product C = A × B with an adaptive choice between the naive
//     i→k→j triple loop and Strassen's seven-product recursion.
//
// Strategy:
//   - n = longest side of the problem (see longestSide).
//   - n < cutoff → naive; otherwise pad both operands to size×size with
//     size = next power of two ≥ n, recurse, trim back to a.Rows × b.Cols.
//   - Inside the recursion a product of half-size blocks recurses again when
//     half ≥ cutoff and falls back to naive otherwise.
//
// Determinism:
//   - Fixed combination order; fork-join (WithParallelDepth) only changes
//     which goroutine computes a product, never how products are combined.

package matrix

import "golang.org/x/sync/errgroup"

// Multiply returns A × B using k's cutoff snapshot.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (nil, empty, jagged, inner mismatch).
//   - Stage 2: read the cutoff once; obtain *Dense views of the operands.
//   - Stage 3: naive or Strassen per the cutoff rule; result is always a.Rows × b.Cols.
//
// Errors:
//   - errors.Is(err, ErrInvalidShape) for every shape violation.
//
// Complexity:
//   - Naive: O(r·n·c). Strassen: O(size^2.807) on the padded size.
//
// Notes:
//   - Inputs are never mutated; padding copies, it never reuses operand storage
//     for writes.
func (k *Kernel) Multiply(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return k.snapshot().mul(da, db, 0), nil
}

// mul applies the cutoff rule to validated, compatible operands. depth is the
// caller's recursion level, so nested products share one fork-join budget.
func (p plan) mul(a, b *Dense, depth int) *Dense {
	n := longestSide(a.r, a.c, b.c)
	if n < p.cutoff {
		return naiveMul(a, b)
	}
	size := nextPowerOfTwo(n)
	c := p.strassen(pad(a, size), pad(b, size), depth)

	return trim(c, a.r, b.c)
}

// longestSide picks the dimension that drives padding for an (aR×aC)·(aC×bC)
// product: when aC > bC it is max(aR, aC), otherwise max(aR, bC).
// Equivalent to max(aR, aC, bC).
func longestSide(aR, aC, bC int) int {
	if aC > bC {
		if aR >= aC {
			return aR
		}

		return aC
	}
	if aR >= bC {
		return aR
	}

	return bC
}

// nextPowerOfTwo returns the smallest power of two ≥ n (1 for n ≤ 1).
func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}

// naiveMul is the i→k→j triple loop over row-major buffers. There is no
// zero skip on A[i,k]: 0·NaN and 0·Inf must still poison the result.
func naiveMul(a, b *Dense) *Dense {
	aRows, aCols, bCols := a.r, a.c, b.c
	res := newDense(aRows, bCols)
	var i, k, j int
	var av float64
	var rowA, rowB, rowR int
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowA+k]
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res
}

// strassen multiplies two size×size operands where size is a power of two
// and size ≥ cutoff. depth counts recursion levels for the fork-join budget.
//
//	m1 = (a11 + a22)(b11 + b22)    c11 = m1 + m4 - m5 + m7
//	m2 = (a21 + a22) b11           c12 = m3 + m5
//	m3 = a11 (b12 - b22)           c21 = m2 + m4
//	m4 = a22 (b21 - b11)           c22 = m1 - m2 + m3 + m6
//	m5 = (a11 + a12) b22
//	m6 = (a21 - a11)(b11 + b12)
//	m7 = (a12 - a22)(b21 + b22)
func (p plan) strassen(a, b *Dense, depth int) *Dense {
	half := a.r / 2

	a11, a12, a21, a22 := quadrants(a, half, half)
	b11, b12, b21, b22 := quadrants(b, half, half)

	product := func(x, y *Dense) *Dense {
		if half >= p.cutoff {
			return p.strassen(x, y, depth+1)
		}

		return naiveMul(x, y)
	}

	var m1, m2, m3, m4, m5, m6, m7 *Dense
	p.runTasks(depth,
		func() { m1 = product(denseAdd(a11, a22), denseAdd(b11, b22)) },
		func() { m2 = product(denseAdd(a21, a22), b11) },
		func() { m3 = product(a11, denseSub(b12, b22)) },
		func() { m4 = product(a22, denseSub(b21, b11)) },
		func() { m5 = product(denseAdd(a11, a12), b22) },
		func() { m6 = product(denseSub(a21, a11), denseAdd(b11, b12)) },
		func() { m7 = product(denseSub(a12, a22), denseAdd(b21, b22)) },
	)

	c11 := denseAdd(denseSub(denseAdd(m1, m4), m5), m7)
	c12 := denseAdd(m3, m5)
	c21 := denseAdd(m2, m4)
	c22 := denseAdd(denseAdd(denseSub(m1, m2), m3), m6)

	return join(c11, c12, c21, c22)
}

// runTasks executes tasks concurrently when depth is inside the fork-join
// budget and sequentially otherwise. Tasks must write to disjoint variables
// and only read shared inputs.
func (p plan) runTasks(depth int, tasks ...func()) {
	if depth >= p.parallelDepth || len(tasks) < 2 {
		for _, task := range tasks {
			task()
		}

		return
	}
	if p.onFork != nil {
		p.onFork(depth)
	}

	var g errgroup.Group
	for _, task := range tasks {
		g.Go(func() error {
			task()
			return nil
		})
	}
	_ = g.Wait() // tasks never fail; Wait is the join point
}

// pad returns m embedded top-left in a size×size zero matrix.
// An operand that already has that shape is returned without copying;
// callers only read it.
func pad(m *Dense, size int) *Dense {
	if m.r == size && m.c == size {
		return m
	}
	out := newDense(size, size)
	for i := 0; i < m.r; i++ {
		copy(out.data[i*size:i*size+m.c], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// trim returns the top-left rows×cols block of m (m itself when the shape already matches).
func trim(m *Dense, rows, cols int) *Dense {
	if m.r == rows && m.c == cols {
		return m
	}

	return block(m, 0, 0, rows, cols)
}

// block copies the rows×cols sub-matrix starting at (r0, c0).
func block(m *Dense, r0, c0, rows, cols int) *Dense {
	out := newDense(rows, cols)
	for i := 0; i < rows; i++ {
		src := (r0+i)*m.c + c0
		copy(out.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return out
}

// quadrants splits m at row h and column w into four copied blocks:
// top-left h×w, top-right h×(c-w), bottom-left (r-h)×w, bottom-right (r-h)×(c-w).
func quadrants(m *Dense, h, w int) (q11, q12, q21, q22 *Dense) {
	q11 = block(m, 0, 0, h, w)
	q12 = block(m, 0, w, h, m.c-w)
	q21 = block(m, h, 0, m.r-h, w)
	q22 = block(m, h, w, m.r-h, m.c-w)

	return q11, q12, q21, q22
}

// join assembles four blocks into one matrix; q11/q12 share rows, q11/q21 share columns.
func join(q11, q12, q21, q22 *Dense) *Dense {
	h, w := q11.r, q11.c
	rows, cols := h+q21.r, w+q12.c
	out := newDense(rows, cols)
	for i := 0; i < h; i++ {
		copy(out.data[i*cols:i*cols+w], q11.data[i*w:(i+1)*w])
		copy(out.data[i*cols+w:(i+1)*cols], q12.data[i*q12.c:(i+1)*q12.c])
	}
	for i := 0; i < q21.r; i++ {
		row := (h + i) * cols
		copy(out.data[row:row+w], q21.data[i*w:(i+1)*w])
		copy(out.data[row+w:row+cols], q22.data[i*q22.c:(i+1)*q22.c])
	}

	return out
}
