// SPDX-License-Identifier: MIT

// Package valuation holds the immutable agent-by-good valuation matrix that
// every other rentdiv package consumes.
//
// A Matrix is n agents × m goods of finite, nonnegative float64 values stored
// row-major in a single flat slice. It is validated once in New and never mutated afterwards, so a
// *Matrix may be shared freely between goroutines.
//
// Validation order (first violation wins):
//
//	shape (empty / ragged) -> value (NaN / ±Inf) -> sign (negative)
//
// Every failure wraps one of the sentinels below and carries the offending
// agent/good position in its message:
//
//	ErrEmpty    - no agents, or an agent row with no goods.
//	ErrRagged   - rows of different lengths.
//	ErrNaNInf   - a NaN or ±Inf cell.
//	ErrNegative - a cell < 0.
//
// Usage:
//
//	v, err := valuation.New([][]float64{
//		{20, 30, 40},
//		{40, 30, 20},
//		{30, 30, 30},
//	})
//	if err != nil {
//		// errors.Is(err, valuation.ErrRagged) ...
//	}
//	fmt.Println(v.Agents(), v.Goods(), v.At(0, 2)) // 3 3 40
package valuation
