// SPDX-License-Identifier: MIT

package valuation

import "errors"

// Every message is prefixed with "valuation: ". Call sites add position
// context with fmt.Errorf("...: %w", ErrX); match with errors.Is.
var (
	// ErrEmpty is returned when there are no agents or no goods.
	ErrEmpty = errors.New("valuation: empty agent or good set")

	// ErrRagged is returned when agent rows differ in length.
	ErrRagged = errors.New("valuation: ragged matrix")

	// ErrNegative is returned when a valuation is below zero.
	ErrNegative = errors.New("valuation: negative value")

	// ErrNaNInf is returned when a valuation is NaN or ±Inf.
	ErrNaNInf = errors.New("valuation: NaN or Inf value")
)
