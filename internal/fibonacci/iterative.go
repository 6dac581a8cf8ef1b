package fibonacci

import (
	"math/bits"

	apperrors "github.com/agbru/primer/internal/errors"
)

// Iterative returns T(n) by advancing the pair (T(k-1), T(k)) from k=1 to n.
func Iterative(n uint64) (uint64, error) {
	if n > MaxIndex {
		return 0, apperrors.OverflowError{N: n, Limit: MaxIndex}
	}
	if n == 0 {
		return 0, nil
	}

	prev, cur := uint64(0), uint64(1)
	for k := uint64(2); k <= n; k++ {
		next, carry := bits.Add64(prev, cur, 0)
		if carry != 0 {
			return 0, apperrors.OverflowError{N: k, Limit: MaxIndex}
		}
		prev, cur = cur, next
	}
	return cur, nil
}
