package fibonacci

import (
	"context"
	"math/bits"

	apperrors "github.com/agbru/primer/internal/errors"
)

// Recursive returns T(n) by direct recursion on the definition.
// It performs on the order of T(n) calls; n above ~45 takes seconds to
// minutes. Use RecursiveContext to bound the running time.
func Recursive(n uint64) (uint64, error) {
	return RecursiveContext(context.Background(), n)
}

// RecursiveContext is Recursive with cancellation. It returns ctx.Err() if
// ctx is done before the computation finishes.
func RecursiveContext(ctx context.Context, n uint64) (uint64, error) {
	if n > MaxIndex {
		return 0, apperrors.OverflowError{N: n, Limit: MaxIndex}
	}
	return recurse(ctx, n)
}

func recurse(ctx context.Context, n uint64) (uint64, error) {
	switch n {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	}

	if n >= cancelCheckMinN {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
	}

	a, err := recurse(ctx, n-1)
	if err != nil {
		return 0, err
	}
	b, err := recurse(ctx, n-2)
	if err != nil {
		return 0, err
	}

	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, apperrors.OverflowError{N: n, Limit: MaxIndex}
	}
	return sum, nil
}
