package fibonacci

const (
	// MaxIndex is the largest n for which T(n) fits in a uint64.
	// T(93) = 12200160415121876738; T(94) exceeds 2^64-1.
	MaxIndex = 93

	// cancelCheckMinN is the smallest subproblem at which the recursive
	// formulation polls its context. Subtrees below it finish in well under
	// a millisecond.
	cancelCheckMinN = 25
)
