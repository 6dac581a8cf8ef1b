// Package fibonacci computes terms of the sequence T(0)=0, T(1)=1,
// T(k)=T(k-1)+T(k-2) in 64-bit unsigned arithmetic.
//
// Two formulations are provided. Recursive is the textbook definition with
// two base cases and no memoization; its cost grows exponentially with n and
// it is the default for the fibonacci program. Iterative keeps a running
// pair and runs in linear time. Both report an apperrors.OverflowError
// instead of wrapping around when the term does not fit in a uint64.
package fibonacci
