package fibonacci

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// recursiveLimit keeps the exponential formulation fast enough for
// property runs.
const recursiveLimit = 27

// TestBaseCases_PropertyBased verifies T(n) == n for n in {0, 1}.
func TestBaseCases_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("recursive base cases return n", prop.ForAll(
		func(n uint64) bool {
			got, err := Recursive(n)
			return err == nil && got == n
		},
		gen.UInt64Range(0, 1),
	))
	properties.Property("iterative base cases return n", prop.ForAll(
		func(n uint64) bool {
			got, err := Iterative(n)
			return err == nil && got == n
		},
		gen.UInt64Range(0, 1),
	))

	properties.TestingRun(t)
}

// TestRecurrenceRelation_PropertyBased verifies the defining recurrence:
//
//	T(n) = T(n-1) + T(n-2)  for n >= 2
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("recursive satisfies T(n) = T(n-1) + T(n-2)", prop.ForAll(
		func(n uint64) bool {
			fn, err := Recursive(n)
			if err != nil {
				return false
			}
			fn1, err := Recursive(n - 1)
			if err != nil {
				return false
			}
			fn2, err := Recursive(n - 2)
			if err != nil {
				return false
			}
			return fn == fn1+fn2
		},
		gen.UInt64Range(2, recursiveLimit),
	))

	properties.Property("iterative satisfies T(n) = T(n-1) + T(n-2)", prop.ForAll(
		func(n uint64) bool {
			fn, err := Iterative(n)
			if err != nil {
				return false
			}
			fn1, err := Iterative(n - 1)
			if err != nil {
				return false
			}
			fn2, err := Iterative(n - 2)
			if err != nil {
				return false
			}
			return fn == fn1+fn2
		},
		gen.UInt64Range(2, MaxIndex),
	))

	properties.TestingRun(t)
}

// TestCassinisIdentity_PropertyBased verifies Cassini's identity
//
//	T(n-1) * T(n+1) - T(n)² = (-1)ⁿ
//
// in signed arithmetic for indices small enough that the products fit.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("iterative satisfies Cassini's identity", prop.ForAll(
		func(n uint64) bool {
			a, _ := Iterative(n - 1)
			b, _ := Iterative(n)
			c, _ := Iterative(n + 1)
			left := int64(a)*int64(c) - int64(b)*int64(b)
			right := int64(1)
			if n%2 != 0 {
				right = -1
			}
			return left == right
		},
		gen.UInt64Range(1, 44),
	))

	properties.TestingRun(t)
}

// TestFormulationsAgree_PropertyBased cross-checks the two formulations.
func TestFormulationsAgree_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("recursive and iterative agree", prop.ForAll(
		func(n uint64) bool {
			r, err1 := Recursive(n)
			i, err2 := Iterative(n)
			return err1 == nil && err2 == nil && r == i
		},
		gen.UInt64Range(0, recursiveLimit),
	))

	properties.TestingRun(t)
}
