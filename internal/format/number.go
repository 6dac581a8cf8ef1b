package format

import (
	"math"
	"strconv"
)

// FormatFloat renders f as the shortest decimal that parses back to the same
// value, never using exponent notation. Whole numbers carry no fractional
// part ("32", "-40"). Non-finite values render as "NaN", "inf" and "-inf".
//
// Parameters:
//   - f: The value to format.
//
// Returns:
//   - string: The decimal representation.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
