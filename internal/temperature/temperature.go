// Package temperature converts between the Fahrenheit and Celsius scales.
//
// Both conversions are affine and total: negative, fractional and
// non-finite inputs are accepted, and NaN or infinities propagate through
// the arithmetic unchanged.
package temperature

const (
	// FreezingFahrenheit is the offset between the two scales' zero points.
	FreezingFahrenheit = 32.0
	// DegreeRatio is the size of one Celsius degree in Fahrenheit degrees.
	DegreeRatio = 1.8
)

// ToCelsius converts a Fahrenheit temperature: (f − 32) / 1.8.
func ToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - FreezingFahrenheit) / DegreeRatio
}

// ToFahrenheit converts a Celsius temperature: 1.8·c + 32.
func ToFahrenheit(celsius float64) float64 {
	return DegreeRatio*celsius + FreezingFahrenheit
}

// Scale identifies a temperature scale.
type Scale int

const (
	Fahrenheit Scale = iota
	Celsius
)

// Symbol returns the bracketed unit used in program output, e.g. "[°F]".
func (s Scale) Symbol() string {
	switch s {
	case Fahrenheit:
		return "[°F]"
	case Celsius:
		return "[°C]"
	}
	return "[?]"
}

// Name returns the lower-case scale name.
func (s Scale) Name() string {
	switch s {
	case Fahrenheit:
		return "fahrenheit"
	case Celsius:
		return "celsius"
	}
	return "unknown"
}

// Other returns the scale a value on s is converted to.
func (s Scale) Other() Scale {
	if s == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// Conversion is the result of converting Input on From into Output on To.
type Conversion struct {
	From   Scale
	To     Scale
	Input  float64
	Output float64
}

// Convert converts value from the given scale into the other one.
func Convert(value float64, from Scale) Conversion {
	c := Conversion{From: from, To: from.Other(), Input: value}
	if from == Fahrenheit {
		c.Output = ToCelsius(value)
	} else {
		c.Output = ToFahrenheit(value)
	}
	return c
}
