package models

import "math"

// Cents is a money amount in integer minor units. All arithmetic inside the
// engine happens in minor units; conversion to decimal strings is left to the
// presentation layer.
type Cents int64

// CentsFromFloat converts a decimal amount to minor units, rounding half away
// from zero at two decimal places.
func CentsFromFloat(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}

// Float64 returns the decimal value of the amount.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// ClampNonNegative floors the amount at zero.
func (c Cents) ClampNonNegative() Cents {
	if c < 0 {
		return 0
	}
	return c
}
