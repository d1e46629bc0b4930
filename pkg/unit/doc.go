// Package unit implements the Unit carrier and its algebra (component
// C): multiply, divide, invert, power, and the ratio/non-ratio
// conversion procedures that enforce UCUM's ratio-scale rules.
// Magnitude is held as a decimal.Decimal through the algebra; the
// conversion procedures turn magnitudes into float64 and compute in
// float64, in the ratio and special-function branches alike.
package unit
