// Package dimension implements the fixed-length exponent vector UCUM
// uses to track the physical dimension of a unit: length, time, mass,
// plane-angle, temperature, electric charge, and luminous intensity.
package dimension
