// Package common provides small, dependency-free helpers shared by the
// rest of the module, currently just PathError: a way to attach a
// location string to an error without every caller defining its own
// wrapper type.
package common
