// Package aggregate derives the presentation views from a fetched dataset.
//
// Every function here is pure: the same inputs and season type always produce
// the same output, and inputs are never mutated.
package aggregate
