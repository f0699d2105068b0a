// Package statics holds process-wide namespaces of mutable variables that
// modifiers can address by qualified name instead of by def id.
//
// A namespace is registered once, usually from an init function, by binding
// pointers to package-level variables:
//
//	var Tuning struct {
//		MaxSquadSize int
//		Difficulty   float64
//	}
//
//	func init() {
//		statics.Define("game/balance.Tuning").Bind(&Tuning)
//	}
//
// Nested namespaces are separated by '+' in qualified names, for example
// "game/balance.Tuning+AI". Lookups accept the full name or any suffix that
// starts after a '/', so "balance.Tuning" finds the namespace above.
//
// Writes through a namespace change the bound variables themselves and are
// visible to the whole process. Callers applying modifiers concurrently must
// synchronize access to the variables.
package statics
