// Package modifier applies declarative field edits to live definition objects.
//
// A Definition selects a root object, either by repository id (GUID) or by the
// qualified name of a static namespace (Class), and then assigns one value to
// a scalar field path, or a list of steps in order:
//
//	guid: "3d1c..."
//	field: "weapons[0].damage.amount"
//	value: 40
//
//	cls: "game.Tuning+AI"
//	modletlist:
//	  - field: aggro
//	    value: 0.75
//	  - field: retreatBelowHP
//	    value: 15
//
// Paths are parsed by package fieldpath. Values are coerced into the kind of
// the destination field by package primitive: integers and integral floats
// into integer fields, any number into float fields, bools and numbers into
// bool fields, and strings into string fields.
//
// Value-type ancestors reached through map entries or interface values are
// copied during resolution and written back after the leaf is set, so edits
// below a map of structs are visible from the root.
//
// A single edit never mutates anything when it fails. In a step list a
// malformed step (empty field or no value) is skipped, and the first failing
// well-formed step stops the list with earlier steps left applied.
package modifier
