// Package fieldpath parses field paths addressing a scalar inside a def.
//
// # Path Syntax
//
//	path    := segment ('.' segment)*
//	segment := identifier index*
//	index   := '[' digit+ ']'
//
// Examples:
//   - Simple fields: "intValue"
//   - Nested fields: "nested.anotherNest.intValue"
//   - Sequence elements: "values[2]"
//   - Nested sequence fields: "arr[0].nestedValues[1]"
//
// Negative and non-integer indices are rejected here, before any object is
// touched. Range checks happen later, against the live object.
package fieldpath
