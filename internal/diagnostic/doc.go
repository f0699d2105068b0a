// Package diagnostic provides the error taxonomy of the modifier engine and
// structured reports for applying whole mod files.
//
// Key capabilities:
//   - Sentinel errors for every failure class (not found, malformed path,
//     target resolution, index out of range, coercion)
//   - Stable codes for those classes, used in reports and CLI output
//   - Error, warning and info diagnostics keyed by definition and field path
package diagnostic
