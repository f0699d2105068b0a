// Package match ranks known member names against a path segment that did
// not resolve, so resolution errors can carry a "did you mean" hint.
//
// Names are compared after NormalizeIdent folds case and separators, which
// lets "max_squad_size" and "maxSquadSize" land on the field MaxSquadSize.
// Suggest keeps the closest names scoring at least SuggestThreshold.
package match
