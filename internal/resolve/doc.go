// Package resolve walks a def object graph along a fieldpath.Path and
// returns a writable Target for the scalar leaf at its end.
//
// Resolution never mutates the graph. Values read out of maps or interfaces
// are copies; when the walk has to descend into such a copy of a struct or
// array, the copy is made addressable and a write-back step is recorded that
// stores it into the slot it came from. Target.Assign writes the leaf and then
// runs those steps innermost first, so every copied ancestor ends up holding
// the new value. Passing through a pointer, map or slice discards the recorded
// steps: the container below is shared and is written in place.
package resolve
