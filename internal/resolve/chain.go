package resolve

import "reflect"

// slot is a value together with a way to replace it where it lives.
type slot struct {
	v reflect.Value
	// set stores a replacement. Nil means v is addressable and is set directly.
	set func(reflect.Value)
}

func (s slot) store(x reflect.Value) {
	if s.set != nil {
		s.set(x)
		return
	}

	s.v.Set(x)
}

func (s slot) settable() bool {
	return s.set != nil || s.v.CanSet()
}

// Chain is the ordered list of write-back steps, outermost first.
type Chain struct {
	steps []func()
}

func (c *Chain) push(step func()) {
	c.steps = append(c.steps, step)
}

func (c *Chain) reset() {
	c.steps = c.steps[:0]
}

// Len returns the number of pending write-back steps.
func (c *Chain) Len() int {
	return len(c.steps)
}

// Unwind runs the steps innermost first: each copy is stored into its parent
// before the parent itself is stored further out.
func (c *Chain) Unwind() {
	for i := len(c.steps) - 1; i >= 0; i-- {
		c.steps[i]()
	}
}
