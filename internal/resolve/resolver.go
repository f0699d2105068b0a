package resolve

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"def-modifier/fieldpath"
	"def-modifier/internal/diagnostic"
	"def-modifier/internal/match"
	"def-modifier/primitive"
	"def-modifier/statics"
	"def-modifier/utils"
)

// Target is the resolved scalar leaf of a path plus the write-back steps
// needed to make a write to it visible from the root.
type Target struct {
	Path fieldpath.Path

	leaf  slot
	typ   reflect.Type
	chain Chain
}

// Type returns the type a value must have to be stored in the leaf.
func (t *Target) Type() reflect.Type {
	return t.typ
}

// Kind returns the scalar kind of the leaf.
func (t *Target) Kind() primitive.KindEnum {
	return primitive.FromReflectType(t.typ)
}

// Current returns the value currently held by the leaf.
func (t *Target) Current() reflect.Value {
	if t.leaf.v.Kind() == reflect.Interface {
		return t.leaf.v.Elem()
	}

	return t.leaf.v
}

// Depth returns the number of copied value-type ancestors that are written
// back after the leaf.
func (t *Target) Depth() int {
	return t.chain.Len()
}

// Assign coerces v into the leaf type, stores it and writes every copied
// ancestor back. Nothing is written when coercion fails.
func (t *Target) Assign(v primitive.Value) error {
	out, err := primitive.Coerce(v, t.typ)
	if err != nil {
		return fmt.Errorf("%s: %w", t.Path, err)
	}

	t.leaf.store(out)
	t.chain.Unwind()

	return nil
}

// Resolve walks root along path. Root must be a non-nil pointer, a map, or a
// *statics.Namespace, since anything else would be modified as a copy.
func Resolve(root any, path fieldpath.Path) (*Target, error) {
	if path.IsEmpty() {
		return nil, fmt.Errorf("%w: empty path", diagnostic.ErrTargetResolution)
	}

	w := &walker{path: path}

	if ns, ok := root.(*statics.Namespace); ok {
		if ns == nil {
			return nil, fmt.Errorf("%w: nil namespace", diagnostic.ErrTargetResolution)
		}

		return w.fromNamespace(ns)
	}

	rv := reflect.ValueOf(root)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map:
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: root %T is nil", diagnostic.ErrTargetResolution, root)
		}
	default:
		return nil, fmt.Errorf("%w: root %T is not a pointer or a map", diagnostic.ErrTargetResolution, root)
	}

	return w.walk(slot{v: rv}, 0)
}

type walker struct {
	path  fieldpath.Path
	chain Chain
}

func (w *walker) fail(sentinel error, at int, format string, args ...any) error {
	return fmt.Errorf("%w at %q: %s", sentinel, w.path.Prefix(at+1), fmt.Sprintf(format, args...))
}

func (w *walker) fromNamespace(ns *statics.Namespace) (*Target, error) {
	for i, seg := range w.path.Segments {
		if seg.IsIndex() {
			return nil, w.fail(diagnostic.ErrTargetResolution, i, "namespace %s cannot be indexed", ns.Name())
		}

		cell, nested, ok := ns.Member(seg.Name)
		if !ok {
			return nil, w.fail(diagnostic.ErrTargetResolution, i, "namespace %s has no member %q%s",
				ns.Name(), seg.Name, suggestion(seg.Name, ns.Members()))
		}

		if nested != nil {
			ns = nested
			continue
		}

		return w.walk(slot{v: cell}, i+1)
	}

	return nil, w.fail(diagnostic.ErrTargetResolution, w.path.Len()-1, "%s is a namespace, not a scalar", ns.Name())
}

func (w *walker) walk(cur slot, from int) (*Target, error) {
	for i := from; i < w.path.Len(); i++ {
		container, err := w.enter(cur, i)
		if err != nil {
			return nil, err
		}

		seg := w.path.Segments[i]
		if seg.IsIndex() {
			cur, err = w.index(container, seg.Index, i)
		} else {
			cur, err = w.member(container, seg.Name, i)
		}

		if err != nil {
			return nil, err
		}
	}

	return w.leaf(cur)
}

// enter unwraps pointers and interfaces and makes sure a struct or array
// container is addressable, so that its members can be set.
func (w *walker) enter(cur slot, at int) (slot, error) {
	for {
		switch cur.v.Kind() {
		case reflect.Ptr:
			if cur.v.IsNil() {
				return slot{}, w.fail(diagnostic.ErrTargetResolution, at-1, "nil %s", cur.v.Type())
			}

			cur = slot{v: cur.v.Elem()}
			w.chain.reset()

			continue
		case reflect.Interface:
			if cur.v.IsNil() {
				return slot{}, w.fail(diagnostic.ErrTargetResolution, at-1, "nil %s", cur.v.Type())
			}

			cur = slot{v: cur.v.Elem(), set: cur.store}

			continue
		case reflect.Map, reflect.Slice:
			w.chain.reset()
		case reflect.Struct, reflect.Array:
			if !cur.v.CanAddr() {
				origin := cur
				copied := reflect.New(cur.v.Type()).Elem()
				copied.Set(cur.v)
				w.chain.push(func() { origin.store(copied) })
				cur = slot{v: copied}
			}
		}

		return cur, nil
	}
}

func (w *walker) member(container slot, name string, at int) (slot, error) {
	v := container.v

	switch v.Kind() {
	case reflect.Struct:
		f, ok := lookupField(v.Type(), name)
		if !ok {
			return slot{}, w.fail(diagnostic.ErrTargetResolution, at, "%s has no field %q%s",
				v.Type(), name, suggestion(name, fieldNames(v.Type())))
		}

		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return slot{}, w.fail(diagnostic.ErrTargetResolution, at, "%v", err)
		}

		if !fv.CanSet() {
			return slot{}, w.fail(diagnostic.ErrTargetResolution, at, "field %s of %s is not settable", f.Name, v.Type())
		}

		return slot{v: fv}, nil

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return slot{}, w.fail(diagnostic.ErrTargetResolution, at, "%s is not keyed by name", v.Type())
		}

		key := reflect.ValueOf(name).Convert(v.Type().Key())

		mv := v.MapIndex(key)
		if !mv.IsValid() {
			return slot{}, w.fail(diagnostic.ErrTargetResolution, at, "no entry %q%s",
				name, suggestion(name, mapKeys(v)))
		}

		return slot{v: mv, set: func(x reflect.Value) { v.SetMapIndex(key, x) }}, nil

	default:
		return slot{}, w.fail(diagnostic.ErrTargetResolution, at, "%s has no members", v.Type())
	}
}

func (w *walker) index(container slot, i, at int) (slot, error) {
	v := container.v

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if !utils.IsInRange(0, i, v.Len()-1) {
			return slot{}, w.fail(diagnostic.ErrIndexOutOfRange, at, "index %d, length %d", i, v.Len())
		}

		return slot{v: v.Index(i)}, nil

	default:
		return slot{}, w.fail(diagnostic.ErrTargetResolution, at, "%s cannot be indexed", v.Type())
	}
}

// leaf validates that the final slot holds a scalar and builds the Target.
func (w *walker) leaf(cur slot) (*Target, error) {
	last := w.path.Len() - 1

	for {
		switch cur.v.Kind() {
		case reflect.Ptr:
			if cur.v.IsNil() {
				return nil, w.fail(diagnostic.ErrTargetResolution, last, "nil %s", cur.v.Type())
			}

			cur = slot{v: cur.v.Elem()}
			w.chain.reset()

			continue
		case reflect.Interface:
			if cur.v.IsNil() {
				return nil, w.fail(diagnostic.ErrTargetResolution, last, "nil %s has no scalar type", cur.v.Type())
			}

			inner := cur.v.Elem()
			if inner.Kind() == reflect.Ptr {
				cur = slot{v: inner, set: cur.store}
				continue
			}

			if !primitive.IsLeaf(inner.Type()) {
				return nil, w.fail(diagnostic.ErrTargetResolution, last, "%s is not a scalar", inner.Type())
			}

			if !cur.settable() {
				return nil, w.fail(diagnostic.ErrTargetResolution, last, "%s is not settable", cur.v.Type())
			}

			return w.target(cur, inner.Type()), nil
		}

		if !primitive.IsLeaf(cur.v.Type()) {
			return nil, w.fail(diagnostic.ErrTargetResolution, last, "%s is not a scalar", cur.v.Type())
		}

		if !cur.settable() {
			return nil, w.fail(diagnostic.ErrTargetResolution, last, "%s is not settable", cur.v.Type())
		}

		return w.target(cur, cur.v.Type()), nil
	}
}

func (w *walker) target(leaf slot, typ reflect.Type) *Target {
	return &Target{
		Path:  w.path,
		leaf:  leaf,
		typ:   typ,
		chain: w.chain,
	}
}

// lookupField finds an exported field, promoted ones included, by its member
// name, then by a unique case-insensitive member name. A `def` tag replaces
// the Go field name as the member name.
func lookupField(t reflect.Type, name string) (reflect.StructField, bool) {
	var folded []reflect.StructField

	for _, f := range reflect.VisibleFields(t) {
		key, ok := memberName(f)
		if !ok {
			continue
		}

		if key == name {
			return f, true
		}

		if strings.EqualFold(key, name) {
			folded = append(folded, f)
		}
	}

	if len(folded) == 1 {
		return folded[0], true
	}

	return reflect.StructField{}, false
}

func memberName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}

	switch tag := f.Tag.Get(statics.Tag); tag {
	case "-":
		return "", false
	case "":
		return f.Name, true
	default:
		return tag, true
	}
}

func fieldNames(t reflect.Type) []string {
	var names []string

	for _, f := range reflect.VisibleFields(t) {
		if name, ok := memberName(f); ok {
			names = append(names, name)
		}
	}

	return names
}

func mapKeys(m reflect.Value) []string {
	keys := make([]string, 0, m.Len())
	for _, k := range m.MapKeys() {
		keys = append(keys, k.String())
	}

	sort.Strings(keys)

	return keys
}

func suggestion(name string, known []string) string {
	names := match.Suggest(name, known)
	if len(names) == 0 {
		return ""
	}

	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}

	return fmt.Sprintf(" (did you mean %s?)", strings.Join(quoted, " or "))
}
