package statics

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"def-modifier/internal/diagnostic"
	"def-modifier/utils"
)

// Tag is the struct tag overriding the member name of a field.
const Tag = "def"

// NestedSep separates nested namespace names in a qualified name.
const NestedSep = "+"

// Default is the process-wide registry used by Define and Lookup.
var Default = NewRegistry()

// Define creates or returns a namespace in the Default registry.
func Define(qualifiedName string) *Namespace {
	return Default.Define(qualifiedName)
}

// Lookup finds a namespace in the Default registry.
func Lookup(qualifiedName string) (*Namespace, error) {
	return Default.Lookup(qualifiedName)
}

// Registry maps qualified names to namespaces.
type Registry struct {
	mu    sync.RWMutex
	roots map[string]*Namespace
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		roots: make(map[string]*Namespace),
	}
}

// Define creates or returns the namespace with the given qualified name.
// Nested parts separated by '+' are created as needed.
func (r *Registry) Define(qualifiedName string) *Namespace {
	root, nested := utils.Unpack2(strings.SplitN(qualifiedName, NestedSep, 2))
	if root == "" {
		panic("statics: empty namespace name")
	}

	r.mu.Lock()
	ns, ok := r.roots[root]
	if !ok {
		ns = newNamespace(root)
		r.roots[root] = ns
	}
	r.mu.Unlock()

	if nested == "" {
		return ns
	}

	for _, part := range strings.Split(nested, NestedSep) {
		ns = ns.Nested(part)
	}

	return ns
}

// Lookup resolves a qualified name:
//   - "def-modifier/game.Tuning" (full)
//   - "game.Tuning" (suffix after a '/')
//   - "Tuning" (name only, must be unambiguous)
//   - any of the above followed by "+Nested" parts
func (r *Registry) Lookup(qualifiedName string) (*Namespace, error) {
	root, nested := utils.Unpack2(strings.SplitN(qualifiedName, NestedSep, 2))

	ns, err := r.lookupRoot(root)
	if err != nil {
		return nil, err
	}

	if nested == "" {
		return ns, nil
	}

	for _, part := range strings.Split(nested, NestedSep) {
		child := ns.child(part)
		if child == nil {
			return nil, fmt.Errorf("%w: namespace %q has no nested namespace %q",
				diagnostic.ErrNotFound, ns.Name(), part)
		}

		ns = child
	}

	return ns, nil
}

func (r *Registry) lookupRoot(name string) (*Namespace, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty namespace name", diagnostic.ErrNotFound)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// 1) exact match
	if ns, ok := r.roots[name]; ok {
		return ns, nil
	}

	// 2) suffix match for short forms like "game.Tuning" vs "def-modifier/game.Tuning",
	// or the bare type name when it carries no package at all
	var matches []string

	for key := range r.roots {
		switch {
		case strings.HasSuffix(key, "/"+name):
			matches = append(matches, key)
		case !strings.Contains(name, ".") && key[strings.LastIndex(key, ".")+1:] == name:
			matches = append(matches, key)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: static namespace %q", diagnostic.ErrNotFound, name)
	case 1:
		return r.roots[matches[0]], nil
	default:
		sort.Strings(matches)

		return nil, fmt.Errorf("%w: static namespace %q is ambiguous: %s",
			diagnostic.ErrNotFound, name, strings.Join(matches, ", "))
	}
}

// Names returns all root namespace names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.roots))
	for name := range r.roots {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Remove drops a root namespace. Bound variables are left untouched.
func (r *Registry) Remove(qualifiedName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.roots, qualifiedName)
}

// Namespace is a set of named variable cells plus nested namespaces.
type Namespace struct {
	name string

	mu     sync.RWMutex
	vars   map[string]reflect.Value // addressable cells
	nested map[string]*Namespace
}

func newNamespace(name string) *Namespace {
	return &Namespace{
		name:   name,
		vars:   make(map[string]reflect.Value),
		nested: make(map[string]*Namespace),
	}
}

// Name returns the qualified name of the namespace.
func (n *Namespace) Name() string {
	return n.name
}

// Var binds a variable under name. ptr must be a non-nil pointer; the variable
// it points to is what modifiers read and write.
func (n *Namespace) Var(name string, ptr any) *Namespace {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		panic(fmt.Sprintf("statics: %s.%s must be bound to a non-nil pointer, got %T", n.name, name, ptr))
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.vars[name] = rv.Elem()

	return n
}

// Bind binds every exported field of the struct ptr points to. The field name,
// or its `def` tag, becomes the member name.
func (n *Namespace) Bind(ptr any) *Namespace {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("statics: %s can only bind a pointer to struct, got %T", n.name, ptr))
	}

	sv := rv.Elem()
	st := sv.Type()

	for i := range st.NumField() {
		f := st.Field(i)
		if !f.IsExported() || f.Tag.Get(Tag) == "-" {
			continue
		}

		name := f.Name
		if tag := f.Tag.Get(Tag); tag != "" {
			name = tag
		}

		n.Var(name, sv.Field(i).Addr().Interface())
	}

	return n
}

// Nested creates or returns the nested namespace with the given name.
func (n *Namespace) Nested(name string) *Namespace {
	n.mu.Lock()
	defer n.mu.Unlock()

	child, ok := n.nested[name]
	if !ok {
		child = newNamespace(n.name + NestedSep + name)
		n.nested[name] = child
	}

	return child
}

func (n *Namespace) child(name string) *Namespace {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.nested[name]
}

// Member finds a variable cell or a nested namespace by name. Exact names win
// over case-insensitive matches; an ambiguous case-insensitive match finds nothing.
func (n *Namespace) Member(name string) (cell reflect.Value, nested *Namespace, ok bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if v, found := n.vars[name]; found {
		return v, nil, true
	}

	if child, found := n.nested[name]; found {
		return reflect.Value{}, child, true
	}

	var hits int

	for key, v := range n.vars {
		if strings.EqualFold(key, name) {
			cell, hits = v, hits+1
		}
	}

	for key, child := range n.nested {
		if strings.EqualFold(key, name) {
			nested, hits = child, hits+1
		}
	}

	if hits != 1 {
		return reflect.Value{}, nil, false
	}

	return cell, nested, true
}

// Members returns the names of all variables and nested namespaces, sorted.
func (n *Namespace) Members() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	names := make([]string, 0, len(n.vars)+len(n.nested))
	for name := range n.vars {
		names = append(names, name)
	}

	for name := range n.nested {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
