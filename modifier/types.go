package modifier

import (
	"def-modifier/internal/diagnostic"
	"def-modifier/primitive"
)

// Error classes returned by ApplyModifier, matched with errors.Is.
var (
	ErrNotFound         = diagnostic.ErrNotFound
	ErrMalformedPath    = diagnostic.ErrMalformedPath
	ErrTargetResolution = diagnostic.ErrTargetResolution
	ErrIndexOutOfRange  = diagnostic.ErrIndexOutOfRange
	ErrCoercion         = diagnostic.ErrCoercion
)

// Repository gives access to definition objects by id.
type Repository interface {
	// GetDef returns the root object registered under id. Roots must be
	// pointers or maps so that edits are visible to the owner.
	GetDef(id string) (any, error)
}

// Definition is one modifier: a root selector plus either a single edit
// (Field, Value) or a list of steps.
type Definition struct {
	// GUID selects the root by repository id. It wins over Class.
	GUID string `yaml:"guid,omitempty" json:"guid,omitempty"`
	// Class selects a static namespace by qualified name.
	Class string `yaml:"cls,omitempty" json:"cls,omitempty"`

	Field string          `yaml:"field,omitempty" json:"field,omitempty"`
	Value primitive.Value `yaml:"value,omitempty" json:"value,omitempty"`

	// Steps switches the definition to batch mode when non-nil, even if empty.
	Steps []Step `yaml:"modletlist,omitempty" json:"modletlist,omitempty"`
}

// IsBatch reports whether the definition carries a step list.
func (d Definition) IsBatch() bool {
	return d.Steps != nil
}

// Label identifies the definition in logs and reports.
func (d Definition) Label() string {
	switch {
	case d.GUID != "":
		return "guid:" + d.GUID
	case d.Class != "":
		return "cls:" + d.Class
	default:
		return "<no root>"
	}
}

// Step is one edit of a step list.
type Step struct {
	Field string          `yaml:"field,omitempty" json:"field,omitempty"`
	Value primitive.Value `yaml:"value,omitempty" json:"value,omitempty"`
}

// IsMalformed reports whether the step misses its field or its value.
func (s Step) IsMalformed() bool {
	return s.Field == "" || !s.Value.IsSet()
}
