package modifier

import (
	"errors"
	"fmt"
	"log/slog"

	"def-modifier/fieldpath"
	"def-modifier/internal/diagnostic"
	"def-modifier/internal/resolve"
	"def-modifier/primitive"
	"def-modifier/statics"
)

// ModFile applies the definitions of one named mod file.
type ModFile struct {
	name    string
	repo    Repository
	statics *statics.Registry
	logger  *slog.Logger
}

// Option configures a ModFile.
type Option func(*ModFile)

// WithStatics sets the registry Class selectors are looked up in.
// The default is statics.Default.
func WithStatics(r *statics.Registry) Option {
	return func(m *ModFile) {
		m.statics = r
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *ModFile) {
		m.logger = l
	}
}

// NewModFile creates a ModFile resolving GUID selectors against repo.
func NewModFile(name string, repo Repository, opts ...Option) *ModFile {
	m := &ModFile{
		name:    name,
		repo:    repo,
		statics: statics.Default,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.With("modfile", name)

	return m
}

// Name returns the mod file name.
func (m *ModFile) Name() string {
	return m.name
}

// ApplyModifier applies one definition. Errors are wrapped so that errors.Is
// matches ErrNotFound, ErrMalformedPath, ErrTargetResolution,
// ErrIndexOutOfRange or ErrCoercion; a repository error is returned as is.
func (m *ModFile) ApplyModifier(def Definition) error {
	return m.apply(def, nil)
}

// Apply applies every definition and keeps going past failures. Each failure
// becomes an error diagnostic; skipped steps and applied definitions are
// recorded as infos.
func (m *ModFile) Apply(defs []Definition) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	for _, def := range defs {
		if err := m.apply(def, diags); err != nil {
			m.logger.Warn("modifier failed", "def", def.Label(), "error", err)
			diags.AddError(err, def.Label(), failedField(def, err))

			continue
		}

		diags.AddInfo(diagnostic.CodeAppliedDefinition, "applied", def.Label(), def.Field)
	}

	return diags
}

// ApplyModifier applies def against repo and the default statics registry.
func ApplyModifier(repo Repository, def Definition) error {
	return NewModFile("", repo).ApplyModifier(def)
}

func (m *ModFile) apply(def Definition, diags *diagnostic.Diagnostics) error {
	root, err := m.root(def)
	if err != nil {
		return err
	}

	if !def.IsBatch() {
		return m.assign(root, def.Label(), def.Field, def.Value)
	}

	for i, step := range def.Steps {
		if step.IsMalformed() {
			m.logger.Debug("skipping malformed step", "def", def.Label(), "step", i, "field", step.Field)

			if diags != nil {
				diags.AddInfo(diagnostic.CodeSkippedStep,
					fmt.Sprintf("step %d has no field or no value", i), def.Label(), step.Field)
			}

			continue
		}

		if err := m.assign(root, def.Label(), step.Field, step.Value); err != nil {
			return &StepError{Index: i, Field: step.Field, Err: err}
		}
	}

	return nil
}

func (m *ModFile) root(def Definition) (any, error) {
	switch {
	case def.GUID != "":
		return m.repo.GetDef(def.GUID)
	case def.Class != "":
		return m.statics.Lookup(def.Class)
	default:
		return nil, fmt.Errorf("%w: definition has neither guid nor cls", ErrNotFound)
	}
}

func (m *ModFile) assign(root any, label, field string, value primitive.Value) error {
	path, err := fieldpath.Parse(field)
	if err != nil {
		return err
	}

	target, err := resolve.Resolve(root, path)
	if err != nil {
		return err
	}

	if err := target.Assign(value); err != nil {
		return err
	}

	m.logger.Debug("applied", "def", label, "field", path.String(), "value", value.String(), "kind", target.Kind())

	return nil
}

// StepError reports the step of a step list that stopped it.
type StepError struct {
	Index int
	Field string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("modlet step %d (%s): %v", e.Index, e.Field, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func failedField(def Definition, err error) string {
	var se *StepError
	if errors.As(err, &se) {
		return se.Field
	}

	return def.Field
}
