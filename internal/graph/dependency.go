package graph

import (
	"errors"
	"strings"

	"github.com/specialistvlad/depgraph/internal/artifact"
)

// ErrNilArtifact is returned when a dependency is built without an artifact.
var ErrNilArtifact = errors.New("dependency artifact cannot be nil")

// Common dependency scopes.
const (
	ScopeCompile  = "compile"
	ScopeProvided = "provided"
	ScopeRuntime  = "runtime"
	ScopeTest     = "test"
	ScopeSystem   = "system"
)

// Dependency is an artifact together with its role in the build. It is
// immutable; setters follow the same no-op identity rule as artifacts.
type Dependency struct {
	artifact artifact.Artifact
	scope    string
	optional bool
}

// NewDependency builds a non-optional dependency.
func NewDependency(a artifact.Artifact, scope string) (*Dependency, error) {
	if a == nil {
		return nil, ErrNilArtifact
	}
	return &Dependency{artifact: a, scope: scope}, nil
}

// Artifact returns the dependency's artifact, never nil.
func (d *Dependency) Artifact() artifact.Artifact { return d.artifact }

// Scope returns the dependency's scope, "" if none was given.
func (d *Dependency) Scope() string { return d.scope }

// Optional reports whether the dependency is optional.
func (d *Dependency) Optional() bool { return d.optional }

// SetArtifact returns a dependency with the given artifact. Only the very
// same artifact value counts as unchanged: an equal artifact may still carry
// other properties or decorator data.
func (d *Dependency) SetArtifact(a artifact.Artifact) (*Dependency, error) {
	if a == nil {
		return nil, ErrNilArtifact
	}
	if a == d.artifact {
		return d, nil
	}
	next := *d
	next.artifact = a
	return &next, nil
}

// SetScope returns a dependency with the given scope.
func (d *Dependency) SetScope(scope string) *Dependency {
	if d.scope == scope {
		return d
	}
	next := *d
	next.scope = scope
	return &next
}

// SetOptional returns a dependency with the given optional flag.
func (d *Dependency) SetOptional(optional bool) *Dependency {
	if d.optional == optional {
		return d
	}
	next := *d
	next.optional = optional
	return &next
}

// Key returns the dependency's identity: its artifact key plus scope.
func (d *Dependency) Key() Key {
	return Key{Artifact: artifact.KeyOf(d.artifact), Scope: d.scope}
}

// String renders the dependency as `<artifact> (<scope>[?])`.
func (d *Dependency) String() string {
	var sb strings.Builder
	sb.WriteString(d.artifact.String())
	sb.WriteString(" (")
	sb.WriteString(d.scope)
	if d.optional {
		sb.WriteByte('?')
	}
	sb.WriteByte(')')
	return sb.String()
}

// Key is the comparable identity of a dependency.
type Key struct {
	Artifact artifact.Key
	Scope    string
}
