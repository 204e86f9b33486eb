package artifact

import (
	"maps"
	"slices"
	"strconv"
	"sync"
)

// Well-known artifact properties set by the standard types.
const (
	PropertyType                 = "type"
	PropertyLanguage             = "language"
	PropertyIncludesDependencies = "includesDependencies"
	PropertyConstitutesBuildPath = "constitutesBuildPath"
)

// Type describes the classifier, extension and default properties that a
// dependency "type" such as "test-jar" implies.
type Type struct {
	ID         string
	Classifier string
	Extension  string
	Properties map[string]string
}

// NewType builds a type with the standard properties filled in.
func NewType(id, extension, classifier, language string, constitutesBuildPath, includesDependencies bool) *Type {
	return &Type{
		ID:         id,
		Classifier: classifier,
		Extension:  extension,
		Properties: map[string]string{
			PropertyType:                 id,
			PropertyLanguage:             language,
			PropertyConstitutesBuildPath: strconv.FormatBool(constitutesBuildPath),
			PropertyIncludesDependencies: strconv.FormatBool(includesDependencies),
		},
	}
}

// TypeRegistry maps type ids to types. It is safe for concurrent use.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[string]*Type
}

// NewTypeRegistry returns a registry holding the standard Maven types.
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{types: make(map[string]*Type)}
	for _, t := range []*Type{
		NewType("pom", "pom", "", "none", false, false),
		NewType("maven-plugin", "jar", "", "java", true, false),
		NewType("jar", "jar", "", "java", true, false),
		NewType("ejb", "jar", "", "java", true, false),
		NewType("ejb-client", "jar", "client", "java", true, false),
		NewType("test-jar", "jar", "tests", "java", true, false),
		NewType("javadoc", "jar", "javadoc", "java", true, false),
		NewType("java-source", "jar", "sources", "java", false, false),
		NewType("war", "war", "", "java", false, true),
		NewType("ear", "ear", "", "java", false, true),
		NewType("rar", "rar", "", "java", false, true),
		NewType("par", "par", "", "java", false, true),
	} {
		r.types[t.ID] = t
	}
	return r
}

// Add registers t, replacing any type with the same id.
func (r *TypeRegistry) Add(t *Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[t.ID] = t
}

// Get returns the registered type with the given id.
func (r *TypeRegistry) Get(id string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[id]
	return t, ok
}

// Lookup returns the registered type or, for unknown ids, a type whose
// extension is the id itself.
func (r *TypeRegistry) Lookup(id string) *Type {
	if t, ok := r.Get(id); ok {
		return t
	}
	return NewType(id, id, "", "none", false, false)
}

// IDs returns the registered type ids in sorted order.
func (r *TypeRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.types))
}
