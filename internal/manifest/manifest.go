package manifest

import (
	"context"
	"fmt"

	"github.com/specialistvlad/depgraph/internal/artifact"
	"github.com/specialistvlad/depgraph/internal/ctxlog"
	"github.com/specialistvlad/depgraph/internal/graph"
)

// Manifest is the decoded content of a set of manifest files.
type Manifest struct {
	// Project is the label of the project block.
	Project string
	// Roots are the ids of the project's direct dependencies.
	Roots []string

	projectFile string
	decls       map[string]*Declaration
	order       []string
	types       map[string]*artifact.Type
	registry    *artifact.TypeRegistry
}

// Declaration is one dependency block with its artifact resolved.
type Declaration struct {
	ID        string
	File      string
	Artifact  artifact.Artifact
	Scope     string
	Optional  bool
	DependsOn []string
}

func newManifest(registry *artifact.TypeRegistry) *Manifest {
	return &Manifest{
		decls:    make(map[string]*Declaration),
		types:    make(map[string]*artifact.Type),
		registry: registry,
	}
}

// Declarations returns the dependency declarations in file order.
func (m *Manifest) Declarations() []*Declaration {
	out := make([]*Declaration, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.decls[id])
	}
	return out
}

// Declaration returns the dependency declared under id.
func (m *Manifest) Declaration(id string) (*Declaration, bool) {
	d, ok := m.decls[id]
	return d, ok
}

// Type resolves a type id against the manifest's artifact_type blocks first
// and the loader's registry second. Unknown ids yield a type whose extension
// is the id itself.
func (m *Manifest) Type(id string) *artifact.Type {
	if t, ok := m.types[id]; ok {
		return t
	}
	return m.registry.Lookup(id)
}

// addTypes registers the artifact_type blocks of one decoded file. Types of
// every file are registered before any dependency is declared, so a type may
// be used from any file.
func (m *Manifest) addTypes(ctx context.Context, file string, root *fileRoot) error {
	logger := ctxlog.FromContext(ctx)

	for _, tb := range root.Types {
		if _, dup := m.types[tb.ID]; dup {
			return blockErrorf(file, "artifact_type", tb.ID, "duplicate artifact type")
		}
		props, err := toProperties(tb.Properties)
		if err != nil {
			return &BlockError{File: file, Block: "artifact_type", Name: tb.ID, Err: err}
		}
		ext := deref(tb.Extension)
		if ext == "" {
			ext = tb.ID
		}
		m.types[tb.ID] = &artifact.Type{
			ID:         tb.ID,
			Extension:  ext,
			Classifier: deref(tb.Classifier),
			Properties: props,
		}
		logger.Debug("Registered artifact type.", "type", tb.ID)
	}
	return nil
}

// addDeclarations merges the project and dependency blocks of one decoded
// file.
func (m *Manifest) addDeclarations(ctx context.Context, file string, root *fileRoot) error {
	logger := ctxlog.FromContext(ctx)

	for _, pb := range root.Projects {
		if m.projectFile != "" {
			return blockErrorf(file, "project", pb.Name, "duplicate project block, %q already declared in %s", m.Project, m.projectFile)
		}
		m.Project, m.projectFile = pb.Name, file
		m.Roots = append([]string(nil), pb.Dependencies...)
	}

	for _, db := range root.Dependencies {
		if prev, dup := m.decls[db.ID]; dup {
			return blockErrorf(file, "dependency", db.ID, "duplicate dependency, already declared in %s", prev.File)
		}
		decl, err := m.declare(file, db)
		if err != nil {
			return err
		}
		m.decls[db.ID] = decl
		m.order = append(m.order, db.ID)
		logger.Debug("Declared dependency.", "id", db.ID, "artifact", decl.Artifact.String())
	}
	return nil
}

func (m *Manifest) declare(file string, b *dependencyBlock) (*Declaration, error) {
	fail := func(err error) error {
		return &BlockError{File: file, Block: "dependency", Name: b.ID, Err: err}
	}

	props, err := toProperties(b.Properties)
	if err != nil {
		return nil, fail(err)
	}

	var a artifact.Artifact
	if b.Coords != nil {
		if set := b.explicitFields(); len(set) > 0 {
			return nil, blockErrorf(file, "dependency", b.ID, "coords cannot be combined with %v", set)
		}
		parsed, err := artifact.Parse(*b.Coords, props)
		if err != nil {
			return nil, fail(err)
		}
		a = parsed
	} else {
		group, id, version := deref(b.Group), deref(b.Artifact), deref(b.Version)
		if group == "" || id == "" || version == "" {
			return nil, blockErrorf(file, "dependency", b.ID, "either coords or group, artifact and version are required")
		}
		typeID := deref(b.Type)
		if typeID == "" {
			typeID = "jar"
		}
		opts := []artifact.Option{artifact.WithType(m.Type(typeID)), artifact.WithProperties(props)}
		if b.Classifier != nil {
			opts = append(opts, artifact.WithClassifier(*b.Classifier))
		}
		if b.Extension != nil {
			opts = append(opts, artifact.WithExtension(*b.Extension))
		}
		a = artifact.New(group, id, version, opts...)
	}
	if b.Storage != nil {
		a = a.SetStorage(*b.Storage)
	}

	return &Declaration{
		ID:        b.ID,
		File:      file,
		Artifact:  a,
		Scope:     deref(b.Scope),
		Optional:  deref(b.Optional),
		DependsOn: append([]string(nil), b.DependsOn...),
	}, nil
}

// validate checks the cross-file references once every file is merged.
func (m *Manifest) validate() error {
	if m.projectFile == "" {
		return fmt.Errorf("%w: no project block found", ErrInvalidManifest)
	}
	for _, id := range m.Roots {
		if _, ok := m.decls[id]; !ok {
			return blockErrorf(m.projectFile, "project", m.Project, "unknown dependency %q", id)
		}
	}
	for _, id := range m.order {
		d := m.decls[id]
		for _, ref := range d.DependsOn {
			if _, ok := m.decls[ref]; !ok {
				return blockErrorf(d.File, "dependency", id, "depends_on references unknown dependency %q", ref)
			}
		}
	}
	return nil
}

// Build creates the dependency graph. The returned root has no dependency of
// its own; its children are the project's dependencies. Each declaration maps
// to exactly one node, shared by every reference to it.
func (m *Manifest) Build(ctx context.Context) (*graph.Node, error) {
	logger := ctxlog.FromContext(ctx)

	nodes := make(map[string]*graph.Node, len(m.order))
	for _, id := range m.order {
		d := m.decls[id]
		dep, err := graph.NewDependency(d.Artifact, d.Scope)
		if err != nil {
			return nil, &BlockError{File: d.File, Block: "dependency", Name: id, Err: err}
		}
		nodes[id] = graph.NewNode(dep.SetOptional(d.Optional))
	}

	edges := 0
	for _, id := range m.order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d := m.decls[id]
		for _, ref := range d.DependsOn {
			child, ok := nodes[ref]
			if !ok {
				return nil, blockErrorf(d.File, "dependency", id, "depends_on references unknown dependency %q", ref)
			}
			nodes[id].AddChild(child)
			edges++
		}
	}

	root := graph.NewNode(nil)
	for _, id := range m.Roots {
		child, ok := nodes[id]
		if !ok {
			return nil, blockErrorf(m.projectFile, "project", m.Project, "unknown dependency %q", id)
		}
		root.AddChild(child)
	}

	logger.Debug("Dependency graph built.", "project", m.Project, "nodes", len(nodes), "edges", edges)
	return root, nil
}
