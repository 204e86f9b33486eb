package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/depgraph/internal/artifact"
	"github.com/specialistvlad/depgraph/internal/ctxlog"
	"github.com/specialistvlad/depgraph/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Extension is the file extension searched for in manifest directories.
const Extension = ".hcl"

// Loader reads HCL manifests.
type Loader struct {
	vars  map[string]cty.Value
	types *artifact.TypeRegistry
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithVariables exposes vars to manifest expressions as var.<name>.
func WithVariables(vars map[string]cty.Value) LoaderOption {
	return func(l *Loader) {
		l.vars = make(map[string]cty.Value, len(vars))
		for k, v := range vars {
			l.vars[k] = v
		}
	}
}

// WithTypes sets the registry used to resolve dependency types. It is only
// read; artifact_type blocks are kept per manifest.
func WithTypes(types *artifact.TypeRegistry) LoaderOption {
	return func(l *Loader) { l.types = types }
}

// NewLoader creates a loader with the standard artifact types and no
// variables.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.types == nil {
		l.types = artifact.NewTypeRegistry()
	}
	return l
}

func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(l.vars),
		},
	}
}

// Load reads every manifest file found under paths. A path may be a file or
// a directory searched recursively for .hcl files; missing paths are errors.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, Extension, false)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files found in %v", ErrInvalidManifest, Extension, paths)
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := l.evalContext()
	roots := make([]*fileRoot, len(files))

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrInvalidManifest, file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: failed to decode HCL file %s: %w", ErrInvalidManifest, file, diags)
		}

		roots[i] = &root
	}

	m := newManifest(l.types)
	for i, file := range files {
		if err := m.addTypes(ctxlog.With(ctx, "file", file), file, roots[i]); err != nil {
			return nil, err
		}
	}
	for i, file := range files {
		if err := m.addDeclarations(ctxlog.With(ctx, "file", file), file, roots[i]); err != nil {
			return nil, err
		}
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	logger.Debug("Manifest loading complete.",
		"project", m.Project,
		"dependencies", len(m.order),
		"types", len(m.types))
	return m, nil
}
