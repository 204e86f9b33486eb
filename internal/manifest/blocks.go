package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot decodes all top-level blocks of a single manifest file.
type fileRoot struct {
	Types        []*typeBlock       `hcl:"artifact_type,block"`
	Projects     []*projectBlock    `hcl:"project,block"`
	Dependencies []*dependencyBlock `hcl:"dependency,block"`
	Remain       hcl.Body           `hcl:",remain"`
}

type typeBlock struct {
	ID         string    `hcl:"id,label"`
	Extension  *string   `hcl:"extension,optional"`
	Classifier *string   `hcl:"classifier,optional"`
	Properties cty.Value `hcl:"properties,optional"`
}

type projectBlock struct {
	Name         string   `hcl:"name,label"`
	Dependencies []string `hcl:"dependencies,optional"`
}

type dependencyBlock struct {
	ID         string    `hcl:"id,label"`
	Coords     *string   `hcl:"coords,optional"`
	Group      *string   `hcl:"group,optional"`
	Artifact   *string   `hcl:"artifact,optional"`
	Version    *string   `hcl:"version,optional"`
	Classifier *string   `hcl:"classifier,optional"`
	Extension  *string   `hcl:"extension,optional"`
	Type       *string   `hcl:"type,optional"`
	Scope      *string   `hcl:"scope,optional"`
	Optional   *bool     `hcl:"optional,optional"`
	Storage    *string   `hcl:"storage,optional"`
	Properties cty.Value `hcl:"properties,optional"`
	DependsOn  []string  `hcl:"depends_on,optional"`
}

// explicitFields lists the coordinate attributes that were set, for the
// conflict check against coords.
func (b *dependencyBlock) explicitFields() []string {
	var set []string
	for _, f := range []struct {
		name string
		val  *string
	}{
		{"group", b.Group},
		{"artifact", b.Artifact},
		{"version", b.Version},
		{"classifier", b.Classifier},
		{"extension", b.Extension},
		{"type", b.Type},
	} {
		if f.val != nil {
			set = append(set, f.name)
		}
	}
	return set
}

// toProperties converts an HCL object or map of strings into a Go map. A
// missing or null value yields nil.
func toProperties(v cty.Value) (map[string]string, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("properties must be known at load time")
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("properties must be an object or map of strings, got %s", ty.FriendlyName())
	}

	props := make(map[string]string, v.LengthInt())
	var convErr error
	v.ForEachElement(func(key, val cty.Value) bool {
		name := key.AsString()
		if val.IsNull() || val.Type() != cty.String {
			convErr = fmt.Errorf("property %q must be a string, got %s", name, val.Type().FriendlyName())
			return true
		}
		props[name] = val.AsString()
		return false
	})
	if convErr != nil {
		return nil, convErr
	}
	return props, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
