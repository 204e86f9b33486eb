package artifact

import "regexp"

// coordinatePattern matches group:artifact[:extension[:classifier]]:version.
var coordinatePattern = regexp.MustCompile(`^([^: ]+):([^: ]+)(:([^: ]*)(:([^: ]+))?)?:([^: ]+)$`)

// Default is the plain artifact implementation.
type Default struct {
	groupID    string
	artifactID string
	classifier string
	extension  string
	version    string
	storage    string
	properties map[string]string
}

// Parse builds an artifact from a coordinate string in CoordinateFormat. The
// extension defaults to "jar" and the classifier to "" when not given.
func Parse(coords string, props map[string]string) (*Default, error) {
	m := coordinatePattern.FindStringSubmatch(coords)
	if m == nil {
		return nil, &CoordinateError{Coords: coords}
	}
	extension := m[4]
	if extension == "" {
		extension = "jar"
	}
	return &Default{
		groupID:    m[1],
		artifactID: m[2],
		extension:  extension,
		classifier: m[6],
		version:    m[7],
		properties: copyProperties(props),
	}, nil
}

// MustParse is like Parse but panics on malformed coordinates.
func MustParse(coords string) *Default {
	a, err := Parse(coords, nil)
	if err != nil {
		panic(err)
	}
	return a
}

// Option configures New.
type Option func(*options)

type options struct {
	classifier *string
	extension  *string
	typ        *Type
	properties map[string]string
	storage    string
}

// WithClassifier sets the classifier explicitly, overriding the type's.
func WithClassifier(classifier string) Option {
	return func(o *options) { o.classifier = &classifier }
}

// WithExtension sets the extension explicitly, overriding the type's.
func WithExtension(extension string) Option {
	return func(o *options) { o.extension = &extension }
}

// WithType supplies the classifier, extension and default properties that are
// not given explicitly.
func WithType(t *Type) Option {
	return func(o *options) { o.typ = t }
}

// WithProperties sets properties. They take precedence over the type's.
func WithProperties(props map[string]string) Option {
	return func(o *options) { o.properties = props }
}

// WithStorage sets the resolved storage location.
func WithStorage(storage string) Option {
	return func(o *options) { o.storage = storage }
}

// New builds an artifact from explicit coordinates.
func New(groupID, artifactID, version string, opts ...Option) *Default {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &Default{
		groupID:    groupID,
		artifactID: artifactID,
		version:    version,
		storage:    o.storage,
	}

	switch {
	case o.classifier != nil:
		a.classifier = *o.classifier
	case o.typ != nil:
		a.classifier = o.typ.Classifier
	}
	switch {
	case o.extension != nil:
		a.extension = *o.extension
	case o.typ != nil:
		a.extension = o.typ.Extension
	}

	var typeProps map[string]string
	if o.typ != nil {
		typeProps = o.typ.Properties
	}
	a.properties = mergeProperties(o.properties, typeProps)
	return a
}

func (a *Default) GroupID() string     { return a.groupID }
func (a *Default) ArtifactID() string  { return a.artifactID }
func (a *Default) Version() string     { return a.version }
func (a *Default) BaseVersion() string { return toBaseVersion(a.version) }
func (a *Default) IsSnapshot() bool    { return isSnapshot(a.version) }
func (a *Default) Classifier() string  { return a.classifier }
func (a *Default) Extension() string   { return a.extension }
func (a *Default) Storage() string     { return a.storage }

func (a *Default) Properties() map[string]string { return copyProperties(a.properties) }

func (a *Default) Property(key, defaultValue string) string {
	return lookupProperty(a.properties, key, defaultValue)
}

func (a *Default) SetVersion(version string) Artifact {
	if a.version == version {
		return a
	}
	next := *a
	next.version = version
	return &next
}

func (a *Default) SetStorage(storage string) Artifact {
	if a.storage == storage {
		return a
	}
	next := *a
	next.storage = storage
	return &next
}

func (a *Default) SetProperties(props map[string]string) Artifact {
	if sameProperties(a.properties, props) {
		return a
	}
	next := *a
	next.properties = copyProperties(props)
	return &next
}

func (a *Default) String() string {
	return format(a.groupID, a.artifactID, a.extension, a.classifier, a.version)
}
