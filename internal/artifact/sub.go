package artifact

import "strings"

// Wildcard stands for the main artifact's value inside a Sub pattern.
const Wildcard = "*"

// Sub is an artifact derived from a main artifact, typically an attachment
// such as sources (classifier "*-sources") or a signature (extension "*.asc").
//
// Group, artifact id and version always come from the main artifact;
// classifier and extension are expanded from the patterns on every read.
type Sub struct {
	main              Artifact
	classifierPattern string
	extensionPattern  string
	storage           string
	properties        map[string]string
}

// SubOption configures NewSub.
type SubOption func(*Sub)

// WithSubStorage sets the resolved storage location of the derived artifact.
func WithSubStorage(storage string) SubOption {
	return func(s *Sub) { s.storage = storage }
}

// WithSubProperties sets the derived artifact's own properties.
func WithSubProperties(props map[string]string) SubOption {
	return func(s *Sub) { s.properties = copyProperties(props) }
}

// NewSub derives an artifact from main. An empty pattern yields an empty
// value; Wildcard in a pattern is replaced with the main artifact's value.
func NewSub(main Artifact, classifierPattern, extensionPattern string, opts ...SubOption) (*Sub, error) {
	if main == nil {
		return nil, ErrNilMain
	}
	s := &Sub{
		main:              main,
		classifierPattern: classifierPattern,
		extensionPattern:  extensionPattern,
		properties:        map[string]string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Main returns the artifact this one is derived from.
func (s *Sub) Main() Artifact { return s.main }

func (s *Sub) GroupID() string     { return s.main.GroupID() }
func (s *Sub) ArtifactID() string  { return s.main.ArtifactID() }
func (s *Sub) Version() string     { return s.main.Version() }
func (s *Sub) BaseVersion() string { return s.main.BaseVersion() }
func (s *Sub) IsSnapshot() bool    { return s.main.IsSnapshot() }
func (s *Sub) Classifier() string  { return Expand(s.classifierPattern, s.main.Classifier()) }
func (s *Sub) Extension() string   { return Expand(s.extensionPattern, s.main.Extension()) }
func (s *Sub) Storage() string     { return s.storage }

func (s *Sub) Properties() map[string]string { return copyProperties(s.properties) }

func (s *Sub) Property(key, defaultValue string) string {
	return lookupProperty(s.properties, key, defaultValue)
}

// SetVersion detaches the artifact from its main artifact: the result is a
// Default carrying the currently expanded coordinates and the new version.
func (s *Sub) SetVersion(version string) Artifact {
	if s.Version() == version {
		return s
	}
	return &Default{
		groupID:    s.GroupID(),
		artifactID: s.ArtifactID(),
		classifier: s.Classifier(),
		extension:  s.Extension(),
		version:    version,
		storage:    s.storage,
		properties: s.properties,
	}
}

func (s *Sub) SetStorage(storage string) Artifact {
	if s.storage == storage {
		return s
	}
	next := *s
	next.storage = storage
	return &next
}

func (s *Sub) SetProperties(props map[string]string) Artifact {
	if sameProperties(s.properties, props) {
		return s
	}
	next := *s
	next.properties = copyProperties(props)
	return &next
}

func (s *Sub) String() string {
	return format(s.GroupID(), s.ArtifactID(), s.Extension(), s.Classifier(), s.Version())
}

// Expand substitutes replacement for every Wildcard in pattern. When the
// replacement is empty, separators ('-' and '.') left dangling next to a
// leading or trailing wildcard are trimmed, so "*-sources" over an empty
// classifier yields "sources".
func Expand(pattern, replacement string) string {
	if pattern == "" {
		return ""
	}
	result := strings.ReplaceAll(pattern, Wildcard, replacement)
	if replacement != "" {
		return result
	}
	if strings.HasPrefix(pattern, Wildcard) {
		result = strings.TrimLeft(result, "-.")
	}
	if strings.HasSuffix(pattern, Wildcard) {
		result = strings.TrimRight(result, "-.")
	}
	return result
}
