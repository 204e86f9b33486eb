package artifact

import (
	"regexp"
	"strings"
)

// Artifact is an immutable set of build-dependency coordinates.
//
// Accessors never return an absent value: missing strings are "" and missing
// properties are an empty map.
type Artifact interface {
	GroupID() string
	ArtifactID() string
	Version() string
	// BaseVersion is the version with any snapshot timestamp replaced by
	// "SNAPSHOT", e.g. "1.0-20240102.030405-6" becomes "1.0-SNAPSHOT".
	BaseVersion() string
	IsSnapshot() bool
	Classifier() string
	Extension() string
	// Storage is the location the artifact was resolved to, "" if unresolved.
	Storage() string
	// Properties returns a copy of the artifact's properties.
	Properties() map[string]string
	Property(key, defaultValue string) string

	SetVersion(version string) Artifact
	SetStorage(storage string) Artifact
	SetProperties(props map[string]string) Artifact

	String() string
}

// Key is the comparable identity of an artifact. Properties are deliberately
// absent.
type Key struct {
	GroupID    string
	ArtifactID string
	Classifier string
	Extension  string
	Version    string
	Storage    string
}

// String renders the key in coordinate form.
func (k Key) String() string {
	return format(k.GroupID, k.ArtifactID, k.Extension, k.Classifier, k.Version)
}

// KeyOf returns the identity key of a. It panics if a is nil.
func KeyOf(a Artifact) Key {
	return Key{
		GroupID:    a.GroupID(),
		ArtifactID: a.ArtifactID(),
		Classifier: a.Classifier(),
		Extension:  a.Extension(),
		Version:    a.Version(),
		Storage:    a.Storage(),
	}
}

// Equal reports whether a and b have the same identity. Two nil artifacts
// are equal; a nil and a non-nil artifact are not.
func Equal(a, b Artifact) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return KeyOf(a) == KeyOf(b)
}

// format renders group:artifact:extension[:classifier]:version.
func format(groupID, artifactID, extension, classifier, version string) string {
	var sb strings.Builder
	sb.Grow(len(groupID) + len(artifactID) + len(extension) + len(classifier) + len(version) + 4)
	sb.WriteString(groupID)
	sb.WriteByte(':')
	sb.WriteString(artifactID)
	sb.WriteByte(':')
	sb.WriteString(extension)
	if classifier != "" {
		sb.WriteByte(':')
		sb.WriteString(classifier)
	}
	sb.WriteByte(':')
	sb.WriteString(version)
	return sb.String()
}

const snapshot = "SNAPSHOT"

var snapshotTimestamp = regexp.MustCompile(`^(.*-)?([0-9]{8}\.[0-9]{6}-[0-9]+)$`)

func isSnapshot(version string) bool {
	return strings.HasSuffix(version, snapshot) || snapshotTimestamp.MatchString(version)
}

func toBaseVersion(version string) string {
	if strings.HasPrefix(version, "[") || strings.HasPrefix(version, "(") {
		// Version ranges are kept as is.
		return version
	}
	m := snapshotTimestamp.FindStringSubmatch(version)
	if m == nil {
		return version
	}
	return m[1] + snapshot
}
