// Package artifact models build-dependency coordinates as immutable values.
//
// An artifact is identified by its group, artifact id, classifier, extension
// and version, plus the location its content was resolved to. Free-form
// properties travel with an artifact but never take part in its identity.
//
// # Implementations
//
// Three implementations share the Artifact contract:
//   - **Default**: built from explicit fields or parsed from a coordinate
//     string such as `org.example:lib:jar:sources:1.0`.
//   - **Sub**: derived from a main artifact with wildcard patterns, e.g. the
//     classifier `*-sources` or the extension `*.asc`.
//   - **Delegating**: wraps another artifact and carries extra data while
//     keeping the wrapped artifact's identity.
//
// # Immutable Updates
//
// SetVersion, SetStorage and SetProperties never modify the receiver. When
// the new value equals the current one they return the receiver itself, so
// callers may compare the result with the receiver (`next == a`) to learn
// whether anything changed. Implementations must therefore be pointer types.
//
// # Equality
//
// Go has no equals/hashCode protocol, so identity is exposed through Equal and
// KeyOf. KeyOf returns a comparable Key suitable for map keys; two artifacts
// are equal exactly when their keys are equal, regardless of implementation.
package artifact
