package artifact

// Delegating wraps an artifact and attaches extra data to it without
// changing its identity: every read is forwarded, and Equal/KeyOf treat a
// Delegating exactly like its delegate.
type Delegating[E any] struct {
	delegate Artifact
	extra    E
}

// NewDelegating wraps delegate together with extra.
func NewDelegating[E any](delegate Artifact, extra E) (*Delegating[E], error) {
	if delegate == nil {
		return nil, ErrNilDelegate
	}
	return &Delegating[E]{delegate: delegate, extra: extra}, nil
}

// Unwrap returns the wrapped artifact.
func (d *Delegating[E]) Unwrap() Artifact { return d.delegate }

// Extra returns the data carried alongside the delegate.
func (d *Delegating[E]) Extra() E { return d.extra }

// rewrap rebuilds the decorator around a new delegate, keeping the extra data.
func (d *Delegating[E]) rewrap(next Artifact) Artifact {
	if next == d.delegate {
		return d
	}
	return &Delegating[E]{delegate: next, extra: d.extra}
}

func (d *Delegating[E]) GroupID() string     { return d.delegate.GroupID() }
func (d *Delegating[E]) ArtifactID() string  { return d.delegate.ArtifactID() }
func (d *Delegating[E]) Version() string     { return d.delegate.Version() }
func (d *Delegating[E]) BaseVersion() string { return d.delegate.BaseVersion() }
func (d *Delegating[E]) IsSnapshot() bool    { return d.delegate.IsSnapshot() }
func (d *Delegating[E]) Classifier() string  { return d.delegate.Classifier() }
func (d *Delegating[E]) Extension() string   { return d.delegate.Extension() }
func (d *Delegating[E]) Storage() string     { return d.delegate.Storage() }

func (d *Delegating[E]) Properties() map[string]string { return d.delegate.Properties() }

func (d *Delegating[E]) Property(key, defaultValue string) string {
	return d.delegate.Property(key, defaultValue)
}

func (d *Delegating[E]) SetVersion(version string) Artifact {
	return d.rewrap(d.delegate.SetVersion(version))
}

func (d *Delegating[E]) SetStorage(storage string) Artifact {
	return d.rewrap(d.delegate.SetStorage(storage))
}

func (d *Delegating[E]) SetProperties(props map[string]string) Artifact {
	return d.rewrap(d.delegate.SetProperties(props))
}

func (d *Delegating[E]) String() string { return d.delegate.String() }
