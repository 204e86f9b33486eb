package artifact

import (
	"errors"
	"fmt"
)

var (
	ErrBadCoordinates = errors.New("bad artifact coordinates")
	ErrNilMain        = errors.New("main artifact cannot be nil")
	ErrNilDelegate    = errors.New("delegate artifact cannot be nil")
)

// CoordinateFormat is the grammar accepted by Parse.
const CoordinateFormat = "<groupId>:<artifactId>[:<extension>[:<classifier>]]:<version>"

// CoordinateError reports a coordinate string that does not match
// CoordinateFormat.
type CoordinateError struct {
	Coords string
}

func (e *CoordinateError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q, expected format is %s", ErrBadCoordinates.Error(), e.Coords, CoordinateFormat)
}

func (e *CoordinateError) Unwrap() error { return ErrBadCoordinates }
