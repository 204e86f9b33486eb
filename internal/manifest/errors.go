package manifest

import (
	"errors"
	"fmt"
)

// ErrInvalidManifest is wrapped by every error caused by manifest content, as
// opposed to I/O failures.
var ErrInvalidManifest = errors.New("invalid dependency manifest")

// BlockError reports a problem with one block of a manifest.
type BlockError struct {
	File  string // file the block was declared in, if known
	Block string // block type, e.g. "dependency"
	Name  string // block label
	Err   error
}

func (e *BlockError) Error() string {
	where := fmt.Sprintf("%s %q", e.Block, e.Name)
	if e.File != "" {
		where = e.File + ": " + where
	}
	return fmt.Sprintf("%s: %v", where, e.Err)
}

// Unwrap exposes both ErrInvalidManifest and the underlying cause.
func (e *BlockError) Unwrap() []error {
	return []error{ErrInvalidManifest, e.Err}
}

func blockErrorf(file, block, name, format string, args ...any) error {
	return &BlockError{File: file, Block: block, Name: name, Err: fmt.Errorf(format, args...)}
}
