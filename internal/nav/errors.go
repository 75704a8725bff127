package nav

import (
	"errors"
	"fmt"
)

// ErrInvalidPath is matched by every *PathError via errors.Is.
var ErrInvalidPath = errors.New("invalid document path")

// PathError reports a document path that cannot be indexed.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidPath, e.Path, e.Reason)
}

func (e *PathError) Is(target error) bool {
	return target == ErrInvalidPath
}
