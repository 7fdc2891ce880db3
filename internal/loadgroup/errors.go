package loadgroup

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPathNotFound is returned when a path segment names no child
	ErrPathNotFound = errors.New("path not found")

	// ErrCyclicReference is returned when group references form a cycle
	ErrCyclicReference = errors.New("cyclic group reference")

	// ErrDuplicateLoadCase is returned when a load case sits in more than one
	// mutually exclusive branch
	ErrDuplicateLoadCase = errors.New("duplicate load case")
)

// PathError reports a path that could not be resolved against the hierarchy
type PathError struct {
	Path    []string
	Segment string // first segment that failed
	Reason  string // optional detail
	Err     error
}

func (e *PathError) Error() string {
	msg := fmt.Sprintf("%v: %q at segment %q", e.Err, strings.Join(e.Path, "."), e.Segment)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *PathError) Unwrap() error {
	return e.Err
}
