package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotRecording is returned by the replay controls (Trap, Down, Jump) when
// the chain was built light or has not been promoted via Record.
var ErrNotRecording = errors.New("replay controls require recording mode: call Record first")

// ErrNilCallback is returned by Nest and Trap when no callback is supplied.
var ErrNilCallback = errors.New("callback must not be nil")

// UnresolvedOpError reports an action whose path did not resolve against the
// surface at execution time. This is a defect in the builder collaborator,
// so the driver stops the chain instead of skipping the action.
type UnresolvedOpError struct {
	Path []string
}

func (e *UnresolvedOpError) Error() string {
	return fmt.Sprintf("no operation registered at %q", strings.Join(e.Path, PathSeparator))
}
