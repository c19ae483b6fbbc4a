package domain

import "strings"

// PathSeparator joins segments of a dotted operation name ("fs.open").
const PathSeparator = "."

// Action is one recorded, not-yet-executed invocation: the path of the
// operation on the surface plus the arguments captured at call time.
// Actions are created by the interceptor and consumed by the driver; in
// recording mode they are retained after execution so replay can revisit them.
type Action struct {
	Path []string
	Args []any
}

// Name returns the dotted form of the action's path.
func (a *Action) Name() string {
	return strings.Join(a.Path, PathSeparator)
}

// SplitPath breaks a dotted operation name into its segments.
// An empty name yields a single empty segment; callers validate at resolve time.
func SplitPath(name string) []string {
	return strings.Split(name, PathSeparator)
}

// EqualPath reports whether two paths identify the same operation.
func EqualPath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
