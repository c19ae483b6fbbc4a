package domain

import "sort"

// Surface is the tree of named operations exposed to one chain instance.
//
// Leaves are handlers; interior nodes are nested namespaces. The surface is
// mutable for its whole lifetime: handlers routinely attach follow-up
// operations while they execute (the engine is single-threaded, so reads and
// writes in the same synchronous turn are well defined).
type Surface struct {
	ops      map[string]Handler
	children map[string]*Surface
}

// NewSurface returns an empty surface.
func NewSurface() *Surface {
	return &Surface{
		ops:      make(map[string]Handler),
		children: make(map[string]*Surface),
	}
}

// Handle registers a handler at the given name. Dotted names create the
// intermediate namespaces as needed. Registering over an existing name
// replaces it; registering over a namespace shadows nothing (leaves and
// namespaces live in separate maps, leaves win at resolve time).
func (s *Surface) Handle(name string, h Handler) {
	path := SplitPath(name)
	node := s
	for _, seg := range path[:len(path)-1] {
		node = node.Namespace(seg)
	}
	node.ops[path[len(path)-1]] = h
}

// Namespace returns the child surface with the given name, creating it if it
// does not exist yet.
func (s *Surface) Namespace(name string) *Surface {
	child, ok := s.children[name]
	if !ok {
		child = NewSurface()
		s.children[name] = child
	}
	return child
}

// Resolve walks the path and returns the handler at its leaf.
// It reads the live tree, so operations registered after the action was
// recorded are visible.
func (s *Surface) Resolve(path []string) (Handler, bool) {
	if len(path) == 0 {
		return nil, false
	}
	node := s
	for _, seg := range path[:len(path)-1] {
		next, ok := node.children[seg]
		if !ok {
			return nil, false
		}
		node = next
	}
	h, ok := node.ops[path[len(path)-1]]
	if ok && h != nil {
		return h, true
	}
	return nil, false
}

// Ops returns the dotted names of every registered operation, sorted.
// Intended for introspection and CLI listings, not for dispatch.
func (s *Surface) Ops() []string {
	var names []string
	s.collect("", &names)
	sort.Strings(names)
	return names
}

func (s *Surface) collect(prefix string, out *[]string) {
	for name := range s.ops {
		*out = append(*out, prefix+name)
	}
	for name, child := range s.children {
		child.collect(prefix+name+PathSeparator, out)
	}
}
