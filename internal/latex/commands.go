// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

// defaultProtected lists the command names that a single backslash may
// introduce without being read as a row break.
var defaultProtected = []string{
	"times", "neq", "text", "end", "begin", "frac", "quad", "sqrt",
	"alpha", "beta", "gamma", "omega", "sigma", "pi", "theta", "infty",
	"dots", "vdots", "forall", "exists", "in", "cdot", "implies", "approx",
	"le", "ge", "mathbf", "overline", "left", "right", "vmatrix", "bmatrix",
}

// CommandSet is an allow-list of LaTeX command names.
type CommandSet struct {
	names  map[string]struct{}
	maxLen int
}

// DefaultCommands returns the built-in protected command set.
func DefaultCommands() *CommandSet {
	return NewCommandSet(defaultProtected...)
}

// NewCommandSet builds a set from names. Empty names are ignored.
func NewCommandSet(names ...string) *CommandSet {
	s := &CommandSet{names: make(map[string]struct{}, len(names))}
	s.Add(names...)
	return s
}

// Add inserts names into the set.
func (s *CommandSet) Add(names ...string) {
	for _, n := range names {
		if n == "" {
			continue
		}
		s.names[n] = struct{}{}
		if len(n) > s.maxLen {
			s.maxLen = len(n)
		}
	}
}

// Has reports whether name is in the set.
func (s *CommandSet) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of names in the set.
func (s *CommandSet) Len() int {
	return len(s.names)
}

// Protects reports whether word starts with a name in the set. Matching is
// by prefix, so "int" and "leq" are covered by "in" and "le".
func (s *CommandSet) Protects(word string) bool {
	n := min(len(word), s.maxLen)
	for i := 1; i <= n; i++ {
		if s.Has(word[:i]) {
			return true
		}
	}
	return false
}
