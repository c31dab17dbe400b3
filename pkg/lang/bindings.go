package lang

// Bindings is a table mapping local names to vars.
type Bindings interface {
	// Len returns the number of names bound.
	Len() int
	// Get returns the var bound to name.
	Get(name string) (*Var, bool)
	// Put creates or updates the binding for name.
	Put(name string, v *Var)
	// Names returns the bound names in the order they were first bound.
	Names() []string
}

// NewBindings creates and initializes an empty set of bindings with initial
// capacity to hold n vars.
func NewBindings(n int) Bindings {
	return newBindings(n)
}

type bindingPair struct {
	name string
	v    *Var
}

type bindings struct {
	pairs []bindingPair
	index map[string]int
}

var _ Bindings = (*bindings)(nil)

func newBindings(n int) *bindings {
	return &bindings{
		pairs: make([]bindingPair, 0, n),
		index: make(map[string]int, n),
	}
}

// Len implements the Bindings interface.
func (s *bindings) Len() int {
	return len(s.pairs)
}

// Get implements the Bindings interface.
func (s *bindings) Get(name string) (*Var, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.pairs[i].v, true
}

// Put binds name to v.  If name was previously bound its entry is updated in
// place.  Otherwise Put appends a new binding.
func (s *bindings) Put(name string, v *Var) {
	i, ok := s.index[name]
	if ok {
		s.pairs[i].v = v
		return
	}
	s.index[name] = len(s.pairs)
	s.pairs = append(s.pairs, bindingPair{name, v})
}

// Names implements the Bindings interface.
func (s *bindings) Names() []string {
	names := make([]string, len(s.pairs))
	for i := range s.pairs {
		names[i] = s.pairs[i].name
	}
	return names
}
