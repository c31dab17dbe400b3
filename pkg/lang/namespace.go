package lang

import (
	"sync"

	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
)

// NamespaceFinder looks up namespaces by name.  A *Registry is a
// NamespaceFinder.
type NamespaceFinder interface {
	FindNamespace(name symbol.Symbol) (*Namespace, bool)
}

// Namespace is a named table of vars.  A namespace maps unqualified names to
// vars it owns and to vars referred from other namespaces.
type Namespace struct {
	name symbol.Symbol

	mu       sync.RWMutex
	mappings Bindings
}

// NewNamespace returns an empty namespace.  NewNamespace does not register
// the namespace; use Registry.FindOrCreateNamespace for that.
func NewNamespace(name symbol.Symbol) *Namespace {
	return &Namespace{
		name:     name,
		mappings: NewBindings(0),
	}
}

// Name returns the name of ns.
func (ns *Namespace) Name() symbol.Symbol {
	return ns.name
}

// Len returns the number of names mapped in ns.
func (ns *Namespace) Len() int {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.mappings.Len()
}

// Intern returns the var named sym owned by ns, creating an unbound var and
// mapping it if ns does not own one.  A var referred from another namespace
// under the same name is replaced by the new var.
func (ns *Namespace) Intern(sym symbol.Symbol) (*Var, error) {
	if sym.IsQualified() {
		return nil, &QualifiedSymbolError{Symbol: sym}
	}
	ns.mu.Lock()
	defer ns.mu.Unlock()
	v, ok := ns.mappings.Get(sym.Name)
	if ok && v.Namespace() == ns {
		return v, nil
	}
	v = NewVar(ns, sym)
	ns.mappings.Put(sym.Name, v)
	return v, nil
}

// Refer maps sym to v in ns.  The var is shared with its owner, not copied.
func (ns *Namespace) Refer(sym symbol.Symbol, v *Var) error {
	if sym.IsQualified() {
		return &QualifiedSymbolError{Symbol: sym}
	}
	if v == nil {
		return ErrNilVar
	}
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.mappings.Put(sym.Name, v)
	return nil
}

// Reference maps sym to val in ns and returns val.  A *Var is mapped as a
// shared reference.  Any other value is bound to a new var owned by ns.
// Reference fails without changing ns if sym is qualified or val is a nil
// *Var.
func (ns *Namespace) Reference(sym symbol.Symbol, val Value) (Value, error) {
	v, ok := val.(*Var)
	if !ok {
		v = NewBoundVar(ns, sym, val)
	}
	err := ns.Refer(sym, v)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// FindInternedVar returns the var mapped to the name of sym in ns.  The
// namespace part of sym is ignored.
func (ns *Namespace) FindInternedVar(sym symbol.Symbol) (*Var, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.mappings.Get(sym.Name)
}

// Resolve parses text as a symbol and returns the value of the var it
// resolves to.  See ResolveVar.
func (ns *Namespace) Resolve(text string, finder NamespaceFinder) (Value, error) {
	return ns.ResolveSymbol(symbol.Parse(text), finder)
}

// ResolveSymbol returns the value of the var sym resolves to.  See
// ResolveVar.
func (ns *Namespace) ResolveSymbol(sym symbol.Symbol, finder NamespaceFinder) (Value, error) {
	v, err := ns.ResolveVar(sym, finder)
	if err != nil {
		return nil, err
	}
	return v.Value(), nil
}

// ResolveVar finds the var sym refers to from within ns.  The name of sym is
// looked up in ns first.  If it is not mapped and sym is qualified, the
// namespace part names a namespace found through finder and the name is
// looked up there.  The namespace part is used as a namespace name as-is.
// ResolveVar returns a *ResolveError when neither lookup succeeds.
func (ns *Namespace) ResolveVar(sym symbol.Symbol, finder NamespaceFinder) (*Var, error) {
	if v, ok := ns.FindInternedVar(sym); ok {
		return v, nil
	}
	if sym.IsQualified() && finder != nil {
		other, ok := finder.FindNamespace(symbol.New(sym.NS))
		if ok {
			if v, ok := other.FindInternedVar(sym); ok {
				return v, nil
			}
		}
	}
	return nil, &ResolveError{Text: sym.String()}
}

// Mappings returns a snapshot of every binding in ns keyed by unqualified
// symbols.
func (ns *Namespace) Mappings() map[symbol.Symbol]*Var {
	return ns.snapshot(false)
}

// Interns returns a snapshot of the bindings in ns to vars that ns owns.
func (ns *Namespace) Interns() map[symbol.Symbol]*Var {
	return ns.snapshot(true)
}

func (ns *Namespace) snapshot(owned bool) map[symbol.Symbol]*Var {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	m := make(map[symbol.Symbol]*Var, ns.mappings.Len())
	for _, name := range ns.mappings.Names() {
		v, _ := ns.mappings.Get(name)
		if owned && v.Namespace() != ns {
			continue
		}
		m[symbol.New(name)] = v
	}
	return m
}

// Symbols returns the mapped names of ns in the order they were first
// mapped.
func (ns *Namespace) Symbols() []symbol.Symbol {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	names := ns.mappings.Names()
	syms := make([]symbol.Symbol, len(names))
	for i := range names {
		syms[i] = symbol.New(names[i])
	}
	return syms
}

func (ns *Namespace) String() string {
	return ns.name.String()
}
