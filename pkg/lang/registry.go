package lang

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
)

// Registry contains a set of namespaces and a cursor to the current
// namespace.  Registry is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	namespaces map[symbol.Symbol]*Namespace
	current    atomic.Pointer[Namespace]
}

var _ NamespaceFinder = (*Registry)(nil)

// NewRegistry initializes and returns an empty Registry with no current
// namespace.
func NewRegistry() *Registry {
	return &Registry{
		namespaces: make(map[symbol.Symbol]*Namespace),
	}
}

// FindOrCreateNamespace returns the namespace registered under name,
// registering a new empty namespace if there is none.  Namespace names must
// be unqualified.
func (r *Registry) FindOrCreateNamespace(name symbol.Symbol) (*Namespace, error) {
	if name.IsQualified() {
		return nil, &QualifiedSymbolError{Symbol: name}
	}
	if ns, ok := r.FindNamespace(name); ok {
		return ns, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ns, ok := r.namespaces[name]
	if ok {
		return ns, nil
	}
	ns = NewNamespace(name)
	r.namespaces[name] = ns
	return ns, nil
}

// FindNamespace returns the namespace registered under name.
func (r *Registry) FindNamespace(name symbol.Symbol) (*Namespace, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ns, ok := r.namespaces[name]
	return ns, ok
}

// Len returns the number of registered namespaces.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.namespaces)
}

// Namespaces returns every registered namespace sorted by name.
func (r *Registry) Namespaces() []*Namespace {
	r.mu.RLock()
	nss := make([]*Namespace, 0, len(r.namespaces))
	for _, ns := range r.namespaces {
		nss = append(nss, ns)
	}
	r.mu.RUnlock()
	sort.Slice(nss, func(i, j int) bool {
		return nss[i].Name().String() < nss[j].Name().String()
	})
	return nss
}

// CurrentNamespace returns the current namespace.  CurrentNamespace returns
// ErrNoCurrentNamespace if SetCurrentNamespace has never been called.
func (r *Registry) CurrentNamespace() (*Namespace, error) {
	ns := r.current.Load()
	if ns == nil {
		return nil, ErrNoCurrentNamespace
	}
	return ns, nil
}

// SetCurrentNamespace makes ns the current namespace, replacing the previous
// one.
func (r *Registry) SetCurrentNamespace(ns *Namespace) {
	r.current.Store(ns)
}

// Resolve resolves text from within the current namespace.  See
// Namespace.ResolveVar.
func (r *Registry) Resolve(text string) (Value, error) {
	return r.ResolveSymbol(symbol.Parse(text))
}

// ResolveSymbol resolves sym from within the current namespace.
func (r *Registry) ResolveSymbol(sym symbol.Symbol) (Value, error) {
	ns, err := r.CurrentNamespace()
	if err != nil {
		return nil, err
	}
	return ns.ResolveSymbol(sym, r)
}

// ResolveVar returns the var sym resolves to from within the current
// namespace.
func (r *Registry) ResolveVar(sym symbol.Symbol) (*Var, error) {
	ns, err := r.CurrentNamespace()
	if err != nil {
		return nil, err
	}
	return ns.ResolveVar(sym, r)
}
