package lang

import (
	"sync"

	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
)

// Well-known metadata keys.
var (
	// MacroKey marks a var whose root an evaluator expands at compile time.
	MacroKey = symbol.NewKeyword(symbol.New("macro"))
	// DocKey holds a var's documentation string.
	DocKey = symbol.NewKeyword(symbol.New("doc"))
	// ArglistsKey holds a var's formal argument names.
	ArglistsKey = symbol.NewKeyword(symbol.New("arglists"))
)

// Var is a binding cell owned by a Namespace.  The owning namespace and name
// are fixed when the var is created.  The root value and metadata may change.
type Var struct {
	ns   *Namespace
	name symbol.Symbol

	mu    sync.RWMutex
	root  Value
	bound bool
	meta  map[symbol.Keyword]Value
}

var _ Invoker = (*Var)(nil)

// NewVar returns an unbound var named name owned by ns.  The name should be
// unqualified.  NewVar does not intern the var in ns.
func NewVar(ns *Namespace, name symbol.Symbol) *Var {
	return &Var{
		ns:   ns,
		name: name,
		meta: make(map[symbol.Keyword]Value),
	}
}

// NewBoundVar returns a var like NewVar with its root bound to root.
func NewBoundVar(ns *Namespace, name symbol.Symbol, root Value) *Var {
	v := NewVar(ns, name)
	v.root = root
	v.bound = true
	return v
}

// Namespace returns the namespace that owns v.
func (v *Var) Namespace() *Namespace {
	return v.ns
}

// Name returns the unqualified name of v.
func (v *Var) Name() symbol.Symbol {
	return v.name
}

// Symbol returns the name of v qualified by its namespace.
func (v *Var) Symbol() symbol.Symbol {
	if v.ns == nil {
		return v.name
	}
	return symbol.Qualified(v.ns.Name().Name, v.name.Name)
}

// Value returns the root of v.  If v has never been bound Value returns
// Unbound.
func (v *Var) Value() Value {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.bound {
		return Unbound{v}
	}
	return v.root
}

// IsBound returns true if v has a root value.
func (v *Var) IsBound() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.bound
}

// BindRoot sets the root value of v.
func (v *Var) BindRoot(root Value) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.root = root
	v.bound = true
}

// Unbind removes the root value of v.  Value returns Unbound afterwards.
func (v *Var) Unbind() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.root = nil
	v.bound = false
}

// Invoke calls the root of v with args.
func (v *Var) Invoke(args ...Value) (Value, error) {
	root := v.Value()
	f, ok := root.(Invoker)
	if !ok {
		return nil, &NotCallableError{Value: root, Var: v}
	}
	return f.Invoke(args...)
}

// SetMeta binds key to value in the metadata of v, replacing any previous
// value.
func (v *Var) SetMeta(key symbol.Keyword, value Value) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.meta[key] = value
}

// Meta returns the metadata value for key.
func (v *Var) Meta(key symbol.Keyword) (Value, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	val, ok := v.meta[key]
	return val, ok
}

// Metadata returns a copy of the metadata of v.
func (v *Var) Metadata() map[symbol.Keyword]Value {
	v.mu.RLock()
	defer v.mu.RUnlock()
	m := make(map[symbol.Keyword]Value, len(v.meta))
	for k, val := range v.meta {
		m[k] = val
	}
	return m
}

// IsMacro returns true if the metadata of v has a true value for MacroKey.
func (v *Var) IsMacro() bool {
	val, _ := v.Meta(MacroKey)
	b, _ := val.(bool)
	return b
}

// String returns the var's name in #'ns/name form.
func (v *Var) String() string {
	return "#'" + v.Symbol().String()
}

// Unbound is the root of a var that has never been bound.  Invoking it always
// fails.
type Unbound struct {
	v *Var
}

var _ Invoker = Unbound{}

// Var returns the var that Unbound belongs to.
func (u Unbound) Var() *Var {
	return u.v
}

// Invoke implements the Invoker interface and returns an *UnboundError.
func (u Unbound) Invoke(args ...Value) (Value, error) {
	return nil, &UnboundError{Var: u.v}
}

func (u Unbound) String() string {
	return "#unbound[" + u.v.String() + "]"
}

// IsUnbound returns true if v is the root of an unbound var.
func IsUnbound(v Value) bool {
	_, ok := v.(Unbound)
	return ok
}
