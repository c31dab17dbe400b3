// Package runtime bootstraps a namespace registry with the core primitives
// and exposes the entry points an evaluator uses to resolve and define vars.
package runtime

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mylesmegyesi/clojure.core/pkg/lang"
	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
)

// Option is a function that configures a new Runtime.
type Option func(*Runtime) error

// WithStderr redirects a runtime's diagnostic output to w instead of the
// default os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(r *Runtime) error {
		if w == nil {
			return fmt.Errorf("nil stderr")
		}
		r.Stderr = w
		return nil
	}
}

// WithLogger makes the runtime write trace output to logger.  WithLogger
// takes precedence over WithStderr for trace output.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runtime) error {
		if logger == nil {
			return fmt.Errorf("nil logger")
		}
		r.logger = logger
		return nil
	}
}

// WithTrace makes the runtime log every definition and namespace change.
func WithTrace(trace bool) Option {
	return func(r *Runtime) error {
		r.trace = trace
		return nil
	}
}

// WithRegistry makes the runtime bootstrap into reg instead of a new
// registry.  Bootstrapping an already populated registry replaces the core
// primitive vars and makes the user namespace current again.
func WithRegistry(reg *lang.Registry) Option {
	return func(r *Runtime) error {
		if reg == nil {
			return fmt.Errorf("nil registry")
		}
		r.Registry = reg
		return nil
	}
}

// WithSymbolTable makes the runtime intern symbols in table instead of
// symbol.DefaultGlobalTable.
func WithSymbolTable(table symbol.Table) Option {
	return func(r *Runtime) error {
		if table == nil {
			return fmt.Errorf("nil symbol table")
		}
		r.Symbols = table
		return nil
	}
}

// WithUserNamespace changes the namespace that is current after bootstrap.
func WithUserNamespace(name string) Option {
	return func(r *Runtime) error {
		sym := symbol.Parse(name)
		if name == "" || sym.IsQualified() {
			return fmt.Errorf("invalid user namespace name: %q", name)
		}
		r.userNS = sym
		return nil
	}
}

// Runtime owns a namespace registry populated with the core primitives.
type Runtime struct {
	Registry *lang.Registry
	Symbols  symbol.Table
	Stderr   io.Writer

	logger *log.Logger
	trace  bool
	userNS symbol.Symbol
}

// New initializes and bootstraps a new Runtime with the provided
// configuration options.  If any error is encountered it will be returned
// with a nil runtime.
func New(options ...Option) (*Runtime, error) {
	r := &Runtime{
		Registry: lang.NewRegistry(),
		Symbols:  symbol.DefaultGlobalTable,
		Stderr:   os.Stderr,
		userNS:   symbol.New(UserNamespace),
	}
	for _, fn := range options {
		err := fn(r)
		if err != nil {
			return nil, err
		}
	}
	if r.logger == nil {
		r.logger = log.New(r.Stderr, "boot: ", 0)
	}
	err := r.bootstrap()
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return r, nil
}

// Symbol interns text and returns its Symbol.
func (r *Runtime) Symbol(text string) symbol.Symbol {
	return r.Symbols.Intern(text)
}

// lookup returns the symbol for text without adding it to the symbol table.
func (r *Runtime) lookup(text string) symbol.Symbol {
	if sym, ok := r.Symbols.Peek(text); ok {
		return sym
	}
	return symbol.Parse(text)
}

// CurrentNamespace returns the registry's current namespace.
func (r *Runtime) CurrentNamespace() (*lang.Namespace, error) {
	return r.Registry.CurrentNamespace()
}

// Resolve returns the value of the var text resolves to from within the
// current namespace.
func (r *Runtime) Resolve(text string) (lang.Value, error) {
	return r.Registry.ResolveSymbol(r.lookup(text))
}

// ResolveVar returns the var text resolves to from within the current
// namespace.
func (r *Runtime) ResolveVar(text string) (*lang.Var, error) {
	return r.Registry.ResolveVar(r.lookup(text))
}

// Call resolves text to a var and invokes the var's root with args.
func (r *Runtime) Call(text string, args ...lang.Value) (lang.Value, error) {
	v, err := r.ResolveVar(text)
	if err != nil {
		return nil, err
	}
	return v.Invoke(args...)
}

// Def interns sym in the current namespace and returns its var.  The var is
// bound to root if it is given and left unbound otherwise.  A var already
// owned by the current namespace is reused so that namespaces referring to
// it see the new root.
func (r *Runtime) Def(sym symbol.Symbol, root ...lang.Value) (*lang.Var, error) {
	if len(root) > 1 {
		return nil, &lang.ArityError{Name: "def", Got: len(root) + 1, Min: 1, Max: 2}
	}
	ns, err := r.CurrentNamespace()
	if err != nil {
		return nil, err
	}
	v, err := ns.Intern(sym)
	if err != nil {
		return nil, err
	}
	if len(root) > 0 {
		v.BindRoot(root[0])
	} else {
		v.Unbind()
	}
	r.tracef("def %v", v)
	return v, nil
}

// InNamespace finds or creates the namespace named sym and makes it current.
func (r *Runtime) InNamespace(sym symbol.Symbol) (*lang.Namespace, error) {
	ns, err := r.Registry.FindOrCreateNamespace(sym)
	if err != nil {
		return nil, err
	}
	r.Registry.SetCurrentNamespace(ns)
	r.tracef("in namespace %v", ns)
	return ns, nil
}

// Refer maps every var in the namespace named sym into the current
// namespace under the same names.  The source namespace is not modified.
func (r *Runtime) Refer(sym symbol.Symbol) error {
	cur, err := r.CurrentNamespace()
	if err != nil {
		return err
	}
	src, ok := r.Registry.FindNamespace(sym)
	if !ok {
		return &lang.NamespaceNotFoundError{Name: sym}
	}
	for name, v := range src.Mappings() {
		err := cur.Refer(name, v)
		if err != nil {
			return fmt.Errorf("refer %v: %w", name, err)
		}
	}
	r.tracef("refer %v into %v", src, cur)
	return nil
}

func (r *Runtime) tracef(format string, v ...interface{}) {
	if r.trace {
		r.logger.Printf(format, v...)
	}
}
