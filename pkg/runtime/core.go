package runtime

import (
	"fmt"

	"github.com/mylesmegyesi/clojure.core/pkg/lang"
	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
)

// Names of the namespaces created during bootstrap.
const (
	CoreNamespace = "clojure.core"
	UserNamespace = "user"
)

// coreBuiltin describes a primitive interned in the core namespace.
type coreBuiltin struct {
	name    string
	formals []string
	doc     string
	macro   bool
	fn      func(r *Runtime, args ...lang.Value) (lang.Value, error)
}

// coreBuiltins are interned in order.  They are built directly rather than
// through def because def must exist before anything can be defined.
var coreBuiltins = []*coreBuiltin{
	{"def", []string{"sym", lang.OptArgSymbol, "val"},
		"Interns sym in the current namespace, binding its root to val if supplied.",
		true, builtinDef},
	{"symbol", []string{"name", lang.OptArgSymbol, "local"},
		"Returns a symbol parsed from name, or the symbol ns/local when two arguments are supplied.",
		false, builtinSymbol},
	{"ns", []string{"name"},
		"Finds or creates the namespace named name and makes it current.",
		false, builtinNS},
	{"refer", []string{"ns-name"},
		"Maps every var of the namespace named ns-name into the current namespace.",
		false, builtinRefer},
}

// bootstrap interns the core primitives in the core namespace, then creates
// the user namespace, makes it current and refers the core namespace into
// it.
func (r *Runtime) bootstrap() error {
	coreSym := r.Symbol(CoreNamespace)
	core, err := r.Registry.FindOrCreateNamespace(coreSym)
	if err != nil {
		return err
	}
	for _, b := range coreBuiltins {
		b := b
		fn := lang.NewFn(b.name, b.formals, func(args ...lang.Value) (lang.Value, error) {
			return b.fn(r, args...)
		})
		v := lang.NewBoundVar(core, r.Symbol(b.name), fn)
		v.SetMeta(lang.DocKey, b.doc)
		v.SetMeta(lang.ArglistsKey, b.arglist())
		if b.macro {
			v.SetMeta(lang.MacroKey, true)
		}
		_, err := core.Reference(v.Name(), v)
		if err != nil {
			return fmt.Errorf("%s: %w", b.name, err)
		}
	}
	_, err = r.InNamespace(r.userNS)
	if err != nil {
		return err
	}
	return r.Refer(coreSym)
}

func (b *coreBuiltin) arglist() []symbol.Symbol {
	syms := make([]symbol.Symbol, len(b.formals))
	for i := range b.formals {
		syms[i] = symbol.New(b.formals[i])
	}
	return syms
}

func symbolArg(name string, args []lang.Value, i int) (symbol.Symbol, error) {
	sym, ok := args[i].(symbol.Symbol)
	if !ok {
		return symbol.Symbol{}, &lang.ArgumentError{Name: name, Index: i, Expected: "symbol", Got: args[i]}
	}
	return sym, nil
}

func builtinDef(r *Runtime, args ...lang.Value) (lang.Value, error) {
	sym, err := symbolArg("def", args, 0)
	if err != nil {
		return nil, err
	}
	v, err := r.Def(sym, args[1:]...)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func builtinSymbol(r *Runtime, args ...lang.Value) (lang.Value, error) {
	if len(args) == 2 {
		ns, ok := args[0].(string)
		if !ok && args[0] != nil {
			return nil, &lang.ArgumentError{Name: "symbol", Index: 0, Expected: "string", Got: args[0]}
		}
		name, ok := args[1].(string)
		if !ok {
			return nil, &lang.ArgumentError{Name: "symbol", Index: 1, Expected: "string", Got: args[1]}
		}
		return symbol.Qualified(ns, name), nil
	}
	switch name := args[0].(type) {
	case symbol.Symbol:
		return name, nil
	case string:
		return r.Symbol(name), nil
	default:
		return nil, &lang.ArgumentError{Name: "symbol", Index: 0, Expected: "string", Got: args[0]}
	}
}

func builtinNS(r *Runtime, args ...lang.Value) (lang.Value, error) {
	sym, err := symbolArg("ns", args, 0)
	if err != nil {
		return nil, err
	}
	ns, err := r.InNamespace(sym)
	if err != nil {
		return nil, err
	}
	return ns, nil
}

func builtinRefer(r *Runtime, args ...lang.Value) (lang.Value, error) {
	sym, err := symbolArg("refer", args, 0)
	if err != nil {
		return nil, err
	}
	return nil, r.Refer(sym)
}
