// Package lang implements vars, namespaces and the namespace registry.  It is
// the binding and resolution substrate used by readers and evaluators; it
// does not evaluate forms itself.
package lang

import (
	"fmt"
	"strconv"

	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
)

// Value is any value that can be bound to a Var.
type Value interface{}

// Invoker is a value that can be called with arguments.
type Invoker interface {
	Invoke(args ...Value) (Value, error)
}

// Invoke calls fn with args.  Invoke returns a *NotCallableError if fn is
// not an Invoker.
func Invoke(fn Value, args ...Value) (Value, error) {
	f, ok := fn.(Invoker)
	if !ok {
		return nil, &NotCallableError{Value: fn}
	}
	return f.Invoke(args...)
}

// Formal list markers.  Names following OptArgSymbol may be omitted by a
// caller.  A single name following VarArgSymbol collects any remaining
// arguments.
const (
	OptArgSymbol = "&optional"
	VarArgSymbol = "&rest"
)

// Fn is a native function.
type Fn struct {
	Name    string
	Formals []string
	Func    func(args ...Value) (Value, error)
}

var _ Invoker = (*Fn)(nil)

// NewFn returns a native function named name.  The number of arguments
// accepted by the function is derived from formals.
func NewFn(name string, formals []string, fn func(args ...Value) (Value, error)) *Fn {
	return &Fn{
		Name:    name,
		Formals: formals,
		Func:    fn,
	}
}

// Arity returns the minimum and maximum number of arguments accepted by fn.
// The maximum is -1 when fn accepts any number of trailing arguments.
func (fn *Fn) Arity() (min, max int) {
	optional := false
	for _, name := range fn.Formals {
		switch name {
		case OptArgSymbol:
			optional = true
		case VarArgSymbol:
			return min, -1
		default:
			if !optional {
				min++
			}
			max++
		}
	}
	return min, max
}

// Invoke implements the Invoker interface.
func (fn *Fn) Invoke(args ...Value) (Value, error) {
	min, max := fn.Arity()
	if len(args) < min || (max >= 0 && len(args) > max) {
		return nil, &ArityError{Name: fn.Name, Got: len(args), Min: min, Max: max}
	}
	return fn.Func(args...)
}

func (fn *Fn) String() string {
	return "#fn[" + fn.Name + "]"
}

// Format returns a readable representation of v.
func Format(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case symbol.Symbol:
		return v.String()
	case symbol.Keyword:
		return v.String()
	case *Namespace:
		return "#namespace[" + v.Name().String() + "]"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
