package lang

import (
	"errors"
	"fmt"

	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
)

// ErrNoCurrentNamespace is returned when the current namespace is read before
// one has been set.
var ErrNoCurrentNamespace = errors.New("no current namespace")

// ErrNilVar is returned when a nil *Var is mapped into a namespace.
var ErrNilVar = errors.New("nil var")

// QualifiedSymbolError is returned when a namespace-qualified symbol is
// interned into a namespace.
type QualifiedSymbolError struct {
	Symbol symbol.Symbol
}

func (err *QualifiedSymbolError) Error() string {
	return fmt.Sprintf("can't intern namespace-qualified symbol: %v", err.Symbol)
}

// ResolveError is returned when no binding exists for a symbol's text.
type ResolveError struct {
	Text string
}

func (err *ResolveError) Error() string {
	return fmt.Sprintf("could not resolve var: %s", err.Text)
}

// UnboundError is returned when a var without a root value is invoked.
type UnboundError struct {
	Var *Var
}

func (err *UnboundError) Error() string {
	return fmt.Sprintf("attempting to call unbound fn: %v", err.Var)
}

// NotCallableError is returned when a value that is not an Invoker is
// invoked.  Var is set when the value was the root of a var.
type NotCallableError struct {
	Value Value
	Var   *Var
}

func (err *NotCallableError) Error() string {
	if err.Var != nil {
		return fmt.Sprintf("%v is not callable: %s", err.Var, Format(err.Value))
	}
	return fmt.Sprintf("value is not callable: %s", Format(err.Value))
}

// ArityError is returned when a function is passed an unacceptable number of
// arguments.  Max is negative if the function takes a variable number of
// arguments.
type ArityError struct {
	Name string
	Got  int
	Min  int
	Max  int
}

func (err *ArityError) Error() string {
	return fmt.Sprintf("wrong number of args (%d) passed to: %s", err.Got, err.Name)
}

// ArgumentError is returned when an argument has an unexpected type.
type ArgumentError struct {
	Name     string
	Index    int
	Expected string
	Got      Value
}

func (err *ArgumentError) Error() string {
	return fmt.Sprintf("%s: argument %d is not a %s: %s", err.Name, err.Index+1, err.Expected, Format(err.Got))
}

// NamespaceNotFoundError is returned when a namespace that must exist is not
// in the registry.
type NamespaceNotFoundError struct {
	Name symbol.Symbol
}

func (err *NamespaceNotFoundError) Error() string {
	return fmt.Sprintf("no namespace: %v", err.Name)
}
