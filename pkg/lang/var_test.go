package lang

import (
	"errors"
	"testing"

	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVar_Unbound(t *testing.T) {
	ns := NewNamespace(symbol.New("user"))
	v := NewVar(ns, symbol.New("x"))
	assert.False(t, v.IsBound())
	assert.Same(t, ns, v.Namespace())
	assert.Equal(t, symbol.New("x"), v.Name())
	assert.Equal(t, symbol.Qualified("user", "x"), v.Symbol())
	assert.Equal(t, "#'user/x", v.String())

	root := v.Value()
	assert.True(t, IsUnbound(root))
	assert.Same(t, v, root.(Unbound).Var())
	assert.Equal(t, "#unbound[#'user/x]", Format(root))

	_, err := v.Invoke()
	var unbound *UnboundError
	require.True(t, errors.As(err, &unbound))
	assert.Same(t, v, unbound.Var)
	assert.Equal(t, "attempting to call unbound fn: #'user/x", err.Error())

	_, err = Invoke(root, 1, 2)
	assert.True(t, errors.As(err, &unbound))
}

func TestVar_BindRoot(t *testing.T) {
	v := NewBoundVar(nil, symbol.New("x"), 1)
	assert.True(t, v.IsBound())
	assert.Equal(t, 1, v.Value())
	assert.Equal(t, "#'x", v.String())
	v.BindRoot(nil)
	assert.True(t, v.IsBound())
	assert.Nil(t, v.Value())
	assert.False(t, IsUnbound(v.Value()))

	v.Unbind()
	assert.False(t, v.IsBound())
	assert.True(t, IsUnbound(v.Value()))
	_, err := v.Invoke()
	var unbound *UnboundError
	require.True(t, errors.As(err, &unbound))
	assert.Same(t, v, unbound.Var)
}

func TestVar_Invoke(t *testing.T) {
	inc := NewFn("inc", []string{"x"}, func(args ...Value) (Value, error) {
		return args[0].(int) + 1, nil
	})
	v := NewBoundVar(nil, symbol.New("inc"), inc)
	x, err := v.Invoke(41)
	require.NoError(t, err)
	assert.Equal(t, 42, x)

	_, err = v.Invoke()
	var arity *ArityError
	require.True(t, errors.As(err, &arity))
	assert.Equal(t, 0, arity.Got)

	v.BindRoot("hi")
	_, err = v.Invoke()
	var notfn *NotCallableError
	require.True(t, errors.As(err, &notfn))
	assert.Same(t, v, notfn.Var)
	assert.Equal(t, `#'inc is not callable: "hi"`, err.Error())
}

func TestVar_Metadata(t *testing.T) {
	v := NewVar(nil, symbol.New("def"))
	assert.False(t, v.IsMacro())
	_, ok := v.Meta(MacroKey)
	assert.False(t, ok)

	v.SetMeta(MacroKey, true)
	assert.True(t, v.IsMacro())
	val, ok := v.Meta(symbol.ParseKeyword(":macro"))
	assert.True(t, ok)
	assert.Equal(t, true, val)

	v.SetMeta(DocKey, "first")
	v.SetMeta(DocKey, "second")
	meta := v.Metadata()
	assert.Len(t, meta, 2)
	assert.Equal(t, "second", meta[DocKey])

	// the snapshot is detached from the var
	meta[MacroKey] = false
	assert.True(t, v.IsMacro())

	v.SetMeta(MacroKey, "yes")
	assert.False(t, v.IsMacro())
}
