package lang

import (
	"errors"
	"testing"

	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireNamespace(t *testing.T, r *Registry, name string) *Namespace {
	t.Helper()
	ns, err := r.FindOrCreateNamespace(symbol.New(name))
	require.NoError(t, err)
	return ns
}

func TestNamespace_Reference(t *testing.T) {
	ns := NewNamespace(symbol.New("user"))
	val, err := ns.Reference(symbol.New("x"), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, val)

	v, ok := ns.FindInternedVar(symbol.New("x"))
	require.True(t, ok)
	assert.Same(t, ns, v.Namespace())
	assert.Equal(t, 42, v.Value())

	other := NewNamespace(symbol.New("other"))
	shared := NewBoundVar(other, symbol.New("y"), "hi")
	val, err = ns.Reference(symbol.New("y"), shared)
	require.NoError(t, err)
	assert.Same(t, shared, val)
	v, ok = ns.FindInternedVar(symbol.New("y"))
	require.True(t, ok)
	assert.Same(t, shared, v)
}

func TestNamespace_ReferenceQualified(t *testing.T) {
	ns := NewNamespace(symbol.New("user"))
	_, err := ns.Reference(symbol.New("x"), 1)
	require.NoError(t, err)
	before := ns.Mappings()

	_, err = ns.Reference(symbol.Parse("other/y"), 2)
	var qerr *QualifiedSymbolError
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, symbol.Parse("other/y"), qerr.Symbol)
	assert.Equal(t, before, ns.Mappings())
	assert.Equal(t, 1, ns.Len())

	_, err = ns.Intern(symbol.Parse("other/y"))
	assert.True(t, errors.As(err, &qerr))
	err = ns.Refer(symbol.Parse("other/y"), NewVar(ns, symbol.New("y")))
	assert.True(t, errors.As(err, &qerr))
	assert.Equal(t, 1, ns.Len())
}

func TestNamespace_ReferenceNilVar(t *testing.T) {
	r := NewRegistry()
	ns := requireNamespace(t, r, "user")
	_, err := ns.Reference(symbol.New("x"), (*Var)(nil))
	assert.True(t, errors.Is(err, ErrNilVar))
	err = ns.Refer(symbol.New("x"), nil)
	assert.True(t, errors.Is(err, ErrNilVar))
	assert.Equal(t, 0, ns.Len())

	_, ok := ns.FindInternedVar(symbol.New("x"))
	assert.False(t, ok)
	_, err = ns.Resolve("x", r)
	var rerr *ResolveError
	assert.True(t, errors.As(err, &rerr))

	// a plain nil value is bound to a new var
	_, err = ns.Reference(symbol.New("y"), nil)
	require.NoError(t, err)
	y, err := ns.Resolve("y", r)
	require.NoError(t, err)
	assert.Nil(t, y)
}

func TestNamespace_Intern(t *testing.T) {
	ns := NewNamespace(symbol.New("user"))
	x, err := ns.Intern(symbol.New("x"))
	require.NoError(t, err)
	assert.False(t, x.IsBound())
	again, err := ns.Intern(symbol.New("x"))
	require.NoError(t, err)
	assert.Same(t, x, again)

	other := NewNamespace(symbol.New("other"))
	y := NewBoundVar(other, symbol.New("y"), 1)
	require.NoError(t, ns.Refer(symbol.New("y"), y))
	own, err := ns.Intern(symbol.New("y"))
	require.NoError(t, err)
	assert.NotSame(t, y, own)
	assert.Same(t, ns, own.Namespace())
	assert.Equal(t, 1, y.Value())
}

func TestNamespace_FindInternedVarIgnoresNamespace(t *testing.T) {
	ns := NewNamespace(symbol.New("user"))
	_, err := ns.Reference(symbol.New("x"), 1)
	require.NoError(t, err)
	v, ok := ns.FindInternedVar(symbol.Parse("anything/x"))
	require.True(t, ok)
	assert.Equal(t, 1, v.Value())
	_, ok = ns.FindInternedVar(symbol.New("nope"))
	assert.False(t, ok)
}

func TestNamespace_Resolve(t *testing.T) {
	r := NewRegistry()
	a := requireNamespace(t, r, "a")
	b := requireNamespace(t, r, "b")
	_, err := a.Reference(symbol.New("y"), "hi")
	require.NoError(t, err)
	_, err = b.Reference(symbol.New("z"), 3)
	require.NoError(t, err)

	v, err := b.Resolve("z", r)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = b.Resolve("a/y", r)
	require.NoError(t, err)
	assert.Equal(t, "hi", v)

	// the local table wins over the qualified lookup
	v, err = b.Resolve("a/z", r)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	for _, text := range []string{"y", "nope", "a/nope", "c/y", "b/y"} {
		_, err = b.Resolve(text, r)
		var rerr *ResolveError
		if assert.True(t, errors.As(err, &rerr), "input: %q", text) {
			assert.Equal(t, text, rerr.Text)
			assert.Equal(t, "could not resolve var: "+text, err.Error())
		}
	}

	_, err = b.Resolve("a/y", nil)
	var rerr *ResolveError
	assert.True(t, errors.As(err, &rerr))
}

func TestNamespace_ResolveOpaqueNamespacePart(t *testing.T) {
	r := NewRegistry()
	weird, err := r.FindOrCreateNamespace(symbol.New("a/b"))
	require.NoError(t, err)
	_, err = weird.Reference(symbol.New("c"), 1)
	require.NoError(t, err)
	user := requireNamespace(t, r, "user")

	v, err := user.Resolve("a/b/c", r)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestNamespace_ResolveVar(t *testing.T) {
	r := NewRegistry()
	a := requireNamespace(t, r, "a")
	x, err := a.Intern(symbol.New("x"))
	require.NoError(t, err)
	user := requireNamespace(t, r, "user")

	v, err := user.ResolveVar(symbol.Parse("a/x"), r)
	require.NoError(t, err)
	assert.Same(t, x, v)

	val, err := user.Resolve("a/x", r)
	require.NoError(t, err)
	assert.True(t, IsUnbound(val))
}

func TestNamespace_Mappings(t *testing.T) {
	ns := NewNamespace(symbol.New("user"))
	other := NewNamespace(symbol.New("other"))
	y := NewBoundVar(other, symbol.New("y"), 2)
	_, err := ns.Reference(symbol.New("x"), 1)
	require.NoError(t, err)
	require.NoError(t, ns.Refer(symbol.New("y"), y))

	m := ns.Mappings()
	assert.Len(t, m, 2)
	assert.Same(t, y, m[symbol.New("y")])
	assert.Equal(t, 1, m[symbol.New("x")].Value())

	interns := ns.Interns()
	assert.Len(t, interns, 1)
	_, ok := interns[symbol.New("y")]
	assert.False(t, ok)

	assert.Equal(t, []symbol.Symbol{symbol.New("x"), symbol.New("y")}, ns.Symbols())

	// snapshots are detached from the namespace
	delete(m, symbol.New("x"))
	assert.Equal(t, 2, ns.Len())
}
