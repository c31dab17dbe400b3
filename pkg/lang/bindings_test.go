package lang

import (
	"testing"

	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
	"github.com/stretchr/testify/assert"
)

func TestBindings(t *testing.T) {
	x := NewBoundVar(nil, symbol.New("x"), 1)
	y := NewBoundVar(nil, symbol.New("y"), 2)
	s := newBindings(0)
	assert.Equal(t, 0, s.Len())
	_, ok := s.Get("x")
	assert.False(t, ok)

	s.Put("x", x)
	s.Put("y", y)
	assert.Equal(t, 2, s.Len())
	v, ok := s.Get("x")
	assert.True(t, ok)
	assert.Same(t, x, v)

	s.Put("x", y)
	assert.Equal(t, 2, s.Len())
	v, ok = s.Get("x")
	assert.True(t, ok)
	assert.Same(t, y, v)
	assert.Equal(t, []string{"x", "y"}, s.Names())
}
