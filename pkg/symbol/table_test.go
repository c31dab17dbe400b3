package symbol

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	table := newTable()
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, New("testing"), table.Intern("testing"))
	assert.Equal(t, Qualified("a", "hello"), table.Intern("a/hello"))
	assert.Equal(t, New("testing"), table.Intern("testing"))
	assert.Equal(t, 2, table.Len())
	sym, ok := table.Peek("a/hello")
	assert.True(t, ok)
	assert.Equal(t, Qualified("a", "hello"), sym)
	_, ok = table.Peek("notfound")
	assert.False(t, ok)
}

func TestInternAll(t *testing.T) {
	table := newTable()
	syms := InternAll(table, "def", "symbol", "ns", "refer", "def")
	assert.Equal(t, []Symbol{New("def"), New("symbol"), New("ns"), New("refer"), New("def")}, syms)
	assert.Equal(t, 4, table.Len())
}

func TestTable_Concurrent(t *testing.T) {
	table := newTable()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, text := range []string{"a", "b/c", "d"} {
				table.Intern(text)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, table.Len())
}

func TestDefaultGlobalTable(t *testing.T) {
	sym := Intern("clojure.core/refer")
	assert.Equal(t, Qualified("clojure.core", "refer"), sym)
	peek, ok := DefaultGlobalTable.Peek("clojure.core/refer")
	assert.True(t, ok)
	assert.Equal(t, sym, peek)
}
