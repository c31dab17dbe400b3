package symbol

import "sync"

// DefaultGlobalTable is the default symbol table.  Processes use it to
// create fixed handles to symbols during package init.
var DefaultGlobalTable = NewTable()

// Intern uses DefaultGlobalTable to intern text and returns its Symbol.
func Intern(text string) Symbol {
	return DefaultGlobalTable.Intern(text)
}

// Table caches parsed symbols by their text so that repeated lookups of the
// same source text reuse one key.
type Table interface {
	// Len returns the number of symbols interned in the table.
	Len() int
	// Intern parses text into the table if it is not present and returns
	// its Symbol.
	Intern(text string) Symbol
	// Peek retrieves a Symbol without interning it.  Peek returns true iff
	// text has been interned into the table.
	Peek(text string) (Symbol, bool)
}

// BulkInterner is a table that can insert multiple symbols under one lock.
type BulkInterner interface {
	Table
	// InternAll performs a bulk Intern operation and returns symbols in the
	// order of texts.
	InternAll(texts ...string) []Symbol
}

// InternAll interns every text in t.
func InternAll(t Table, texts ...string) []Symbol {
	switch t := t.(type) {
	case BulkInterner:
		return t.InternAll(texts...)
	default:
		syms := make([]Symbol, 0, len(texts))
		for _, s := range texts {
			syms = append(syms, t.Intern(s))
		}
		return syms
	}
}

// NewTable returns an empty Table that is safe for concurrent use.
func NewTable() BulkInterner {
	return newTable()
}

type table struct {
	sync sync.RWMutex
	s    map[string]Symbol
}

var _ BulkInterner = (*table)(nil)

func newTable() *table {
	return &table{
		s: make(map[string]Symbol),
	}
}

// Len implements the Table interface
func (t *table) Len() int {
	t.sync.RLock()
	defer t.sync.RUnlock()
	return len(t.s)
}

// Intern implements the Table interface
func (t *table) Intern(text string) Symbol {
	if sym, ok := t.Peek(text); ok {
		return sym
	}
	t.sync.Lock()
	defer t.sync.Unlock()
	return t.intern(text)
}

// InternAll implements the BulkInterner interface
func (t *table) InternAll(texts ...string) []Symbol {
	syms := make([]Symbol, 0, len(texts))
	t.sync.Lock()
	defer t.sync.Unlock()
	for _, text := range texts {
		syms = append(syms, t.intern(text))
	}
	return syms
}

func (t *table) intern(text string) Symbol {
	if sym, ok := t.s[text]; ok {
		return sym
	}
	sym := Parse(text)
	t.s[text] = sym
	return sym
}

// Peek implements the Table interface
func (t *table) Peek(text string) (Symbol, bool) {
	t.sync.RLock()
	defer t.sync.RUnlock()
	sym, ok := t.s[text]
	return sym, ok
}
