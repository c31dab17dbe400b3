// Package symbol implements symbolic names.  A Symbol is an optional
// namespace and a local name.  A Keyword is a Symbol used as a
// self-evaluating tag.
package symbol

import "strings"

// Separator divides the namespace and name parts of a qualified symbol.
const Separator = '/'

// Symbol is a structural name value.  Symbols are comparable and may be used
// as map keys.  A Symbol with an empty NS is unqualified.
type Symbol struct {
	NS   string
	Name string
}

// New returns an unqualified symbol with the given name.
func New(name string) Symbol {
	return Symbol{Name: name}
}

// Qualified returns a symbol with the namespace part ns.
func Qualified(ns, name string) Symbol {
	return Symbol{NS: ns, Name: name}
}

// Parse splits text on its last '/' into a namespace and a name.  Text without
// a '/' produces an unqualified symbol.  A '/' in the first position does not
// start a namespace, so "/" and "/x" are unqualified names.  This keeps
// Parse(text).String() == text for every string.
func Parse(text string) Symbol {
	i := strings.LastIndexByte(text, Separator)
	if i <= 0 {
		return Symbol{Name: text}
	}
	return Symbol{NS: text[:i], Name: text[i+1:]}
}

// IsQualified returns true if s has a namespace part.
func (s Symbol) IsQualified() bool {
	return s.NS != ""
}

// Unqualified returns s without its namespace part.
func (s Symbol) Unqualified() Symbol {
	return Symbol{Name: s.Name}
}

// String returns the canonical text of s, "ns/name" or "name".
func (s Symbol) String() string {
	if s.NS != "" {
		return s.NS + string(Separator) + s.Name
	}
	return s.Name
}

// Keyword is a tag value wrapping a Symbol.  Two keywords are equal when
// their symbols are equal.
type Keyword struct {
	Sym Symbol
}

// NewKeyword wraps sym as a Keyword.
func NewKeyword(sym Symbol) Keyword {
	return Keyword{Sym: sym}
}

// ParseKeyword parses text as a symbol and wraps it in a Keyword.  A single
// leading ':' is ignored.
func ParseKeyword(text string) Keyword {
	return Keyword{Sym: Parse(strings.TrimPrefix(text, ":"))}
}

// String returns the keyword's text with a leading ':'.
func (k Keyword) String() string {
	return ":" + k.Sym.String()
}
