package token

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Scanner reads utf-8 runes from an io.Reader and accumulates them into the
// text of tokens.
type Scanner struct {
	file string
	r    *bufio.Reader

	text  strings.Builder
	start Location // location of the first rune of the current token
	loc   Location // location of the next rune to be scanned
	c     rune     // last rune scanned
	err   error
}

// NewScanner initializes and returns a new Scanner.  Line numbers begin at
// line.
func NewScanner(file string, line int, r io.Reader) *Scanner {
	if line < 1 {
		line = 1
	}
	s := &Scanner{
		file: file,
		r:    bufio.NewReader(r),
		loc:  Location{File: file, Line: line, Col: 1},
	}
	s.start = s.loc
	return s
}

// EmitToken returns a token containing the text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.text.Reset()
	s.start = s.loc
}

// Text returns the text scanned since the last call to either EmitToken or
// Ignore.
func (s *Scanner) Text() string {
	return s.text.String()
}

// Rune returns the last rune scanned.
func (s *Scanner) Rune() rune {
	return s.c
}

// Peek returns the next rune to be scanned.  Peek returns a false second
// value when EOF, a read error, or an invalid utf-8 sequence prevents a rune
// from being scanned.  The following call to ScanRune returns the cause.
func (s *Scanner) Peek() (rune, bool) {
	if s.err != nil {
		return 0, false
	}
	c, n, err := s.r.ReadRune()
	if err != nil {
		return 0, false
	}
	s.r.UnreadRune()
	if c == utf8.RuneError && n == 1 {
		return utf8.RuneError, false
	}
	return c, true
}

// ScanRune reads the next rune into the current token.
func (s *Scanner) ScanRune() error {
	if s.err != nil {
		return s.err
	}
	c, n, err := s.r.ReadRune()
	if err != nil {
		s.err = err
		return err
	}
	if c == utf8.RuneError && n == 1 {
		s.err = fmt.Errorf("%v: invalid utf-8 sequence in source text", &s.loc)
		return s.err
	}
	s.c = c
	s.text.WriteRune(c)
	s.loc.Pos += n
	if c == '\n' {
		s.loc.Line++
		s.loc.Col = 1
	} else {
		s.loc.Col++
	}
	return nil
}

// LocStart returns the location of the beginning of the current token.
func (s *Scanner) LocStart() *Location {
	loc := s.start
	return &loc
}

// Loc returns the location of the next rune to be scanned.
func (s *Scanner) Loc() *Location {
	loc := s.loc
	return &loc
}
