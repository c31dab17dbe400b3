// Package lexer splits console source text into tokens.
package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mylesmegyesi/clojure.core/parser/token"
)

const miscWordRunes = "0123456789" + miscWordSymbols
const miscWordSymbols = "._+-*/=<>!&~%?$"

type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	readErr error
}

func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s}
}

// NextToken returns the next token in the input.  After an EOF or ERROR token
// is returned every following call returns a token of the same type.
func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readErr = lex.skipWhitespace()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	if lex.readChar() != nil {
		return lex.emitError(lex.readErr, true)
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case ';':
		for lex.peekRune() != '\n' {
			err := lex.readChar()
			if err == io.EOF {
				lex.readErr = nil
				break
			}
			if err != nil {
				return lex.emitError(err, false)
			}
		}
		return lex.scanner.EmitToken(token.COMMENT)
	case ':':
		if !isWordStart(lex.peekRune()) {
			return lex.errorf("invalid keyword: %q", lex.scanner.Text())
		}
		if err := lex.readSymbol(); err != nil {
			return lex.emitError(err, false)
		}
		return lex.scanner.EmitToken(token.KEYWORD)
	case '+', '-':
		if isDigit(lex.peekRune()) {
			return lex.readNumber()
		}
		if err := lex.readSymbol(); err != nil {
			return lex.emitError(err, false)
		}
		return lex.scanner.EmitToken(token.SYMBOL)
	case '"':
		return lex.readString()
	default:
		if isDigit(lex.ch) {
			return lex.readNumber()
		}
		if isWordStart(lex.ch) {
			if err := lex.readSymbol(); err != nil {
				return lex.emitError(err, false)
			}
			return lex.scanner.EmitToken(token.SYMBOL)
		}
		lex.readErr = fmt.Errorf("unexpected text starting with %q", lex.ch)
		return lex.emit(token.INVALID, lex.readErr.Error())
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	lex.readErr = err
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	return lex.emitError(fmt.Errorf(format, v...), false)
}

// readString scans the remainder of a string literal.  Escape sequences are
// validated when the token is parsed.
func (lex *Lexer) readString() *token.Token {
	for {
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
		switch lex.ch {
		case '"':
			return lex.scanner.EmitToken(token.STRING)
		case '\n':
			return lex.errorf("unterminated string literal")
		case '\\':
			if lex.readChar() != nil {
				return lex.emitError(lex.readErr, false)
			}
		}
	}
}

func (lex *Lexer) readSymbol() error {
	for isWord(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	return nil
}

func (lex *Lexer) readNumber() *token.Token {
	for isDigit(lex.peekRune()) {
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
	}
	switch lex.peekRune() {
	case '.':
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
		return lex.readFloatFraction()
	case 'e', 'E':
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
		return lex.readFloatExponent()
	}
	if isWord(lex.peekRune()) {
		return lex.errorf("invalid number literal: %v", lex.scanner.Text())
	}
	// overflow is detected by the parser
	return lex.scanner.EmitToken(token.INT)
}

func (lex *Lexer) readFloatFraction() *token.Token {
	if !isDigit(lex.peekRune()) {
		return lex.errorf("invalid floating point literal: %v", lex.scanner.Text())
	}
	for isDigit(lex.peekRune()) {
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
	}
	switch lex.peekRune() {
	case 'e', 'E':
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
		return lex.readFloatExponent()
	default:
		return lex.scanner.EmitToken(token.FLOAT)
	}
}

func (lex *Lexer) readFloatExponent() *token.Token {
	switch lex.peekRune() {
	case '+', '-':
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
	}
	if !isDigit(lex.peekRune()) {
		return lex.errorf("invalid floating point literal: %v", lex.scanner.Text())
	}
	for isDigit(lex.peekRune()) {
		if lex.readChar() != nil {
			return lex.emitError(lex.readErr, false)
		}
	}
	return lex.scanner.EmitToken(token.FLOAT)
}

func (lex *Lexer) skipWhitespace() error {
	for unicode.IsSpace(lex.peekRune()) || lex.peekRune() == ',' {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isWordStart(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(miscWordSymbols, c)
}

func isWord(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(miscWordRunes, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
