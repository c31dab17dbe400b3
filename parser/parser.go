// Package parser reads console commands.  A command is a single line holding a
// head followed by literal arguments, optionally wrapped in one pair of
// parentheses.  Arguments are data and are never evaluated.
//
//	command := '(' <value>* ')' | <value>*
//	value   := <int> | <float> | <string> | <keyword> | <symbol>
//	int     := /[+-]?[0-9]+/
//	float   := <int> <fraction>? <exponent>?
//	string  := '"' /([^"\\]|\\.)*/ '"'
//	keyword := ':' <symbol>
//	symbol  := /[\pL._+\-*\/=<>!&~%?$][\pL0-9._+\-*\/=<>!&~%?$]*/
//
// The symbols nil, true and false read as the corresponding Go values.  Text
// following a ';' is a comment.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mylesmegyesi/clojure.core/parser/lexer"
	"github.com/mylesmegyesi/clojure.core/parser/token"
	"github.com/mylesmegyesi/clojure.core/pkg/lang"
	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
)

// Command is a parsed console line.
type Command struct {
	Source *token.Location
	Values []lang.Value
}

// Head returns the first value of cmd.
func (cmd *Command) Head() lang.Value {
	return cmd.Values[0]
}

// Args returns the values of cmd following its head.
func (cmd *Command) Args() []lang.Value {
	return cmd.Values[1:]
}

func (cmd *Command) String() string {
	text := make([]string, len(cmd.Values))
	for i := range cmd.Values {
		text[i] = lang.Format(cmd.Values[i])
	}
	return "(" + strings.Join(text, " ") + ")"
}

// SyntaxError is returned when console text cannot be parsed.
type SyntaxError struct {
	Source *token.Location
	Msg    string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s", err.Source, err.Msg)
}

// Option configures a Parser.
type Option func(*Parser)

// WithSymbolTable makes the parser intern symbols in table instead of
// symbol.DefaultGlobalTable.
func WithSymbolTable(table symbol.Table) Option {
	return func(p *Parser) {
		p.symbols = table
	}
}

// Parser parses the lines of a named source.
type Parser struct {
	file    string
	symbols symbol.Table
}

// New returns a Parser for lines of file.
func New(file string, options ...Option) *Parser {
	p := &Parser{
		file:    file,
		symbols: symbol.DefaultGlobalTable,
	}
	for _, fn := range options {
		fn(p)
	}
	return p
}

// ParseLine parses text, found at the given line number, into a command.
// ParseLine returns a nil command when text contains only whitespace and
// comments.
func (p *Parser) ParseLine(line int, text string) (*Command, error) {
	lex := lexer.New(token.NewScanner(p.file, line, strings.NewReader(text)))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		switch tok.Type {
		case token.EOF:
			return p.command(toks)
		case token.COMMENT:
			continue
		case token.ERROR, token.INVALID:
			return nil, &SyntaxError{Source: tok.Source, Msg: tok.Text}
		}
		toks = append(toks, tok)
	}
}

func (p *Parser) command(toks []*token.Token) (*Command, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	source := toks[0].Source
	if toks[0].Type == token.PAREN_L {
		last := toks[len(toks)-1]
		if last.Type != token.PAREN_R || len(toks) == 1 {
			return nil, &SyntaxError{Source: source, Msg: "unmatched ("}
		}
		toks = toks[1 : len(toks)-1]
		if len(toks) == 0 {
			return nil, &SyntaxError{Source: source, Msg: "empty command"}
		}
	}
	cmd := &Command{
		Source: source,
		Values: make([]lang.Value, len(toks)),
	}
	for i, tok := range toks {
		v, err := p.value(tok)
		if err != nil {
			return nil, err
		}
		cmd.Values[i] = v
	}
	return cmd, nil
}

func (p *Parser) value(tok *token.Token) (lang.Value, error) {
	switch tok.Type {
	case token.INT:
		x, err := strconv.Atoi(tok.Text)
		if err != nil {
			return nil, &SyntaxError{Source: tok.Source, Msg: fmt.Sprintf("invalid integer literal: %s", tok.Text)}
		}
		return x, nil
	case token.FLOAT:
		x, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, &SyntaxError{Source: tok.Source, Msg: fmt.Sprintf("invalid floating point literal: %s", tok.Text)}
		}
		return x, nil
	case token.STRING:
		s, err := strconv.Unquote(tok.Text)
		if err != nil {
			return nil, &SyntaxError{Source: tok.Source, Msg: fmt.Sprintf("invalid string literal: %s", tok.Text)}
		}
		return s, nil
	case token.KEYWORD:
		return symbol.NewKeyword(p.symbols.Intern(tok.Text[1:])), nil
	case token.SYMBOL:
		switch tok.Text {
		case "nil":
			return nil, nil
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return p.symbols.Intern(tok.Text), nil
	case token.PAREN_L:
		return nil, &SyntaxError{Source: tok.Source, Msg: "nested lists are not supported"}
	case token.PAREN_R:
		return nil, &SyntaxError{Source: tok.Source, Msg: "unexpected )"}
	default:
		return nil, &SyntaxError{Source: tok.Source, Msg: fmt.Sprintf("unexpected %v", tok)}
	}
}

// Reader reads commands from the lines of an io.Reader.
type Reader struct {
	p    *Parser
	s    *bufio.Scanner
	line int
}

// NewReader returns a Reader that parses lines of r using a Parser for file.
func NewReader(file string, r io.Reader, options ...Option) *Reader {
	return &Reader{
		p: New(file, options...),
		s: bufio.NewScanner(r),
	}
}

// Read returns the next command, skipping lines without one.  Read returns
// io.EOF after the last command.
func (r *Reader) Read() (*Command, error) {
	for r.s.Scan() {
		r.line++
		cmd, err := r.p.ParseLine(r.line, r.s.Text())
		if err != nil || cmd != nil {
			return cmd, err
		}
	}
	if err := r.s.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
