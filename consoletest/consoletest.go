// Package consoletest runs sequences of console commands against isolated
// runtimes and checks their printed results.
package consoletest

import (
	"testing"

	"github.com/mylesmegyesi/clojure.core/console"
	"github.com/mylesmegyesi/clojure.core/parser"
	"github.com/mylesmegyesi/clojure.core/pkg/lang"
	"github.com/mylesmegyesi/clojure.core/pkg/runtime"
	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
)

// TestSequence is a sequence of console commands which are evaluated
// sequentially by a console.
type TestSequence []struct {
	Expr   string // a console command
	Result string // the formatted result, or the error message
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// NewConsole returns a console over a freshly bootstrapped runtime with its
// own symbol table.
func NewConsole(options ...runtime.Option) (*console.Console, error) {
	options = append([]runtime.Option{runtime.WithSymbolTable(symbol.NewTable())}, options...)
	rt, err := runtime.New(options...)
	if err != nil {
		return nil, err
	}
	return console.New(rt, false), nil
}

// RunTestSuite runs each TestSequence in tests on an isolated console.
func RunTestSuite(t *testing.T, tests TestSuite, options ...runtime.Option) {
	t.Helper()
	for i, test := range tests {
		c, err := NewConsole(options...)
		if err != nil {
			t.Errorf("test %d %q: %v", i, test.Name, err)
			continue
		}
		for j, expr := range test.TestSequence {
			result, ok := Eval(t, c, expr.Expr)
			if !ok {
				t.Errorf("test %d %q: expr %d: no command parsed from %q", i, test.Name, j, expr.Expr)
				continue
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// Eval parses and evaluates text with c.  The result is the formatted value
// or the message of any parse or evaluation error.  Eval returns false if
// text contains no command.
func Eval(t testing.TB, c *console.Console, text string) (string, bool) {
	t.Helper()
	p := parser.New("test", parser.WithSymbolTable(c.Runtime.Symbols))
	cmd, err := p.ParseLine(1, text)
	if err != nil {
		return err.Error(), true
	}
	if cmd == nil {
		return "", false
	}
	v, err := c.Eval(cmd)
	if err != nil {
		return err.Error(), true
	}
	return lang.Format(v), true
}
