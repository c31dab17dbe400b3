// Package console evaluates flat console commands against a bootstrapped
// runtime.  A command with a single symbol prints the value the symbol
// resolves to.  Any other command resolves its head in the current namespace
// and invokes the value with the remaining literal arguments.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mylesmegyesi/clojure.core/parser"
	"github.com/mylesmegyesi/clojure.core/pkg/lang"
	"github.com/mylesmegyesi/clojure.core/pkg/runtime"
	"github.com/mylesmegyesi/clojure.core/pkg/symbol"
)

// HeadError is returned when the head of a command is not a symbol.
type HeadError struct {
	Head lang.Value
}

func (err *HeadError) Error() string {
	return fmt.Sprintf("command head is not a symbol: %s", lang.Format(err.Head))
}

// Console evaluates commands.  Results are written to Stdout when Print is
// true.
type Console struct {
	Runtime *runtime.Runtime
	Stdout  io.Writer
	Print   bool
}

// New returns a console for rt that writes results to os.Stdout.
func New(rt *runtime.Runtime, print bool) *Console {
	return &Console{
		Runtime: rt,
		Stdout:  os.Stdout,
		Print:   print,
	}
}

// Eval evaluates cmd and returns its result.
func (c *Console) Eval(cmd *parser.Command) (lang.Value, error) {
	head, ok := cmd.Head().(symbol.Symbol)
	if !ok {
		return nil, &HeadError{Head: cmd.Head()}
	}
	if len(cmd.Values) == 1 {
		return c.Runtime.Registry.ResolveSymbol(head)
	}
	v, err := c.Runtime.Registry.ResolveVar(head)
	if err != nil {
		return nil, err
	}
	return v.Invoke(cmd.Args()...)
}

// Exec parses and evaluates text, the contents of the given line of file.
// Lines without a command are ignored.
func (c *Console) Exec(file string, line int, text string) error {
	cmd, err := c.parser(file).ParseLine(line, text)
	if err != nil {
		return err
	}
	if cmd == nil {
		return nil
	}
	return c.exec(cmd)
}

// Run evaluates every command read from r, stopping at the first error.
func (c *Console) Run(file string, r io.Reader) error {
	rd := parser.NewReader(file, r, parser.WithSymbolTable(c.Runtime.Symbols))
	for {
		cmd, err := rd.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		err = c.exec(cmd)
		if err != nil {
			return err
		}
	}
}

// Prompt returns a prompt naming the current namespace.
func (c *Console) Prompt() string {
	ns, err := c.Runtime.CurrentNamespace()
	if err != nil {
		return "=> "
	}
	return ns.Name().String() + "=> "
}

func (c *Console) exec(cmd *parser.Command) error {
	v, err := c.Eval(cmd)
	if err != nil {
		return fmt.Errorf("%v: %w", cmd.Source, err)
	}
	if c.Print {
		fmt.Fprintln(c.Stdout, lang.Format(v))
	}
	return nil
}

func (c *Console) parser(file string) *parser.Parser {
	return parser.New(file, parser.WithSymbolTable(c.Runtime.Symbols))
}
