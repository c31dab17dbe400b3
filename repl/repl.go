// Package repl runs an interactive console.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mylesmegyesi/clojure.core/console"
	"golang.org/x/term"
)

const stdinName = "<stdin>"

// Option configures RunRepl.
type Option func(*config)

type config struct {
	stdin       *os.File
	stderr      io.Writer
	historyFile string
}

// WithStdin makes the repl read from f instead of os.Stdin.
func WithStdin(f *os.File) Option {
	return func(c *config) {
		c.stdin = f
	}
}

// WithStderr makes the repl report errors to w instead of os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(c *config) {
		c.stderr = w
	}
}

// WithHistoryFile persists line history to path.
func WithHistoryFile(path string) Option {
	return func(c *config) {
		c.historyFile = path
	}
}

// RunRepl evaluates lines with c until its input is exhausted, printing every
// result.  Errors are reported and do not stop the repl.  Line editing is
// only enabled when the input is a terminal.
func RunRepl(c *console.Console, options ...Option) error {
	cfg := &config{
		stdin:  os.Stdin,
		stderr: os.Stderr,
	}
	for _, fn := range options {
		fn(cfg)
	}
	c.Print = true
	if !term.IsTerminal(int(cfg.stdin.Fd())) {
		return runBatch(c, cfg)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      c.Prompt(),
		HistoryFile: cfg.historyFile,
		Stdin:       cfg.stdin,
		Stderr:      cfg.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	c.Stdout = rl.Stdout()

	for lineno := 1; ; lineno++ {
		rl.SetPrompt(c.Prompt())
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		err = c.Exec(stdinName, lineno, line)
		if err != nil {
			errln(rl.Stderr(), err)
		}
	}
}

func runBatch(c *console.Console, cfg *config) error {
	s := bufio.NewScanner(cfg.stdin)
	for lineno := 1; s.Scan(); lineno++ {
		err := c.Exec(stdinName, lineno, s.Text())
		if err != nil {
			errln(cfg.stderr, err)
		}
	}
	return s.Err()
}

func errln(w io.Writer, v ...interface{}) {
	fmt.Fprintln(w, v...)
}
