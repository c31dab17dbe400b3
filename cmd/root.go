package cmd

import (
	"fmt"
	"os"

	"github.com/mylesmegyesi/clojure.core/console"
	"github.com/mylesmegyesi/clojure.core/pkg/runtime"
	"github.com/spf13/cobra"
)

var (
	rootUserNS string
	rootTrace  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clojure.core",
	Short: "Bootstrap namespace runtime",
	Long: `Bootstrap a namespace registry with the core primitives def, symbol, ns
and refer, and evaluate console commands against it.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootUserNS, "user-ns", runtime.UserNamespace,
		"Namespace that is current after bootstrap")
	rootCmd.PersistentFlags().BoolVar(&rootTrace, "trace", false,
		"Log definitions and namespace changes to stderr")
}

func newRuntime() (*runtime.Runtime, error) {
	return runtime.New(
		runtime.WithUserNamespace(rootUserNS),
		runtime.WithTrace(rootTrace),
	)
}

func newConsole(print bool) (*console.Console, error) {
	rt, err := newRuntime()
	if err != nil {
		return nil, err
	}
	return console.New(rt, print), nil
}

// loadFiles runs each file in paths with c.
func loadFiles(c *console.Console, paths []string) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = c.Run(path, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func exitErr(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
