package cmd

import (
	"fmt"

	"github.com/mylesmegyesi/clojure.core/pkg/lang"
	"github.com/spf13/cobra"
)

var resolveLoad []string

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve symbol...",
	Short: "Resolve symbols in the current namespace",
	Long: `Resolve symbols from within the current namespace after running any
files given with --load, and print the var and value each refers to.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newConsole(false)
		if err != nil {
			exitErr(err)
		}
		err = loadFiles(c, resolveLoad)
		if err != nil {
			exitErr(err)
		}
		for _, text := range args {
			v, err := c.Runtime.ResolveVar(text)
			if err != nil {
				exitErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\t%s\n", text, v, lang.Format(v.Value()))
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringSliceVarP(&resolveLoad, "load", "l", nil,
		"Files to run before resolving")
}
