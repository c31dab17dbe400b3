package cmd

import (
	"github.com/mylesmegyesi/clojure.core/repl"
	"github.com/spf13/cobra"
)

var (
	replLoad        []string
	replHistoryFile string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive console",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newConsole(false)
		if err != nil {
			exitErr(err)
		}
		err = loadFiles(c, replLoad)
		if err != nil {
			exitErr(err)
		}
		err = repl.RunRepl(c, repl.WithHistoryFile(replHistoryFile))
		if err != nil {
			exitErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringSliceVarP(&replLoad, "load", "l", nil,
		"Files to run before starting the repl")
	replCmd.Flags().StringVar(&replHistoryFile, "history", "",
		"File used to persist line history")
}
