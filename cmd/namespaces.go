package cmd

import (
	"github.com/mylesmegyesi/clojure.core/console"
	"github.com/spf13/cobra"
)

var namespacesFormat string

// namespacesCmd represents the namespaces command
var namespacesCmd = &cobra.Command{
	Use:   "namespaces [file...]",
	Short: "Describe the namespace registry",
	Long: `Run the given files and describe every namespace in the registry along
with its mappings.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newConsole(false)
		if err != nil {
			exitErr(err)
		}
		err = loadFiles(c, args)
		if err != nil {
			exitErr(err)
		}
		err = console.Dump(cmd.OutOrStdout(), c.Runtime.Registry, namespacesFormat)
		if err != nil {
			exitErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(namespacesCmd)

	namespacesCmd.Flags().StringVarP(&namespacesFormat, "format", "f", console.FormatText,
		"Output format (text or yaml)")
}
