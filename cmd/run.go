package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file...]",
	Short: "Run console commands",
	Long: `Run console commands supplied via the command line or files.  Execution
stops at the first error.`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := newConsole(runPrint)
		if err != nil {
			exitErr(err)
		}
		if !runExpression {
			err = loadFiles(c, args)
			if err != nil {
				exitErr(err)
			}
			return
		}
		for i := range args {
			err = c.Run(fmt.Sprintf("<expr%d>", i+1), strings.NewReader(args[i]))
			if err != nil {
				exitErr(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as console commands")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print command results to stdout")
}
