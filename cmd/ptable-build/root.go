package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ptable-build",
	Short: "Build a parallel-scan lexer table from a DFA description",
	Long: `ptable-build provides two features:
- Builds a parallel-scan lexer table (initial states, merge table, final
  states) from a YAML DFA description.
- Inspects a previously built table, reporting its size.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
