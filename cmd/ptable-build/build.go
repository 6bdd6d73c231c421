package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nihei9/ptable/compressor"
	"github.com/nihei9/ptable/internal/dfaspec"
	"github.com/nihei9/ptable/internal/ptable"
)

var buildFlags = struct {
	output   *string
	compress *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "build <dfa.yaml>",
		Short:   "Build a parallel-scan lexer table from a DFA description",
		Example: `  ptable-build build dfa.yaml -o table.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runBuild,
	}
	buildFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	buildFlags.compress = cmd.Flags().Bool("compress", false, "row-deduplicate the merge table before writing it out")
	rootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	dfaPath := args[0]

	dfa, err := dfaspec.Load(dfaPath)
	if err != nil {
		return errors.Wrapf(err, "loading DFA description %s", dfaPath)
	}

	lexer, err := ptable.NewBuilder(dfa).Build(context.Background())
	if err != nil {
		return errors.Wrap(err, "building lexer table")
	}

	var doc interface{}
	if *buildFlags.compress {
		doc, err = compressor.Encode(lexer)
		if err != nil {
			return errors.Wrap(err, "compressing merge table")
		}
	} else {
		doc = lexer.Encode()
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding lexer table")
	}
	data = append(data, '\n')

	if *buildFlags.output == "" {
		_, err := os.Stdout.Write(data)
		return errors.Wrap(err, "writing table to stdout")
	}
	return errors.Wrapf(os.WriteFile(*buildFlags.output, data, 0644), "writing table to %s", *buildFlags.output)
}
