package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nihei9/ptable/compressor"
	"github.com/nihei9/ptable/internal/ptable"
)

func init() {
	cmd := &cobra.Command{
		Use:     "inspect <table.json>",
		Short:   "Print a built lexer table's size report",
		Example: `  ptable-build inspect table.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runInspect,
	}
	rootCmd.AddCommand(cmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	// A compressed artifact carries "merge_table"; a dense one carries
	// "merge_table_entries". Peek at which is present before committing
	// to a shape.
	var probe struct {
		MergeTableEntries json.RawMessage `json:"merge_table_entries"`
		MergeTable        json.RawMessage `json:"merge_table"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}

	var lexer *ptable.Lexer
	var buildID string
	if probe.MergeTable != nil {
		var doc compressor.Artifact
		if err := json.Unmarshal(data, &doc); err != nil {
			return errors.Wrapf(err, "parsing %s", path)
		}
		lexer = compressor.Decode(&doc)
		buildID = doc.BuildID
	} else {
		var doc ptable.ArtifactDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return errors.Wrapf(err, "parsing %s", path)
		}
		lexer = ptable.Decode(&doc)
		buildID = doc.BuildID
	}

	report := lexer.SizeReport()

	fmt.Printf("build id:            %s\n", buildID)
	fmt.Printf("parallel states:     %d\n", report.NumParallelStates)
	fmt.Printf("symbols:             %d\n", report.NumSymbols)
	fmt.Printf("merge table cells:   %d (%d x %d)\n", report.MergeTableCells, report.MergeTableSize, report.MergeTableSize)
	fmt.Printf("estimated footprint: %s\n", report.EstimatedBytesHuman)

	return nil
}
