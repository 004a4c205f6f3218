package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mlaurier/doccheck/internal/analysis"
	"github.com/mlaurier/doccheck/internal/catalog"
	"github.com/mlaurier/doccheck/internal/types"
)

var batchCommand = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Analyze multiple documents in parallel",
	Long: `Runs the compliance analysis over a set of document files. Each file must
contain a JSON object with "document_type" and "fields" keys. Results are
printed as a JSON array in input order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatchCmd,
}

var batchConcurrency int

func init() {
	batchCommand.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum number of documents analyzed at once")

	rootCmd.AddCommand(batchCommand)
}

// batchInput is the shape of each batch file.
type batchInput struct {
	DocumentType string       `json:"document_type"`
	Fields       types.Fields `json:"fields"`
}

// batchResult pairs an input file with its analysis.
type batchResult struct {
	File     string               `json:"file"`
	Result   types.AnalysisResult `json:"result"`
	Degraded bool                 `json:"degraded"`
	Reasons  []string             `json:"reasons,omitempty"`
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load rule catalog: %w", err)
	}
	engine := analysis.NewEngine(cat)

	results := make([]batchResult, len(args))

	var g errgroup.Group
	g.SetLimit(batchConcurrency)
	for i, path := range args {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			var input batchInput
			if err := json.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("%s must contain a JSON object with document_type and fields: %w", path, err)
			}

			outcome := engine.Analyze(input.DocumentType, input.Fields)
			results[i] = batchResult{
				File:     path,
				Result:   outcome.Result,
				Degraded: outcome.Degraded,
				Reasons:  outcome.Reasons,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
