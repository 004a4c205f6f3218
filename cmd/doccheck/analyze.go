package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlaurier/doccheck/internal/analysis"
	"github.com/mlaurier/doccheck/internal/catalog"
	"github.com/mlaurier/doccheck/internal/config"
	"github.com/mlaurier/doccheck/internal/llm"
	"github.com/mlaurier/doccheck/internal/observability"
	"github.com/mlaurier/doccheck/internal/schemas"
	"github.com/mlaurier/doccheck/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a document's fields for statutory compliance",
	Long: `Evaluates extracted document fields against the requirement catalog for the
given document type, scores risk, and prints the full analysis as JSON.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeDocType    string
	analyzeFieldsPath string
	analyzeSchemaDir  string
	analyzeSummary    bool
	analyzeAPIKey     string
	analyzeVerbose    bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeDocType, "type", "t", "", "Document type: will, poa_property, or poa_personal_care")
	analyzeCommand.Flags().StringVarP(&analyzeFieldsPath, "fields", "f", "", "Path to JSON file with extracted document fields")
	analyzeCommand.Flags().StringVar(&analyzeSchemaDir, "schema-dir", "", "Directory with field JSON Schemas for advisory validation")
	analyzeCommand.Flags().BoolVar(&analyzeSummary, "summary", false, "Generate a plain-language summary of the result")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted report instead of raw JSON")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key for summaries (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("schema-dir") {
		cfg.SchemaDir = analyzeSchemaDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	cfg.ApplyEnv()

	if analyzeDocType == "" {
		return fmt.Errorf("--type is required")
	}
	if analyzeFieldsPath == "" {
		return fmt.Errorf("--fields is required")
	}

	rawFields, err := os.ReadFile(analyzeFieldsPath)
	if err != nil {
		return fmt.Errorf("failed to read fields file: %w", err)
	}
	var fields types.Fields
	if err := json.Unmarshal(rawFields, &fields); err != nil {
		return fmt.Errorf("fields file must contain a JSON object: %w", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load rule catalog: %w", err)
	}

	// Advisory schema validation; mismatches are warnings, never failures.
	if cfg.SchemaDir != "" {
		if dt, ok := types.ParseDocumentType(analyzeDocType); ok {
			if err := schemas.ValidateFields(cfg.SchemaDir, dt, rawFields); err != nil {
				for _, w := range schemas.Warnings(err) {
					fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
				}
			}
		}
	}

	engine := analysis.NewEngine(cat)
	outcome := engine.Analyze(analyzeDocType, fields)

	if outcome.Degraded {
		for _, reason := range outcome.Reasons {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", reason)
		}
	}

	var summary string
	if analyzeSummary {
		summarizer, err := llm.NewSummarizer(ctx, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create summarizer: %w", err)
		}
		defer func() { _ = summarizer.Close() }()

		summary, err = summarizer.Summarize(ctx, outcome.Result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: summary generation failed: %v\n", err)
		}
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAnalysis(&outcome.Result)
		if summary != "" {
			fmt.Printf("\n%s\n", summary)
		}
		return nil
	}

	output := struct {
		Result   types.AnalysisResult `json:"result"`
		Degraded bool                 `json:"degraded"`
		Reasons  []string             `json:"reasons,omitempty"`
		Summary  string               `json:"summary,omitempty"`
	}{
		Result:   outcome.Result,
		Degraded: outcome.Degraded,
		Reasons:  outcome.Reasons,
		Summary:  summary,
	}
	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

// loadMergedConfig loads an optional config file, returning an empty config
// when no path is given.
func loadMergedConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
