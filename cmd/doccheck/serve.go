package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlaurier/doccheck/internal/llm"
	"github.com/mlaurier/doccheck/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the doccheck HTTP API server",
	Long: `Serves the compliance analysis over HTTP. Without a database URL the
server runs stateless with an open /analyze endpoint; with one, analyses
are persisted per authenticated user.`,
	RunE: runServeCmd,
}

var (
	serveConfigPath  string
	servePort        int
	serveDatabaseURL string
	serveSchemaDir   string
	serveAPIKey      string
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	serveCommand.Flags().IntVarP(&servePort, "port", "p", 8080, "HTTP listen port")
	serveCommand.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCommand.Flags().StringVar(&serveSchemaDir, "schema-dir", "", "Directory with field JSON Schemas for advisory validation")
	serveCommand.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key for summaries (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDatabaseURL
	}
	if cmd.Flags().Changed("schema-dir") {
		cfg.SchemaDir = serveSchemaDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = serveAPIKey
	}
	cfg.ApplyEnv()

	summarizer, err := llm.NewSummarizer(ctx, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create summarizer: %w", err)
	}
	defer func() { _ = summarizer.Close() }()

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		SchemaDir:   cfg.SchemaDir,
		Summarizer:  summarizer,
	})
	if err != nil {
		return err
	}
	return srv.Run()
}
