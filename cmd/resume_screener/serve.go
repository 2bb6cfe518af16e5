package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring and ranking resume batches.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config file)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfig)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	apiKey := resolveAPIKey(cfg)
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	generator, err := llm.NewGenerator(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM generator: %w", err)
	}
	defer generator.Close() //nolint:errcheck // best-effort cleanup on exit

	processor := pipeline.New(generator, pipeline.Options{Workers: cfg.Workers})

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		DefaultDomain:  cfg.Domain,
		MaxUploadBytes: int64(cfg.MaxUploadMB) << 20,
		Processor:      processor,
		Generator:      generator,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadConfig loads the optional config file and fills gaps with defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Defaults(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg.MergeWithDefaults(config.Defaults()), nil
}

// resolveAPIKey prefers the environment over the config file.
func resolveAPIKey(cfg config.Config) string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return cfg.APIKey
}
