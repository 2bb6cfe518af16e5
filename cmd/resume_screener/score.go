package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/pipeline"
)

var (
	scoreDomain  string
	scoreNames   []string
	scoreWorkers int
	scoreConfig  string
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume.pdf ...]",
	Short: "Score and rank local resume PDFs",
	Long:  `Score one or more local PDF resumes against a hiring domain and print the ranked leaderboard.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreDomain, "domain", "", "Hiring domain to score against (overrides config file)")
	scoreCmd.Flags().StringSliceVar(&scoreNames, "name", nil, "Candidate name for each file, in order (defaults derive from filenames)")
	scoreCmd.Flags().IntVar(&scoreWorkers, "workers", 0, "Concurrent resume workers (overrides config file)")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(scoreConfig)
	if err != nil {
		return err
	}
	if scoreDomain != "" {
		cfg.Domain = scoreDomain
	}
	if scoreWorkers != 0 {
		cfg.Workers = scoreWorkers
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

	uploads := make([]pipeline.Upload, 0, len(args))
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		upload := pipeline.Upload{Filename: path, Data: data}
		if i < len(scoreNames) {
			upload.Name = scoreNames[i]
		}
		uploads = append(uploads, upload)
	}

	processor := pipeline.New(generator, pipeline.Options{Workers: cfg.Workers})

	result, err := processor.ProcessBatch(ctx, uploads, cfg.Domain)
	if err != nil {
		return fmt.Errorf("batch processing failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintLeaderboard(result.Ranked)
	printer.PrintSummary(result.Summary)

	return nil
}
