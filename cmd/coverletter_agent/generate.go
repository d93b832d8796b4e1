package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/config"
	"github.com/jonathan/coverletter-agent/internal/pipeline"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter from your cached or newly supplied inputs",
	Long: `Walks through the resume, reference cover letter, job description, and
remarks, reusing cached values where you confirm them, then makes a single
generation call and writes the letter to a file.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	generateConfigPath string
	generateAPIKey     string
	generateModel      string
	generateCacheDir   string
	generateOutput     string
	generateJobURL     string
	generateVerbose    bool
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVar(&generateModel, "model", "", "Generation model name")
	generateCommand.Flags().StringVar(&generateCacheDir, "cache-dir", "", "Directory for cached inputs (defaults to the user cache directory)")
	generateCommand.Flags().StringVarP(&generateOutput, "out", "o", "", "Output file for the generated letter")
	generateCommand.Flags().StringVar(&generateJobURL, "job-url", "", "Fetch the job description from this URL instead of prompting")
	generateCommand.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCommand.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var, else prompted and cached)")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if generateConfigPath != "" {
		loadedCfg, err := config.LoadConfig(generateConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if generateVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", generateConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = generateAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = generateModel
	}
	if cmd.Flags().Changed("cache-dir") {
		cfg.CacheDir = generateCacheDir
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = generateOutput
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = generateJobURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = generateVerbose
	}

	// Step 3: API key fallback. An empty key is not an error here: the
	// pipeline prompts for it and caches the answer.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return pipeline.Run(ctx, pipeline.RunOptions{
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
		CacheDir: cfg.CacheDir,
		Output:   cfg.Output,
		JobURL:   cfg.JobURL,
		Verbose:  cfg.Verbose,
	})
}
