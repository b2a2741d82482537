// Package main provides the entry point for the citation_agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/citation-formatter/internal/config"
)

var (
	verbose    bool
	configPath string

	// settings is resolved once per invocation in PersistentPreRunE
	settings = config.Defaults()

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "citation_agent",
	Short: "MLA citation formatter",
	Long:  "citation_agent formats citation records as MLA in-text citations and works-cited entries, and checks the output against the no-page rules.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		resolved, err := loadSettings(configPath, os.LookupEnv)
		if err != nil {
			return err
		}
		settings = resolved
		if settings.Verbose {
			verbose = true
		}
		logger.Debug("Settings resolved",
			zap.String("style", settings.Style),
			zap.String("output_format", settings.OutputFormat),
			zap.String("template", settings.Template))
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
}

// loadSettings layers defaults, the optional config file and CITATION_* env vars
func loadSettings(path string, lookup func(string) (string, bool)) (config.Config, error) {
	cfg := config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return config.Config{}, err
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
