package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/codelens-hq/codelens/internal/config"
	"github.com/codelens-hq/codelens/internal/llm"
	"github.com/codelens-hq/codelens/internal/review"
)

var version = "dev"

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:     "codelens",
		Short:   "CodeLens - static indexing and AI code quality scoring",
		Long:    `CodeLens indexes Python and JavaScript sources, computes quality metrics, and scores files with an LLM.`,
		Version: version,
	}

	rootCmd.AddCommand(indexCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(reviewCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newScorer loads credentials and builds a scorer for the configured
// provider
func newScorer(cfg *config.Config) (*review.Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	router := llm.NewRouter(cfg)
	client, err := router.Client("")
	if err != nil {
		return nil, err
	}
	return review.NewScorer(client), nil
}
