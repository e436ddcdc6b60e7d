package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codelens-hq/codelens/internal/config"
	"github.com/codelens-hq/codelens/internal/index"
	"github.com/codelens-hq/codelens/internal/review"
)

func analyzeCmd() *cobra.Command {
	var (
		model   string
		save    bool
		noScore bool
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a source file and score it with an LLM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if noScore {
				idx, err := index.NewFromFile(path)
				if err != nil {
					return err
				}
				data, err := json.MarshalIndent(idx.Summary(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			scorer, err := newScorer(cfg)
			if err != nil {
				return err
			}

			result, err := scorer.ScoreFile(context.Background(), path, model)
			if err != nil {
				return err
			}

			fmt.Print(review.FormatPrintable(path, result.Score))

			if save {
				outPath, err := review.SaveResults(result.Score, path, outDir)
				if err != nil {
					return err
				}
				fmt.Printf("\nResults saved to: %s\n", outPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to use for scoring (defaults to the provider's model)")
	cmd.Flags().BoolVar(&save, "save", false, "Save results to a timestamped JSON file")
	cmd.Flags().BoolVar(&noScore, "no-score", false, "Skip LLM scoring and print the index summary")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "Directory for saved results")

	return cmd
}
