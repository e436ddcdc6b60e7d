package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/codelens-hq/codelens/internal/config"
	"github.com/codelens-hq/codelens/internal/github"
	"github.com/codelens-hq/codelens/internal/review"
	"github.com/codelens-hq/codelens/internal/workspace"
)

func reviewCmd() *cobra.Command {
	var (
		files    []string
		dir      string
		repoPath string
		baseRef  string
		model    string
		outDir   string
		prRef    string
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review a batch of files and write a Markdown report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			scorer, err := newScorer(cfg)
			if err != nil {
				return err
			}

			targets, err := resolveTargets(files, dir, repoPath, baseRef)
			if err != nil {
				return err
			}
			if len(targets) == 0 {
				fmt.Println("No source files to review.")
				return nil
			}

			bar := progressbar.Default(int64(len(targets)), "reviewing")
			summary := scorer.ReviewFiles(cmd.Context(), targets, model,
				func(string) { bar.Add(1) })
			bar.Finish()

			if err := review.SaveBatchSummary(summary, outDir); err != nil {
				return err
			}
			fmt.Printf("\nReviewed %d files, average score %.1f/100. Results in %s.\n",
				summary.FilesAnalyzed, summary.AverageScore, outDir)

			if prRef != "" {
				if err := postPRComment(cmd.Context(), cfg, prRef, summary.CommentText); err != nil {
					return err
				}
				fmt.Printf("Posted review comment to %s.\n", prRef)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "files", "f", nil, "Files to review")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to review (uses .codelens.yaml globs)")
	cmd.Flags().StringVar(&repoPath, "repo", "", "Git repository to review changed files in")
	cmd.Flags().StringVar(&baseRef, "base", "main", "Base ref to diff against with --repo")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to use for scoring")
	cmd.Flags().StringVarP(&outDir, "output", "o", "codelens-results", "Directory for the summary and comment files")
	cmd.Flags().StringVar(&prRef, "pr", "", "Pull request to comment on, as owner/repo#number")

	return cmd
}

// resolveTargets picks exactly one file source: an explicit list, a
// directory walk, or a git diff
func resolveTargets(files []string, dir, repoPath, baseRef string) ([]string, error) {
	switch {
	case len(files) > 0:
		return files, nil
	case dir != "":
		project, err := config.LoadProjectConfig(dir)
		if err != nil {
			return nil, err
		}
		return workspace.CollectFiles(dir, project.Include, project.Exclude)
	case repoPath != "":
		return workspace.ChangedFiles(repoPath, baseRef)
	}
	return nil, fmt.Errorf("one of --files, --dir, or --repo is required")
}

// postPRComment parses owner/repo#number and posts the batch comment
func postPRComment(ctx context.Context, cfg *config.Config, prRef, body string) error {
	if cfg.GitHubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN is required to post PR comments")
	}

	repoPart, numberPart, ok := strings.Cut(prRef, "#")
	if !ok {
		return fmt.Errorf("invalid --pr value %q, expected owner/repo#number", prRef)
	}
	owner, name, ok := strings.Cut(repoPart, "/")
	if !ok {
		return fmt.Errorf("invalid --pr value %q, expected owner/repo#number", prRef)
	}
	number, err := strconv.Atoi(numberPart)
	if err != nil {
		return fmt.Errorf("invalid PR number in %q: %w", prRef, err)
	}

	svc := github.NewCommentService(cfg.GitHubToken)
	_, err = svc.PostComment(ctx, owner, name, number, body)
	return err
}
