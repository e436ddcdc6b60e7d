package review

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// BatchSummary aggregates the results of reviewing several files
type BatchSummary struct {
	FilesAnalyzed int                    `json:"files_analyzed"`
	AverageScore  float64                `json:"average_score"`
	Results       map[string]*FileReview `json:"results"`
	CommentText   string                 `json:"comment_text"`
}

// ProgressFunc is called after each file is processed
type ProgressFunc func(path string)

// ReviewFiles scores every file in the list. Missing files are skipped,
// per-file failures are recorded in the comment text and the batch continues.
func (s *Scorer) ReviewFiles(ctx context.Context, files []string, model string, progress ProgressFunc) *BatchSummary {
	summary := &BatchSummary{
		Results: make(map[string]*FileReview),
	}

	var comment strings.Builder
	comment.WriteString("# Code Quality Analysis Results 🔍\n\n")

	totalScore := 0
	for _, path := range files {
		if _, err := os.Stat(path); err != nil {
			log.Warn().Str("path", path).Msg("skipping missing file")
			continue
		}

		result, err := s.ScoreFile(ctx, path, model)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("file review failed")
			fmt.Fprintf(&comment, "Error analyzing %s: %s\n\n", path, err)
			summary.Results[path] = &FileReview{Path: path, Error: err.Error()}
			if progress != nil {
				progress(path)
			}
			continue
		}

		summary.FilesAnalyzed++
		totalScore += result.Score.OverallScore
		summary.Results[path] = result

		comment.WriteString(FormatFileComment(path, result.Score))
		comment.WriteString("\n\n---\n\n")

		if progress != nil {
			progress(path)
		}
	}

	if summary.FilesAnalyzed > 0 {
		summary.AverageScore = float64(totalScore) / float64(summary.FilesAnalyzed)
	}

	fmt.Fprintf(&comment, "\n\n_Analysis performed on %d files with an average score of %.1f/100._\n",
		summary.FilesAnalyzed, summary.AverageScore)
	comment.WriteString("\n_Generated by CodeLens_")

	summary.CommentText = comment.String()
	return summary
}
