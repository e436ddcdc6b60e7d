package review

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SaveResults writes a score card to a timestamped JSON file in outDir and
// returns the path written
func SaveResults(card *ScoreCard, sourcePath, outDir string) (string, error) {
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	timestamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s_%s_analysis.json", filepath.Base(sourcePath), timestamp)
	outPath := filepath.Join(outDir, name)

	data, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write results: %w", err)
	}

	return outPath, nil
}

// SaveBatchSummary writes a batch summary to summary.json and its Markdown
// comment to comment.md under outDir
func SaveBatchSummary(summary *BatchSummary, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "summary.json"), data, 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "comment.md"), []byte(summary.CommentText), 0o644); err != nil {
		return fmt.Errorf("failed to write comment: %w", err)
	}
	return nil
}
