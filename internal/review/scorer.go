package review

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/codelens-hq/codelens/internal/index"
	"github.com/codelens-hq/codelens/internal/llm"
)

// FileReview is the result of indexing and scoring one file
type FileReview struct {
	Path    string        `json:"path"`
	Summary index.Summary `json:"summary"`
	Score   *ScoreCard    `json:"score,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// Scorer indexes a file and asks an LLM for a quality assessment
type Scorer struct {
	client llm.Client
}

// NewScorer creates a scorer backed by the given LLM client
func NewScorer(client llm.Client) *Scorer {
	return &Scorer{client: client}
}

// Score asks the LLM to assess an already-indexed file
func (s *Scorer) Score(ctx context.Context, idx *index.Index, model string) (*ScoreCard, error) {
	summary := idx.Summary()
	req := &llm.Request{
		Model:  model,
		System: llm.ScoreSystemPrompt(summary),
		Messages: []llm.Message{
			{Role: "user", Content: llm.ScoreHumanPrompt(idx.Content(), summary)},
		},
	}

	resp, err := s.client.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("llm scoring failed: %w", err)
	}

	log.Debug().
		Str("path", idx.Path()).
		Str("model", resp.Model).
		Bool("cached", resp.Cached).
		Int("input_tokens", resp.InputTokens).
		Int("output_tokens", resp.OutputTokens).
		Msg("score response received")

	return ParseScoreJSON(resp.Content)
}

// ScoreFile indexes the file at path and scores it
func (s *Scorer) ScoreFile(ctx context.Context, path, model string) (*FileReview, error) {
	idx, err := index.NewFromFile(path)
	if err != nil {
		return nil, err
	}

	card, err := s.Score(ctx, idx, model)
	if err != nil {
		return nil, err
	}

	return &FileReview{
		Path:    path,
		Summary: idx.Summary(),
		Score:   card,
	}, nil
}
