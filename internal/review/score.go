// Package review orchestrates LLM-backed quality scoring on top of the
// structural index: single-file scoring, batch runs, and report formatting.
package review

import (
	"encoding/json"
	"fmt"

	"github.com/codelens-hq/codelens/internal/llm"
)

// Breakdown carries per-category scores. Category maxima: naming 10,
// modularity 20, comments 20, formatting 15, reusability 15,
// best_practices 20.
type Breakdown struct {
	Naming        int `json:"naming"`
	Modularity    int `json:"modularity"`
	Comments      int `json:"comments"`
	Formatting    int `json:"formatting"`
	Reusability   int `json:"reusability"`
	BestPractices int `json:"best_practices"`
}

// ScoreCard is the validated quality assessment for one file
type ScoreCard struct {
	OverallScore    int       `json:"overall_score"`
	Breakdown       Breakdown `json:"breakdown"`
	Recommendations []string  `json:"recommendations"`
}

var breakdownKeys = []string{
	"naming", "modularity", "comments", "formatting", "reusability", "best_practices",
}

// ParseScoreJSON parses an LLM response into a ScoreCard. The response may
// be a bare JSON object or wrapped in a fenced code block. Every required
// top-level and breakdown key must be present.
func ParseScoreJSON(response string) (*ScoreCard, error) {
	raw := llm.ExtractJSON(response)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse response as JSON: %w", err)
	}

	for _, key := range []string{"overall_score", "breakdown", "recommendations"} {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("missing required key in response: %s", key)
		}
	}

	var breakdown map[string]json.RawMessage
	if err := json.Unmarshal(fields["breakdown"], &breakdown); err != nil {
		return nil, fmt.Errorf("failed to parse breakdown: %w", err)
	}
	for _, key := range breakdownKeys {
		if _, ok := breakdown[key]; !ok {
			return nil, fmt.Errorf("missing required breakdown key in response: %s", key)
		}
	}

	var card ScoreCard
	if err := json.Unmarshal([]byte(raw), &card); err != nil {
		return nil, fmt.Errorf("failed to parse score card: %w", err)
	}
	return &card, nil
}
