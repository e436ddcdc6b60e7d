package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScoreJSON = `{
	"overall_score": 78,
	"breakdown": {
		"naming": 8,
		"modularity": 15,
		"comments": 14,
		"formatting": 12,
		"reusability": 11,
		"best_practices": 18
	},
	"recommendations": [
		"Add docstrings to helper functions",
		"Split process_all into smaller functions",
		"Replace magic numbers with named constants"
	]
}`

func TestParseScoreJSON(t *testing.T) {
	card, err := ParseScoreJSON(validScoreJSON)
	require.NoError(t, err)

	assert.Equal(t, 78, card.OverallScore)
	assert.Equal(t, 8, card.Breakdown.Naming)
	assert.Equal(t, 15, card.Breakdown.Modularity)
	assert.Equal(t, 14, card.Breakdown.Comments)
	assert.Equal(t, 12, card.Breakdown.Formatting)
	assert.Equal(t, 11, card.Breakdown.Reusability)
	assert.Equal(t, 18, card.Breakdown.BestPractices)
	assert.Len(t, card.Recommendations, 3)
}

func TestParseScoreJSON_FencedBlock(t *testing.T) {
	card, err := ParseScoreJSON("Here is the assessment:\n```json\n" + validScoreJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, 78, card.OverallScore)
}

func TestParseScoreJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "not json",
			input:   "I cannot assess this file.",
			wantErr: "failed to parse response as JSON",
		},
		{
			name:    "missing overall_score",
			input:   `{"breakdown": {}, "recommendations": []}`,
			wantErr: "missing required key in response: overall_score",
		},
		{
			name:    "missing recommendations",
			input:   `{"overall_score": 50, "breakdown": {}}`,
			wantErr: "missing required key in response: recommendations",
		},
		{
			name: "missing breakdown key",
			input: `{"overall_score": 50, "recommendations": [],
				"breakdown": {"naming": 5, "modularity": 10, "comments": 10,
					"formatting": 8, "reusability": 8}}`,
			wantErr: "missing required breakdown key in response: best_practices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScoreJSON(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
