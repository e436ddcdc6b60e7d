package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Pool_Nil(t *testing.T) {
	db := &DB{pool: nil}
	assert.Nil(t, db.Pool())
}

func TestAnalysis_JSONRoundTrip(t *testing.T) {
	a := Analysis{
		ID:        uuid.New(),
		Path:      "src/app.py",
		Language:  "python",
		Summary:   json.RawMessage(`{"line_count": 12}`),
		Score:     json.RawMessage(`{"overall_score": 80}`),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var got Analysis
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.Path, got.Path)
	assert.JSONEq(t, string(a.Summary), string(got.Summary))
}

func TestAnalysis_OmitsEmptyScore(t *testing.T) {
	a := Analysis{ID: uuid.New(), Path: "a.js", Language: "javascript", Summary: json.RawMessage(`{}`)}

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"score"`)
}
