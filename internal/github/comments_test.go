package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostComment(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CommentResponse{
			ID:      42,
			HTMLURL: "https://github.com/acme/widgets/pull/7#issuecomment-42",
			Body:    gotBody["body"],
		})
	}))
	defer server.Close()

	svc := NewCommentService("gh-token")
	svc.baseURL = server.URL

	comment, err := svc.PostComment(context.Background(), "acme", "widgets", 7, "## Code Quality Analysis")
	require.NoError(t, err)

	assert.Equal(t, "/repos/acme/widgets/issues/7/comments", gotPath)
	assert.Equal(t, "Bearer gh-token", gotAuth)
	assert.Equal(t, "## Code Quality Analysis", gotBody["body"])
	assert.Equal(t, 42, comment.ID)
}

func TestPostComment_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Bad credentials"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewCommentService("bad-token")
	svc.baseURL = server.URL

	_, err := svc.PostComment(context.Background(), "acme", "widgets", 7, "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
