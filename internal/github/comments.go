// Package github posts review results back to GitHub pull requests.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CommentService posts comments on pull requests
type CommentService struct {
	token   string
	client  *http.Client
	baseURL string
}

// NewCommentService creates a new comment service
func NewCommentService(token string) *CommentService {
	return &CommentService{
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://api.github.com",
	}
}

// CommentResponse represents a created issue comment
type CommentResponse struct {
	ID      int    `json:"id"`
	HTMLURL string `json:"html_url"`
	Body    string `json:"body"`
}

// PostComment creates an issue comment on a pull request. PRs share the
// issue comment endpoint.
func (s *CommentService) PostComment(ctx context.Context, owner, repo string, prNumber int, body string) (*CommentResponse, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d/comments", s.baseURL, owner, repo, prNumber)

	payload := map[string]string{"body": body}
	data, _ := json.Marshal(payload)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	s.setHeaders(httpReq)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to post comment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 201 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to post comment: status %d: %s", resp.StatusCode, string(respBody))
	}

	var comment CommentResponse
	if err := json.NewDecoder(resp.Body).Decode(&comment); err != nil {
		return nil, fmt.Errorf("failed to decode comment response: %w", err)
	}

	return &comment, nil
}

func (s *CommentService) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("Content-Type", "application/json")
}
