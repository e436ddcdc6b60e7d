package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/codelens-hq/codelens/internal/index"
	"github.com/codelens-hq/codelens/internal/review"
	"github.com/codelens-hq/codelens/internal/store"
)

const maxUploadSize = 32 << 20

// AnalysisResponse is the API response for an analyzed file
type AnalysisResponse struct {
	ID      *uuid.UUID        `json:"id,omitempty"`
	Summary index.Summary     `json:"summary"`
	Score   *review.ScoreCard `json:"score,omitempty"`
}

func unsupportedTypeMessage(ext string) string {
	return fmt.Sprintf("Unsupported file type: %s. Supported types: %s",
		ext, strings.Join(index.SupportedExtensions(), ", "))
}

// analyzeUpload handles multipart uploads. The file is staged under a
// uuid name so concurrent uploads of the same filename cannot collide,
// and removed once analyzed.
func (s *Server) analyzeUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if index.DetectLanguage(header.Filename) == index.LanguageUnknown {
		respondError(w, http.StatusBadRequest, unsupportedTypeMessage(ext))
		return
	}

	tempPath := filepath.Join(s.cfg.UploadDir, uuid.New().String()+ext)
	temp, err := os.Create(tempPath)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to stage upload")
		return
	}
	defer os.Remove(tempPath)

	if _, err := io.Copy(temp, file); err != nil {
		temp.Close()
		respondError(w, http.StatusInternalServerError, "failed to stage upload")
		return
	}
	temp.Close()

	content, err := os.ReadFile(tempPath)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	idx := index.New(header.Filename, string(content))
	s.respondAnalysis(r.Context(), w, idx, r.FormValue("model"))
}

// analyzePath analyzes a file already on the server's filesystem
func (s *Server) analyzePath(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}

	path := r.FormValue("file_path")
	if path == "" {
		respondError(w, http.StatusBadRequest, "file_path is required")
		return
	}

	if _, err := os.Stat(path); err != nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("File not found: %s", path))
		return
	}

	if index.DetectLanguage(path) == index.LanguageUnknown {
		respondError(w, http.StatusBadRequest, unsupportedTypeMessage(strings.ToLower(filepath.Ext(path))))
		return
	}

	idx, err := index.NewFromFile(path)
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Analysis failed: %s", err))
		return
	}

	s.respondAnalysis(r.Context(), w, idx, r.FormValue("model"))
}

// respondAnalysis scores when a scorer is configured, persists when a store
// is configured, and always returns the index summary. A source-level parse
// failure is part of the summary, not an HTTP error.
func (s *Server) respondAnalysis(ctx context.Context, w http.ResponseWriter, idx *index.Index, model string) {
	resp := AnalysisResponse{Summary: idx.Summary()}

	if s.scorer != nil && !idx.Failed() {
		card, err := s.scorer.Score(ctx, idx, model)
		if err != nil {
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("Analysis failed: %s", err))
			return
		}
		resp.Score = card
	}

	if s.store != nil {
		if id, err := s.saveAnalysis(ctx, resp); err != nil {
			log.Error().Err(err).Str("path", idx.Path()).Msg("failed to persist analysis")
		} else {
			resp.ID = &id
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) saveAnalysis(ctx context.Context, resp AnalysisResponse) (uuid.UUID, error) {
	summaryJSON, err := json.Marshal(resp.Summary)
	if err != nil {
		return uuid.Nil, err
	}

	record := &store.Analysis{
		Path:     resp.Summary.Path,
		Language: string(resp.Summary.Language),
		Summary:  summaryJSON,
	}
	if resp.Score != nil {
		scoreJSON, err := json.Marshal(resp.Score)
		if err != nil {
			return uuid.Nil, err
		}
		record.Score = scoreJSON
	}

	if err := s.store.SaveAnalysis(ctx, record); err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

func (s *Server) listAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	analyses, err := s.store.ListAnalyses(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if analyses == nil {
		analyses = []*store.Analysis{}
	}

	respondJSON(w, http.StatusOK, analyses)
}

func (s *Server) getAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "analysisID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}
	if analysis == nil {
		respondError(w, http.StatusNotFound, "analysis not found")
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}
