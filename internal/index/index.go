// Package index is a multi-language static source indexer. It parses one
// source file, extracts structural facts (functions, classes, imports,
// variables, comments) and computes derived metrics, exposing them through a
// language-agnostic summary/detail schema. Python files are walked via a
// real syntax tree; JavaScript and JSX are reconstructed lexically with
// best-effort pattern matching.
package index

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Index owns the full analysis of one source file. Construction is the only
// mutation window: once New returns, the fact set and metrics are frozen.
// Re-analysis means constructing a new Index. Index values share no state,
// so independent files may be indexed concurrently without coordination.
type Index struct {
	path      string
	language  Language
	content   string
	lineCount int

	functions []Function
	classes   []Class
	imports   []Import
	variables []Variable
	comments  []Comment
	metrics   Metrics

	parseErr *ParseError
}

// NewFromFile reads a file and indexes its content
func NewFromFile(path string) (*Index, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return New(path, string(content)), nil
}

// New indexes source content. It never returns an error: an unknown
// language yields an empty fact set, and a structural parse failure is
// recorded on the Index and reported through Summary.
func New(path, content string) *Index {
	idx := &Index{
		path:      path,
		language:  DetectLanguage(path),
		content:   content,
		lineCount: countLines(content),
		metrics:   Metrics{},
	}

	b := newBuilder()
	switch idx.language {
	case LanguagePython:
		if perr := scanPython(content, b); perr != nil {
			idx.parseErr = perr
			log.Warn().Str("path", path).Str("reason", perr.Error()).Msg("parse failed, facts skipped")
			return idx
		}
	case LanguageJavaScript, LanguageJSX:
		scanLexical(content, idx.language, b)
	default:
		return idx
	}

	idx.functions = b.functions
	idx.classes = b.classes
	idx.imports = b.imports
	idx.variables = b.variables
	idx.comments = b.comments
	idx.metrics = computeMetrics(idx.language, b, idx.lineCount)
	return idx
}

// Path returns the analyzed file path
func (idx *Index) Path() string { return idx.path }

// Language returns the classified language
func (idx *Index) Language() Language { return idx.language }

// Content returns the raw analyzed content
func (idx *Index) Content() string { return idx.content }

// LineCount returns the number of physical lines in the content
func (idx *Index) LineCount() int { return idx.lineCount }

// Functions returns the extracted function facts
func (idx *Index) Functions() []Function { return idx.functions }

// Classes returns the extracted class facts
func (idx *Index) Classes() []Class { return idx.classes }

// Imports returns the extracted import facts
func (idx *Index) Imports() []Import { return idx.imports }

// Variables returns the captured variable facts
func (idx *Index) Variables() []Variable { return idx.variables }

// Comments returns the extracted comment facts
func (idx *Index) Comments() []Comment { return idx.comments }

// Metrics returns the derived metrics table
func (idx *Index) Metrics() Metrics { return idx.metrics }

// Failed reports whether structural parsing failed for this file
func (idx *Index) Failed() bool { return idx.parseErr != nil }

// ParseErr returns the recorded parse failure, or nil
func (idx *Index) ParseErr() *ParseError { return idx.parseErr }

// Summary returns the counts-only view of the analysis
func (idx *Index) Summary() Summary {
	s := Summary{
		Path:          idx.path,
		Language:      idx.language,
		LineCount:     idx.lineCount,
		FunctionCount: len(idx.functions),
		ClassCount:    len(idx.classes),
		ImportCount:   len(idx.imports),
		VariableCount: len(idx.variables),
		CommentCount:  len(idx.comments),
		Metrics:       idx.metrics,
	}
	if idx.parseErr != nil {
		s.Failed = true
		s.ParseError = idx.parseErr.Error()
	}
	return s
}

// Detailed returns the summary plus the full fact lists
func (idx *Index) Detailed() Detail {
	d := Detail{
		Summary:   idx.Summary(),
		Functions: idx.functions,
		Classes:   idx.classes,
		Imports:   idx.imports,
		Variables: idx.variables,
		Comments:  idx.comments,
	}
	if d.Functions == nil {
		d.Functions = make([]Function, 0)
	}
	if d.Classes == nil {
		d.Classes = make([]Class, 0)
	}
	if d.Imports == nil {
		d.Imports = make([]Import, 0)
	}
	if d.Variables == nil {
		d.Variables = make([]Variable, 0)
	}
	if d.Comments == nil {
		d.Comments = make([]Comment, 0)
	}
	return d
}

// countLines returns line-break count plus one for non-empty content,
// and 0 for empty content
func countLines(content string) int {
	if content == "" {
		return 0
	}
	count := 1
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			count++
		}
	}
	return count
}
