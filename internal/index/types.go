package index

import "fmt"

// Language identifies a supported source language
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageJSX        Language = "jsx"
	LanguageUnknown    Language = "unknown"
)

// FunctionKind tags how a function fact was recognized
type FunctionKind string

const (
	KindFunction  FunctionKind = "function"
	KindArrow     FunctionKind = "arrow_function"
	KindComponent FunctionKind = "component"
)

// CommentKind classifies an extracted comment
type CommentKind string

const (
	CommentSingle   CommentKind = "single_line"
	CommentBlock    CommentKind = "block"
	CommentDocBlock CommentKind = "doc_block"
)

// Function represents one extracted function fact.
// EndLine is 0 when the extractor could not determine the body end
// (component-style lexical matches only). Complexity is 0 when the
// extractor does not estimate complexity for that match.
type Function struct {
	Name       string       `json:"name"`
	StartLine  int          `json:"line_start"`
	EndLine    int          `json:"line_end,omitempty"`
	Params     []string     `json:"args,omitempty"`
	HasDoc     bool         `json:"has_docstring"`
	Complexity int          `json:"complexity,omitempty"`
	Kind       FunctionKind `json:"type,omitempty"`
}

// Class represents one extracted class fact. Methods holds the names of
// direct-child function definitions in source order; lexical extraction
// leaves it empty.
type Class struct {
	Name      string   `json:"name"`
	StartLine int      `json:"line_start"`
	EndLine   int      `json:"line_end"`
	Methods   []string `json:"methods,omitempty"`
	HasDoc    bool     `json:"has_docstring"`
}

// Import represents one imported name. Name is empty for side-effect-only
// imports; From is empty for plain `import X` statements.
type Import struct {
	Name  string `json:"name,omitempty"`
	Alias string `json:"alias,omitempty"`
	From  string `json:"from,omitempty"`
	Line  int    `json:"line"`
}

// Variable represents one captured variable declaration. Type is one of the
// closed inferred-type set for the language family (`call:<name>` tags
// Python call expressions, a bare constructor name tags JS `new X(...)`).
type Variable struct {
	Name string `json:"name"`
	Line int    `json:"line"`
	Type string `json:"type"`
}

// Comment represents one extracted comment. Single-line comments carry Line;
// block and doc-block comments carry StartLine/EndLine.
type Comment struct {
	Text      string      `json:"text"`
	Line      int         `json:"line,omitempty"`
	StartLine int         `json:"line_start,omitempty"`
	EndLine   int         `json:"line_end,omitempty"`
	Kind      CommentKind `json:"kind"`
}

// Metrics maps metric names to numeric values. The key set is closed and
// language-family-specific; values are fractions for ratio metrics.
type Metrics map[string]float64

// Summary is the cheap, serializable view of one analyzed file. This shape
// is the stable contract consumed by the API and prompt layers.
type Summary struct {
	Path          string   `json:"path"`
	Language      Language `json:"language"`
	LineCount     int      `json:"line_count"`
	FunctionCount int      `json:"function_count"`
	ClassCount    int      `json:"class_count"`
	ImportCount   int      `json:"import_count"`
	VariableCount int      `json:"variable_count"`
	CommentCount  int      `json:"comment_count"`
	Metrics       Metrics  `json:"metrics"`
	Failed        bool     `json:"failed,omitempty"`
	ParseError    string   `json:"parse_error,omitempty"`
}

/// Detail is the full view: summary plus per-construct fact lists
type Detail struct {
	Summary
	Functions []Function `json:"functions"`
	Classes   []Class    `json:"classes"`
	Imports   []Import   `json:"imports"`
	Variables []Variable `json:"variables"`
	Comments  []Comment  `json:"comments"`
}

// ParseError reports a structural parse failure for a single file. It is a
// per-file, non-fatal outcome: the Index carries it alongside an empty fact
// set instead of aborting the caller's batch.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Line, e.Column)
	}
	return e.Message
}

// builder accumulates facts during a single Index construction. It is never
// exposed outside New; the populated slices are frozen into the Index and
// the builder is discarded.
type builder struct {
	functions []Function
	classes   []Class
	imports   []Import
	variables []Variable
	comments  []Comment
}

func newBuilder() *builder {
	return &builder{
		functions: make([]Function, 0),
		classes:   make([]Class, 0),
		imports:   make([]Import, 0),
		variables: make([]Variable, 0),
		comments:  make([]Comment, 0),
	}
}
