package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path     string
		expected Language
	}{
		{"analyzer.py", LanguagePython},
		{"app.js", LanguageJavaScript},
		{"util.mjs", LanguageJavaScript},
		{"App.jsx", LanguageJSX},
		{"/deep/path/module.py", LanguagePython},
		{"script.PY", LanguagePython}, // case insensitive
		{"INDEX.JS", LanguageJavaScript},
		{"README.md", LanguageUnknown},
		{"Makefile", LanguageUnknown},
		{"noext", LanguageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLanguage(tt.path))
		})
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"empty", "", 0},
		{"single line no newline", "x = 1", 1},
		{"single line with newline", "x = 1\n", 2},
		{"three lines", "a\nb\nc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countLines(tt.content))
		})
	}
}

func TestNew_UnknownLanguage(t *testing.T) {
	idx := New("notes.txt", "some plain text\nwith lines\n")

	assert.Equal(t, LanguageUnknown, idx.Language())
	assert.False(t, idx.Failed())

	s := idx.Summary()
	assert.Equal(t, 0, s.FunctionCount)
	assert.Equal(t, 0, s.ClassCount)
	assert.Equal(t, 0, s.ImportCount)
	assert.Equal(t, 0, s.VariableCount)
	assert.Equal(t, 0, s.CommentCount)
	assert.Empty(t, s.Metrics)
	assert.False(t, s.Failed)
}

func TestNew_EmptyContent(t *testing.T) {
	idx := New("empty.py", "")

	assert.Equal(t, 0, idx.LineCount())
	assert.False(t, idx.Failed())

	s := idx.Summary()
	assert.Equal(t, 0, s.FunctionCount)
	assert.InDelta(t, 0.0, s.Metrics["documentation_ratio"], 1e-9)
	assert.InDelta(t, 0.0, s.Metrics["comment_ratio"], 1e-9)
}

func TestNew_Idempotent(t *testing.T) {
	content := `import os

# module constant
GREETING = "hello"

def greet(name):
    """Say hello."""
    if name:
        return GREETING + name
    return GREETING
`
	first := New("greet.py", content)
	second := New("greet.py", content)

	assert.Equal(t, first.Detailed(), second.Detailed())
	assert.Equal(t, first.Summary(), second.Summary())
}

func TestNewFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0644))

	idx, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, LanguagePython, idx.Language())
	assert.Equal(t, 2, idx.LineCount())
	assert.Len(t, idx.Variables(), 1)
}

func TestNewFromFile_Missing(t *testing.T) {
	_, err := NewFromFile("/nonexistent/file.py")
	assert.Error(t, err)
}

func TestDetailed_EmptySlicesNotNil(t *testing.T) {
	d := New("empty.txt", "").Detailed()

	assert.NotNil(t, d.Functions)
	assert.NotNil(t, d.Classes)
	assert.NotNil(t, d.Imports)
	assert.NotNil(t, d.Variables)
	assert.NotNil(t, d.Comments)
}

func TestSummary_RatiosWithinBounds(t *testing.T) {
	contents := map[string]string{
		"empty.py":      "",
		"nodoc.py":      "def f():\n    pass\n",
		"alldoc.py":     "def f():\n    \"\"\"doc\"\"\"\n    pass\n",
		"plain.js":      "const x = 1;\n",
		"commenty.js":   "// a\n// b\n// c\n",
		"functions.jsx": "const App = () => {\n  return null;\n};\n",
	}

	for path, content := range contents {
		t.Run(path, func(t *testing.T) {
			s := New(path, content).Summary()
			for _, key := range []string{"documentation_ratio", "comment_ratio"} {
				v, ok := s.Metrics[key]
				require.True(t, ok, "metric %s missing", key)
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		})
	}
}
