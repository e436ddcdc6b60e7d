package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamingClassification(t *testing.T) {
	tests := []struct {
		name    string
		matcher func(string) bool
		input   string
		want    bool
	}{
		{"snake matches", IsSnakeCase, "calculate_average", true},
		{"snake rejects pascal", IsSnakeCase, "CalculateAverage", false},
		{"snake rejects camel", IsSnakeCase, "calculateAverage", false},
		{"snake allows digits", IsSnakeCase, "parse_v2", true},
		{"snake rejects leading underscore", IsSnakeCase, "_private", false},
		{"camel matches", IsCamelCase, "calculateAverage", true},
		{"camel rejects snake", IsCamelCase, "calculate_average", false},
		{"camel allows plain lower", IsCamelCase, "total", true},
		{"pascal matches", IsPascalCase, "GoodClass", true},
		{"pascal rejects camel", IsPascalCase, "badClassNaming", false},
		{"pascal rejects snake", IsPascalCase, "bad_class", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher(tt.input))
		})
	}
}

func TestAvgMax(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		wantAvg float64
		wantMax float64
	}{
		{"empty", nil, 0, 0},
		{"single", []int{7}, 7, 7},
		{"several", []int{2, 4, 6}, 4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avg, maxVal := avgMax(tt.values)
			assert.InDelta(t, tt.wantAvg, avg, 1e-9)
			assert.InDelta(t, tt.wantMax, maxVal, 1e-9)
		})
	}
}

func TestComputeMetrics_ZeroFunctions(t *testing.T) {
	b := newBuilder()
	m := computeMetrics(LanguagePython, b, 10)

	assert.InDelta(t, 0.0, m["total_functions"], 1e-9)
	assert.InDelta(t, 0.0, m["avg_function_length"], 1e-9)
	assert.InDelta(t, 0.0, m["max_function_length"], 1e-9)
	assert.InDelta(t, 0.0, m["avg_complexity"], 1e-9)
	assert.InDelta(t, 0.0, m["max_complexity"], 1e-9)
	assert.InDelta(t, 0.0, m["documentation_ratio"], 1e-9)
}

func TestComputeMetrics_SkipsUnknownBounds(t *testing.T) {
	b := newBuilder()
	b.functions = append(b.functions,
		Function{Name: "withBounds", StartLine: 1, EndLine: 10, Complexity: 3},
		Function{Name: "Component", StartLine: 12, Kind: KindComponent}, // no end line, no complexity
	)
	m := computeMetrics(LanguageJSX, b, 20)

	assert.InDelta(t, 2.0, m["total_functions"], 1e-9)
	assert.InDelta(t, 10.0, m["avg_function_length"], 1e-9)
	assert.InDelta(t, 10.0, m["max_function_length"], 1e-9)
	assert.InDelta(t, 3.0, m["avg_complexity"], 1e-9)
	assert.InDelta(t, 1.0, m["react_components"], 1e-9)
}

func TestComputeMetrics_CommentRatioFloorsLineCount(t *testing.T) {
	b := newBuilder()
	b.comments = append(b.comments, Comment{Text: "c", Line: 1, Kind: CommentSingle})

	m := computeMetrics(LanguageJavaScript, b, 0)
	assert.InDelta(t, 1.0, m["comment_ratio"], 1e-9)
}
