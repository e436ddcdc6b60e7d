package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/codelens-hq/codelens/internal/index"
)

// Prompt templates for code quality scoring

const scoreSchema = `Provide your assessment as a JSON object with the following structure:
{
  "overall_score": <integer between 0-100>,
  "breakdown": {
    "naming": <integer between 0-10>,
    "modularity": <integer between 0-20>,
    "comments": <integer between 0-20>,
    "formatting": <integer between 0-15>,
    "reusability": <integer between 0-15>,
    "best_practices": <integer between 0-20>
  },
  "recommendations": [
    <3-5 string recommendations for improving the code>
  ]
}

The recommendations should be specific, actionable, and clear, pointing to exact issues in the code.
Your response must be a valid JSON object and nothing else.`

var languageRules = map[index.Language]string{
	index.LanguagePython: `- Follow PEP 8 style guide
- Use snake_case for functions and variables
- Use CamelCase for classes
- Include docstrings for modules, classes, functions
- Limit line length to 79 characters
- Use 4 spaces for indentation
- Avoid global variables
- Use list/dict comprehensions where appropriate
- Properly handle exceptions
- Use descriptive variable names`,

	index.LanguageJavaScript: `- Use camelCase for variables and functions
- Use PascalCase for classes
- Use meaningful variable names
- Prefer const and let over var
- Use === and !== instead of == and !=
- Use arrow functions for callbacks
- Use template literals for string formatting
- Handle errors with try/catch
- Use semicolons consistently
- Prefer ES6+ features`,

	index.LanguageJSX: `- Use functional components with hooks when possible
- Keep components small and focused
- Use PascalCase for component names
- Use camelCase for props and state
- Destructure props and state
- Use proper key props when rendering lists
- Avoid inline styles
- Extract reusable logic into custom hooks
- Handle side effects properly in useEffect
- Avoid prop drilling with Context or state management`,
}

// LanguageRules returns the coding standards text for a language
func LanguageRules(lang index.Language) string {
	if rules, ok := languageRules[lang]; ok {
		return rules
	}
	return "No specific rules available for this language"
}

// ScoreSystemPrompt builds the scoring system prompt enriched with the
// structural facts the indexer extracted from the file
func ScoreSystemPrompt(s index.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert code reviewer specializing in %s and clean code practices.
Analyze the provided code and score it based on the following criteria:

1. Naming conventions (10 points): Variable and function naming clarity and consistency
2. Function length and modularity (20 points): How well functions are broken down and organized
3. Comments and documentation (20 points): Presence and quality of comments and docstrings
4. Formatting/indentation (15 points): Consistency and readability of code layout
5. Reusability and DRY (15 points): Avoiding repetition and promoting reuse
6. Best practices in web dev (20 points): Following language-specific and web development best practices

Code structure information:
- File: %s
- Language: %s
- Lines of code: %d
- Functions: %d
- Classes: %d
- Imports: %d
- Variables: %d
- Comments: %d
`, s.Language, s.Path, s.Language, s.LineCount, s.FunctionCount, s.ClassCount,
		s.ImportCount, s.VariableCount, s.CommentCount)

	if len(s.Metrics) > 0 {
		b.WriteString("\nMetrics:\n")
		keys := make([]string, 0, len(s.Metrics))
		for k := range s.Metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %g\n", k, s.Metrics[k])
		}
	}

	b.WriteString("\n")
	b.WriteString(scoreSchema)
	return b.String()
}

// ScoreHumanPrompt builds the user prompt carrying the code itself and the
// language-specific best practices
func ScoreHumanPrompt(content string, s index.Summary) string {
	return fmt.Sprintf(`Please analyze this %s code:

`+"```"+`
%s
`+"```"+`

Consider these %s best practices:
%s

Provide a comprehensive analysis with specific recommendations. The focus should be on:
1. Naming conventions and consistency
2. Function length and modularity
3. Quality of comments and documentation
4. Code formatting and readability
5. Code reusability and DRY principles
6. Adherence to %s best practices

The recommendations should be specific to this code and clearly actionable.`,
		s.Language, content, s.Language, LanguageRules(s.Language), s.Language)
}

// ExtractJSON pulls a JSON object out of an LLM response. It tries the raw
// text first, then falls back to a fenced ```json block.
func ExtractJSON(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "{") {
		return response
	}

	if start := strings.Index(response, "```json"); start >= 0 {
		rest := response[start+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}

	if start := strings.Index(response, "```"); start >= 0 {
		rest := response[start+3:]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}

	return response
}
