package index

import (
	"regexp"
	"strings"
)

// Pattern-based extraction for the JavaScript family. Best-effort by design:
// a construct matched by two patterns yields two facts, and boundaries come
// from a brace-depth scan rather than a grammar.
var (
	jsFuncPatterns = []*regexp.Regexp{
		// Regular function declarations
		regexp.MustCompile(`function\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\([^)]*\)\s*\{`),
		// Named function expressions
		regexp.MustCompile(`(?:const|let|var)\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*=\s*function\s*\([^)]*\)\s*\{`),
		// Arrow function assignments
		regexp.MustCompile(`(?:const|let|var)\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*=\s*\([^)]*\)\s*=>\s*[{(]`),
	}

	jsClassPattern = regexp.MustCompile(`class\s+([a-zA-Z_$][a-zA-Z0-9_$]*)`)

	jsNamedImportPattern   = regexp.MustCompile(`import\s+\{([^}]+)\}\s+from\s+['"]([^'"]+)['"]`)
	jsDefaultImportPattern = regexp.MustCompile(`import\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s+from\s+['"]([^'"]+)['"]`)
	jsSideImportPattern    = regexp.MustCompile(`import\s+['"]([^'"]+)['"]`)

	jsxComponentPattern = regexp.MustCompile(`(?:const|let|var)\s+([A-Z][a-zA-Z0-9_$]*)\s*=\s*(?:React\.createClass|React\.memo|React\.forwardRef|\([^)]*\)\s*=>\s*|function\s*\([^)]*\))`)

	jsVarPattern = regexp.MustCompile(`(?:const|let|var)\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*=`)

	jsLineCommentPattern  = regexp.MustCompile(`(?m)//(.+)$`)
	jsBlockCommentPattern = regexp.MustCompile(`(?s)/\*(.+?)\*/`)
	jsDocCommentPattern   = regexp.MustCompile(`(?s)/\*\*(.+?)\*/`)
)

// scanLexical extracts facts from JavaScript or JSX source via ordered
// pattern matching. Absence of matches is never an error.
func scanLexical(content string, lang Language, b *builder) {
	extractJSFunctions(content, b)
	extractJSClasses(content, b)
	extractJSImports(content, b)
	if lang == LanguageJSX {
		extractJSXComponents(content, b)
	}
	extractJSVariables(content, b)
	extractJSComments(content, b)
}

func extractJSFunctions(content string, b *builder) {
	for _, pattern := range jsFuncPatterns {
		for _, match := range pattern.FindAllStringSubmatchIndex(content, -1) {
			name := content[match[2]:match[3]]
			lineStart := lineAt(content, match[0])

			// The matched header ends with the opening brace (or paren for
			// concise arrow bodies); scan forward for the balancing close
			consumed := braceScan(content[match[1]:])

			kind := KindFunction
			if strings.Contains(content[match[0]:match[1]], "=>") {
				kind = KindArrow
			}

			b.functions = append(b.functions, Function{
				Name:       name,
				StartLine:  lineStart,
				EndLine:    lineStart + strings.Count(content[match[1]:match[1]+consumed], "\n"),
				Kind:       kind,
				Complexity: estimateJSComplexity(content[match[0] : match[1]+consumed]),
			})
		}
	}
}

// braceScan consumes characters until the brace depth, starting at 1,
// returns to 0. Unbalanced input consumes to end-of-content rather than
// looping; the caller derives a best-effort end line from the consumed span.
func braceScan(rest string) int {
	depth := 1
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(rest)
}

func extractJSClasses(content string, b *builder) {
	for _, match := range jsClassPattern.FindAllStringSubmatchIndex(content, -1) {
		name := content[match[2]:match[3]]
		lineStart := lineAt(content, match[0])

		// Class headers may contain unrelated characters before the body;
		// advance to the first opening brace before counting depth
		rest := content[match[1]:]
		consumed := 0
		for consumed < len(rest) && rest[consumed] != '{' {
			consumed++
		}
		if consumed < len(rest) {
			consumed++ // include the opening brace
			consumed += braceScan(rest[consumed:])
		}

		b.classes = append(b.classes, Class{
			Name:      name,
			StartLine: lineStart,
			EndLine:   lineStart + strings.Count(rest[:consumed], "\n"),
		})
	}
}

func extractJSImports(content string, b *builder) {
	// Destructured named-list imports: import { a, b as c } from 'module'
	for _, match := range jsNamedImportPattern.FindAllStringSubmatchIndex(content, -1) {
		names := content[match[2]:match[3]]
		module := content[match[4]:match[5]]
		line := lineAt(content, match[0])

		for _, name := range strings.Split(names, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			imp := Import{From: module, Line: line}
			if idx := strings.Index(name, " as "); idx >= 0 {
				imp.Name = strings.TrimSpace(name[:idx])
				imp.Alias = strings.TrimSpace(name[idx+4:])
			} else {
				imp.Name = name
			}
			b.imports = append(b.imports, imp)
		}
	}

	// Default-name imports: import x from 'module'
	for _, match := range jsDefaultImportPattern.FindAllStringSubmatchIndex(content, -1) {
		b.imports = append(b.imports, Import{
			Name: content[match[2]:match[3]],
			From: content[match[4]:match[5]],
			Line: lineAt(content, match[0]),
		})
	}

	// Side-effect imports: import 'module'
	for _, match := range jsSideImportPattern.FindAllStringSubmatchIndex(content, -1) {
		b.imports = append(b.imports, Import{
			From: content[match[2]:match[3]],
			Line: lineAt(content, match[0]),
		})
	}
}

// extractJSXComponents flags capitalized assignment targets bound to React
// factory calls or inline function/arrow literals. Component matches carry
// no end line or complexity estimate.
func extractJSXComponents(content string, b *builder) {
	for _, match := range jsxComponentPattern.FindAllStringSubmatchIndex(content, -1) {
		b.functions = append(b.functions, Function{
			Name:      content[match[2]:match[3]],
			StartLine: lineAt(content, match[0]),
			Kind:      KindComponent,
		})
	}
}

func extractJSVariables(content string, b *builder) {
	for _, match := range jsVarPattern.FindAllStringSubmatchIndex(content, -1) {
		// Skip declarations already claimed by a function or component match
		next := strings.TrimSpace(sliceAt(content, match[1], 20))
		if strings.HasPrefix(next, "function") || strings.HasPrefix(next, "(") || strings.HasPrefix(next, "React.") {
			continue
		}

		// Value text runs to the first semicolon, else line break, else a
		// fixed fallback window
		valueEnd := strings.IndexByte(content[match[1]:], ';')
		if valueEnd == -1 {
			valueEnd = strings.IndexByte(content[match[1]:], '\n')
		}
		if valueEnd == -1 {
			valueEnd = 50
		}
		if match[1]+valueEnd > len(content) {
			valueEnd = len(content) - match[1]
		}
		value := strings.TrimSpace(content[match[1] : match[1]+valueEnd])

		b.variables = append(b.variables, Variable{
			Name: content[match[2]:match[3]],
			Line: lineAt(content, match[0]),
			Type: jsValueType(value),
		})
	}
}

func jsValueType(value string) string {
	switch {
	case strings.HasPrefix(value, `"`), strings.HasPrefix(value, "'"), strings.HasPrefix(value, "`"):
		return "string"
	case strings.HasPrefix(value, "["):
		return "array"
	case strings.HasPrefix(value, "{"):
		return "object"
	case strings.HasPrefix(value, "true"), strings.HasPrefix(value, "false"):
		return "boolean"
	case isNumericLiteral(value):
		return "number"
	case strings.HasPrefix(value, "new "):
		ctor := value[4:]
		if idx := strings.IndexByte(ctor, '('); idx >= 0 {
			ctor = ctor[:idx]
		}
		return strings.TrimSpace(ctor)
	}
	return "unknown"
}

func isNumericLiteral(value string) bool {
	if value == "" {
		return false
	}
	stripped := strings.Replace(value, ".", "", 1)
	if stripped == "" {
		return false
	}
	for i := 0; i < len(stripped); i++ {
		if stripped[i] < '0' || stripped[i] > '9' {
			return false
		}
	}
	return true
}

// extractJSComments runs three independent passes. A doc-block comment also
// matches the block pattern and is captured by both passes; the duplicate
// counts are part of the documented output.
func extractJSComments(content string, b *builder) {
	for _, match := range jsLineCommentPattern.FindAllStringSubmatchIndex(content, -1) {
		b.comments = append(b.comments, Comment{
			Text: strings.TrimSpace(content[match[2]:match[3]]),
			Line: lineAt(content, match[0]),
			Kind: CommentSingle,
		})
	}

	for _, match := range jsBlockCommentPattern.FindAllStringSubmatchIndex(content, -1) {
		start := lineAt(content, match[0])
		b.comments = append(b.comments, Comment{
			Text:      strings.TrimSpace(content[match[2]:match[3]]),
			StartLine: start,
			EndLine:   start + strings.Count(content[match[0]:match[1]], "\n"),
			Kind:      CommentBlock,
		})
	}

	for _, match := range jsDocCommentPattern.FindAllStringSubmatchIndex(content, -1) {
		start := lineAt(content, match[0])
		b.comments = append(b.comments, Comment{
			Text:      strings.TrimSpace(content[match[2]:match[3]]),
			StartLine: start,
			EndLine:   start + strings.Count(content[match[0]:match[1]], "\n"),
			Kind:      CommentDocBlock,
		})
	}
}

// estimateJSComplexity is a textual substitute for branch counting:
// 1 plus one per branching keyword or short-circuit operator occurrence
func estimateJSComplexity(snippet string) int {
	complexity := 1
	complexity += strings.Count(snippet, "if (")
	complexity += strings.Count(snippet, "else if")
	complexity += strings.Count(snippet, "for (")
	complexity += strings.Count(snippet, "while (")
	complexity += strings.Count(snippet, "switch (")
	complexity += strings.Count(snippet, "case ")
	complexity += strings.Count(snippet, " && ")
	complexity += strings.Count(snippet, " || ")
	complexity += strings.Count(snippet, "?.")
	complexity += strings.Count(snippet, "??")
	return complexity
}

// lineAt returns the 1-based line number of a byte offset
func lineAt(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}

// sliceAt returns up to n bytes of content starting at offset
func sliceAt(content string, offset, n int) string {
	if offset >= len(content) {
		return ""
	}
	if offset+n > len(content) {
		n = len(content) - offset
	}
	return content[offset : offset+n]
}
