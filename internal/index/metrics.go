package index

import "regexp"

// Naming convention patterns. Classification is a pure function of the name
// string; expectations are per language family (snake_case functions and
// variables for Python, lowerCamel for JavaScript, PascalCase classes for
// both).
var (
	snakeCasePattern  = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	camelCasePattern  = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	pascalCasePattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
)

// IsSnakeCase reports whether name matches snake_case
func IsSnakeCase(name string) bool { return snakeCasePattern.MatchString(name) }

// IsCamelCase reports whether name matches lowerCamelCase
func IsCamelCase(name string) bool { return camelCasePattern.MatchString(name) }

// IsPascalCase reports whether name matches PascalCase
func IsPascalCase(name string) bool { return pascalCasePattern.MatchString(name) }

// computeMetrics derives the metrics table from a fully populated fact set.
// It must never fail: every ratio denominator is floored at 1 and length
// statistics only cover functions with both line bounds known.
func computeMetrics(lang Language, b *builder, lineCount int) Metrics {
	m := Metrics{}

	lengths := make([]int, 0, len(b.functions))
	complexities := make([]int, 0, len(b.functions))
	for _, fn := range b.functions {
		if fn.StartLine > 0 && fn.EndLine > 0 {
			lengths = append(lengths, fn.EndLine-fn.StartLine+1)
		}
		if fn.Complexity > 0 {
			complexities = append(complexities, fn.Complexity)
		}
	}

	m["total_functions"] = float64(len(b.functions))
	m["avg_function_length"], m["max_function_length"] = avgMax(lengths)
	m["avg_complexity"], m["max_complexity"] = avgMax(complexities)

	documented := 0
	switch lang {
	case LanguagePython:
		for _, fn := range b.functions {
			if fn.HasDoc {
				documented++
			}
		}
	default:
		// No docstrings in the lexical family; doc-block comments stand in,
		// capped at the function count
		docBlocks := 0
		for _, c := range b.comments {
			if c.Kind == CommentDocBlock {
				docBlocks++
			}
		}
		documented = docBlocks
		if documented > len(b.functions) {
			documented = len(b.functions)
		}
	}
	m["documented_functions"] = float64(documented)
	m["documentation_ratio"] = float64(documented) / float64(maxInt(1, len(b.functions)))
	m["comment_ratio"] = float64(len(b.comments)) / float64(maxInt(1, lineCount))

	fnNames := make([]string, 0, len(b.functions))
	for _, fn := range b.functions {
		fnNames = append(fnNames, fn.Name)
	}
	varNames := make([]string, 0, len(b.variables))
	for _, v := range b.variables {
		varNames = append(varNames, v.Name)
	}
	classNames := make([]string, 0, len(b.classes))
	for _, c := range b.classes {
		classNames = append(classNames, c.Name)
	}

	switch lang {
	case LanguagePython:
		m["snake_case_functions"], m["snake_case_ratio_functions"] = compliance(fnNames, IsSnakeCase)
		m["snake_case_variables"], m["snake_case_ratio_variables"] = compliance(varNames, IsSnakeCase)
	default:
		m["camel_case_functions"], m["camel_case_ratio_functions"] = compliance(fnNames, IsCamelCase)
		m["camel_case_variables"], m["camel_case_ratio_variables"] = compliance(varNames, IsCamelCase)
	}
	m["pascal_case_classes"], m["pascal_case_ratio_classes"] = compliance(classNames, IsPascalCase)

	if lang == LanguageJSX {
		components := 0
		for _, fn := range b.functions {
			if fn.Kind == KindComponent {
				components++
			}
		}
		m["react_components"] = float64(components)
	}

	return m
}

func avgMax(values []int) (avg, maxVal float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0
	highest := values[0]
	for _, v := range values {
		sum += v
		if v > highest {
			highest = v
		}
	}
	return float64(sum) / float64(len(values)), float64(highest)
}

func compliance(names []string, matches func(string) bool) (count, ratio float64) {
	compliant := 0
	for _, name := range names {
		if matches(name) {
			compliant++
		}
	}
	return float64(compliant), float64(compliant) / float64(maxInt(1, len(names)))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
