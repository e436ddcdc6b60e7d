package index

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// scanPython walks a real syntax tree to extract the full fact set with
// exact line boundaries. A syntax error anywhere in the file aborts
// extraction and is returned as a ParseError; no partial facts are kept.
func scanPython(content string, b *builder) *ParseError {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	src := []byte(content)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return &ParseError{Message: err.Error()}
	}
	defer tree.Close()

	root := tree.RootNode()
	if perr := findSyntaxError(root); perr != nil {
		return perr
	}

	walkTree(root, func(n *sitter.Node) {
		switch n.Type() {
		case "function_definition":
			b.functions = append(b.functions, parsePythonFunction(n, src))
		case "class_definition":
			b.classes = append(b.classes, parsePythonClass(n, src))
		case "import_statement":
			b.imports = append(b.imports, parsePythonImports(n, src)...)
		case "import_from_statement":
			b.imports = append(b.imports, parsePythonFromImports(n, src)...)
		}
	})

	extractPythonVariables(root, src, b)
	extractPythonComments(root, src, b)

	return nil
}

func parsePythonFunction(node *sitter.Node, src []byte) Function {
	fn := Function{
		StartLine:  int(node.StartPoint().Row) + 1,
		EndLine:    maxDescendantLine(node),
		Params:     parsePythonParams(node.ChildByFieldName("parameters"), src),
		HasDoc:     pythonHasDocstring(node),
		Complexity: pythonComplexity(node, src),
	}
	if name := node.ChildByFieldName("name"); name != nil {
		fn.Name = name.Content(src)
	}
	return fn
}

func parsePythonParams(node *sitter.Node, src []byte) []string {
	if node == nil {
		return nil
	}
	params := make([]string, 0)
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "identifier":
			params = append(params, child.Content(src))
		case "typed_parameter", "default_parameter", "typed_default_parameter":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if sub := child.NamedChild(j); sub.Type() == "identifier" {
					params = append(params, sub.Content(src))
					break
				}
			}
		case "list_splat_pattern", "dictionary_splat_pattern":
			if child.NamedChildCount() > 0 {
				params = append(params, child.NamedChild(0).Content(src))
			}
		}
	}
	return params
}

func parsePythonClass(node *sitter.Node, src []byte) Class {
	cls := Class{
		StartLine: int(node.StartPoint().Row) + 1,
		EndLine:   maxDescendantLine(node),
		Methods:   make([]string, 0),
		HasDoc:    pythonHasDocstring(node),
	}
	if name := node.ChildByFieldName("name"); name != nil {
		cls.Name = name.Content(src)
	}

	// Direct-child function definitions only; nested defs are not methods
	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			child := body.NamedChild(i)
			if child.Type() == "function_definition" {
				if name := child.ChildByFieldName("name"); name != nil {
					cls.Methods = append(cls.Methods, name.Content(src))
				}
			}
		}
	}
	return cls
}

// parsePythonImports handles `import X` and `import X as Y` forms,
// yielding one Import per imported name
func parsePythonImports(node *sitter.Node, src []byte) []Import {
	imports := make([]Import, 0)
	line := int(node.StartPoint().Row) + 1

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		imp := Import{Line: line}
		switch child.Type() {
		case "dotted_name":
			imp.Name = child.Content(src)
		case "aliased_import":
			if name := child.ChildByFieldName("name"); name != nil {
				imp.Name = name.Content(src)
			}
			if alias := child.ChildByFieldName("alias"); alias != nil {
				imp.Alias = alias.Content(src)
			}
		default:
			continue
		}
		imports = append(imports, imp)
	}
	return imports
}

// parsePythonFromImports handles `from MODULE import X [as Y]` forms
func parsePythonFromImports(node *sitter.Node, src []byte) []Import {
	imports := make([]Import, 0)
	line := int(node.StartPoint().Row) + 1

	var module string
	if m := node.ChildByFieldName("module_name"); m != nil {
		module = m.Content(src)
	}

	// Named child 0 is the module; the imported names follow
	for i := 1; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		imp := Import{From: module, Line: line}
		switch child.Type() {
		case "dotted_name":
			imp.Name = child.Content(src)
		case "aliased_import":
			if name := child.ChildByFieldName("name"); name != nil {
				imp.Name = name.Content(src)
			}
			if alias := child.ChildByFieldName("alias"); alias != nil {
				imp.Alias = alias.Content(src)
			}
		case "wildcard_import":
			imp.Name = "*"
		default:
			continue
		}
		imports = append(imports, imp)
	}
	return imports
}

// extractPythonVariables captures module-scope single-target assignments.
// Multi-target and destructuring assignments are skipped.
func extractPythonVariables(root *sitter.Node, src []byte, b *builder) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "expression_statement" || stmt.NamedChildCount() == 0 {
			continue
		}
		assign := stmt.NamedChild(0)
		if assign.Type() != "assignment" {
			continue
		}
		left := assign.ChildByFieldName("left")
		if left == nil || left.Type() != "identifier" {
			continue
		}
		b.variables = append(b.variables, Variable{
			Name: left.Content(src),
			Line: int(assign.StartPoint().Row) + 1,
			Type: pythonValueType(assign.ChildByFieldName("right"), src),
		})
	}
}

// pythonValueType infers a value type from the syntax class of the
// right-hand expression
func pythonValueType(node *sitter.Node, src []byte) string {
	if node == nil {
		return "unknown"
	}
	switch node.Type() {
	case "integer", "float":
		return "number"
	case "string", "concatenated_string":
		return "string"
	case "list", "list_comprehension":
		return "list"
	case "dictionary", "dictionary_comprehension":
		return "dict"
	case "tuple":
		return "tuple"
	case "true", "false":
		return "boolean"
	case "none":
		return "None"
	case "call":
		if fn := node.ChildByFieldName("function"); fn != nil {
			switch fn.Type() {
			case "identifier":
				return "call:" + fn.Content(src)
			case "attribute":
				if attr := fn.ChildByFieldName("attribute"); attr != nil {
					return "call:" + attr.Content(src)
				}
			}
		}
	}
	return "unknown"
}

// extractPythonComments is a dedicated pass over the tree's comment tokens,
// separate from the structural extraction above
func extractPythonComments(root *sitter.Node, src []byte, b *builder) {
	walkTree(root, func(n *sitter.Node) {
		if n.Type() == "comment" {
			b.comments = append(b.comments, Comment{
				Text: n.Content(src),
				Line: int(n.StartPoint().Row) + 1,
				Kind: CommentSingle,
			})
		}
	})
}

func pythonHasDocstring(node *sitter.Node) bool {
	body := node.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return false
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return false
	}
	return first.NamedChild(0).Type() == "string"
}

// pythonComplexity approximates cyclomatic complexity: 1 plus one per
// conditional or loop construct, plus one per short-circuit `and` operator.
// `or` operators are intentionally not counted.
func pythonComplexity(node *sitter.Node, src []byte) int {
	complexity := 1
	eachNode(node, func(n *sitter.Node) {
		switch n.Type() {
		case "if_statement", "elif_clause", "while_statement", "for_statement":
			complexity++
		case "boolean_operator":
			if op := n.ChildByFieldName("operator"); op != nil && op.Content(src) == "and" {
				complexity++
			}
		}
	})
	return complexity
}

// maxDescendantLine returns the maximum line number reachable from any
// descendant node. For bodies whose last construct spans multiple physical
// lines this can understate the true end slightly, but it is deterministic
// and matches the length statistics downstream consumers expect.
func maxDescendantLine(node *sitter.Node) int {
	max := int(node.StartPoint().Row) + 1
	eachNode(node, func(n *sitter.Node) {
		if line := int(n.StartPoint().Row) + 1; line > max {
			max = line
		}
	})
	return max
}

// eachNode visits node and every descendant, bounded to the subtree
func eachNode(node *sitter.Node, fn func(*sitter.Node)) {
	fn(node)
	for i := 0; i < int(node.ChildCount()); i++ {
		eachNode(node.Child(i), fn)
	}
}

// walkTree walks the whole tree from the root using a cursor
func walkTree(root *sitter.Node, fn func(*sitter.Node)) {
	cursor := sitter.NewTreeCursor(root)
	defer cursor.Close()

	for {
		fn(cursor.CurrentNode())

		if cursor.GoToFirstChild() {
			continue
		}

		for {
			if cursor.GoToNextSibling() {
				break
			}
			if !cursor.GoToParent() {
				return
			}
		}
	}
}

// findSyntaxError locates the first ERROR or missing node in the tree
func findSyntaxError(root *sitter.Node) *ParseError {
	if !root.HasError() {
		return nil
	}

	perr := &ParseError{Message: "syntax error"}
	found := false
	walkTree(root, func(n *sitter.Node) {
		if found {
			return
		}
		if n.Type() == "ERROR" || n.IsMissing() {
			perr.Line = int(n.StartPoint().Row) + 1
			perr.Column = int(n.StartPoint().Column) + 1
			found = true
		}
	})
	return perr
}
