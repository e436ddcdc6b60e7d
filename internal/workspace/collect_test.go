package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	rel := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func TestCollectFiles_Defaults(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app.py":                    "x = 1\n",
		"src/util.js":               "const a = 1;\n",
		"src/widget.jsx":            "const W = () => <div/>;\n",
		"README.md":                 "docs\n",
		"vendor/lib.rb":             "puts 1\n",
		"node_modules/pkg/index.js": "module.exports = {};\n",
	})

	files, err := CollectFiles(root, nil, []string{"**/node_modules/**"})
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"app.py", "src/util.js", "src/widget.jsx"},
		relPaths(t, root, files))
}

func TestCollectFiles_CustomIncludes(t *testing.T) {
	root := writeTree(t, map[string]string{
		"app.py":      "x = 1\n",
		"src/util.js": "const a = 1;\n",
	})

	files, err := CollectFiles(root, []string{"**/*.py"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"app.py"}, relPaths(t, root, files))
}

func TestCollectFiles_ExcludeWins(t *testing.T) {
	root := writeTree(t, map[string]string{
		"keep.py":           "x = 1\n",
		"generated/skip.py": "x = 2\n",
	})

	files, err := CollectFiles(root, []string{"**/*.py"}, []string{"generated/**"})
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.py"}, relPaths(t, root, files))
}

func TestCollectFiles_MissingRoot(t *testing.T) {
	_, err := CollectFiles(filepath.Join(t.TempDir(), "absent"), nil, nil)
	require.Error(t, err)
}
