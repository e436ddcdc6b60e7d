// Package workspace locates source files to analyze, either by walking a
// directory with glob filters or by diffing a git repository against a base
// ref.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/codelens-hq/codelens/internal/index"
)

// CollectFiles walks root and returns the files matching the include
// patterns and not matching the exclude patterns. Patterns are doublestar
// globs evaluated against paths relative to root. With no includes, every
// supported source file is taken.
func CollectFiles(root string, includes, excludes []string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	if len(includes) == 0 {
		includes = defaultIncludes()
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if matchesAny(excludes, relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if matchesAny(includes, relPath) && !matchesAny(excludes, relPath) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}

func defaultIncludes() []string {
	exts := index.SupportedExtensions()
	patterns := make([]string, 0, len(exts))
	for _, ext := range exts {
		patterns = append(patterns, "**/*"+ext)
	}
	return patterns
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}
