package index

import (
	"path/filepath"
	"strings"
)

// DetectLanguage maps a filename to a supported language by extension.
// The match is case-insensitive. Unknown extensions map to LanguageUnknown,
// for which indexing yields an empty fact set rather than an error.
func DetectLanguage(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return LanguagePython
	case ".js", ".mjs":
		return LanguageJavaScript
	case ".jsx":
		return LanguageJSX
	default:
		return LanguageUnknown
	}
}

// SupportedExtensions lists the file extensions the indexer understands
func SupportedExtensions() []string {
	return []string{".py", ".js", ".mjs", ".jsx"}
}
