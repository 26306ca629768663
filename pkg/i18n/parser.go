package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser decodes catalog file content.
type Parser interface {
	// Parse returns catalogs keyed by language code.
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether files with ext can be parsed.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// splitLanguages converts the decoded document root into per-language maps.
// Every top-level value must itself be a map.
func splitLanguages(data map[string]any, onInvalid func(lang string, val any) error) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		entries, ok := val.(map[string]any)
		if !ok {
			if err := onInvalid(lang, val); err != nil {
				return nil, err
			}
			continue
		}
		result[lang] = entries
	}
	return result, nil
}
