package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter    = errors.New("translation adapter is nil")
	ErrEmptyLanguage = errors.New("empty language code in catalog")

	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrLoadingCancelled  = errors.New("loading catalogs cancelled")
	ErrFailedToReadDir   = errors.New("failed to read catalog directory")
	ErrFailedToReadFile  = errors.New("failed to read catalog file")
	ErrFailedToParseFile = errors.New("failed to parse catalog file")
	ErrNoCatalogFiles    = errors.New("no catalog files found")
)

// ErrLanguageNotSupported indicates that the requested language has no catalog.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
