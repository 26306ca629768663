package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultLanguage is used when a lookup passes an empty language.
const DefaultLanguage = "en"

// Translator serves lookups from catalogs loaded through a TranslationAdapter.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads catalogs from adapter and returns a ready Translator.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "catalogs loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no catalogs provided")
		return nil
	}
	for lang, entries := range trans {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if entries == nil {
			return fmt.Errorf("nil catalog for language: %s", lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes that have a catalog.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// lookup traverses the catalog of lang using a dot-separated key.
// Must be called with the read lock held.
func (t *Translator) lookup(lang, key string) (any, error) {
	if lang == "" {
		lang = t.defaultLang
	}
	current, ok := t.translations[lang]
	if !ok {
		return nil, &ErrLanguageNotSupported{Lang: lang}
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, fmt.Errorf("key %q not found", key)
		}
		if i == len(parts)-1 {
			return val, nil
		}
		if current, ok = asStringMap(val); !ok {
			return nil, fmt.Errorf("key %q not found", key)
		}
	}
	return nil, fmt.Errorf("key %q not found", key)
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func (t *Translator) missing(lang, key string, err error) {
	if t.missingLogMode {
		t.logger.Warn("catalog entry not found", "lang", lang, "key", key, "error", err)
	}
}

// HasTranslation reports whether an entry exists for lang and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, err := t.lookup(lang, key)
	return err == nil
}

// Strings returns the entry for lang and key as a list. A single string entry
// yields a one-element list; list entries keep their order and drop non-string
// items. Missing entries return nil.
func (t *Translator) Strings(lang, key string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	val, err := t.lookup(lang, key)
	if err != nil {
		t.missing(lang, key, err)
		return nil
	}

	switch v := val.(type) {
	case string:
		return []string{v}
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		t.missing(lang, key, fmt.Errorf("unexpected entry type %T", v))
		return nil
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes "%{name}" placeholders from key/value pairs in args.
// A trailing unpaired argument is ignored; unknown placeholders stay as is.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T returns the string entry for lang and key with placeholders substituted.
// A list entry yields its first element. When nothing is found, T returns the
// key if fallback to key is enabled, and "" otherwise.
//
//	translator.T("ru", "electric_resistance.names.kiloohm") // "килоом"
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.first(lang, key); ok {
		return sprintf(s, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td is like T but falls back to defaultValue instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if s, ok := t.first(lang, key); ok {
		return sprintf(s, args)
	}
	return sprintf(defaultValue, args)
}

func (t *Translator) first(lang, key string) (string, bool) {
	values := t.Strings(lang, key)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}
