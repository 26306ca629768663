package quantity

import (
	"context"
	"embed"
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/unitkit/pkg/i18n"
	"github.com/dmitrymomot/unitkit/pkg/logger"
)

//go:embed locales/*.yaml
var builtinCatalogs embed.FS

// Localizer serves culture-specific unit abbreviations and names from
// abbreviation catalogs. A nil or empty Localizer localizes nothing.
type Localizer struct {
	translator *i18n.Translator
	matcher    language.Matcher
	langs      []string
}

// NewLocalizer loads catalogs through adapter. Catalog languages are matched
// against culture tags with x/text language matching, so "ru-RU" uses "ru".
func NewLocalizer(ctx context.Context, adapter i18n.TranslationAdapter, opts ...i18n.Option) (*Localizer, error) {
	translator, err := i18n.NewTranslator(ctx, adapter, opts...)
	if err != nil {
		return nil, err
	}

	l := &Localizer{translator: translator}
	var tags []language.Tag
	for _, lang := range translator.SupportedLanguages() {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		l.langs = append(l.langs, lang)
	}
	if len(tags) > 0 {
		l.matcher = language.NewMatcher(tags)
	}
	return l, nil
}

// BuiltinCatalogs returns an adapter over the catalogs embedded in this package.
func BuiltinCatalogs() i18n.TranslationAdapter {
	return i18n.NewFSAdapter(i18n.NewYAMLParser(), builtinCatalogs, "locales")
}

// NewBuiltinLocalizer loads the catalogs embedded in this package.
func NewBuiltinLocalizer(ctx context.Context, opts ...i18n.Option) (*Localizer, error) {
	return NewLocalizer(ctx, BuiltinCatalogs(), opts...)
}

// Languages returns the catalog languages.
func (l *Localizer) Languages() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.langs...)
}

func (l *Localizer) language(culture Culture) (string, bool) {
	if l == nil || l.matcher == nil || culture.IsInvariant() {
		return "", false
	}
	_, idx, confidence := l.matcher.Match(culture.Tag)
	if confidence == language.No || idx < 0 || idx >= len(l.langs) {
		return "", false
	}
	return l.langs[idx], true
}

// Abbreviations returns the localized abbreviations of a unit for culture,
// or nil when the culture's language has none.
func (l *Localizer) Abbreviations(catalogKey, unitKey string, culture Culture) []string {
	lang, ok := l.language(culture)
	if !ok {
		return nil
	}
	return l.translator.Strings(lang, catalogKey+"."+unitKey)
}

// UnitName returns the localized name of a unit for culture, or fallback.
func (l *Localizer) UnitName(catalogKey, unitKey string, culture Culture, fallback string) string {
	lang, ok := l.language(culture)
	if !ok {
		return fallback
	}
	return l.translator.Td(lang, catalogKey+".names."+unitKey, fallback)
}

var (
	activeLocalizer atomic.Pointer[Localizer]
	builtinOnce     sync.Once
	generation      atomic.Uint64
)

// CurrentLocalizer returns the process localizer. Unless SetLocalizer was
// called first, the built-in catalogs are loaded once on first use.
func CurrentLocalizer() *Localizer {
	if l := activeLocalizer.Load(); l != nil {
		return l
	}
	builtinOnce.Do(func() {
		l, err := NewBuiltinLocalizer(context.Background(), i18n.WithLogger(Logger()))
		if err != nil {
			Logger().Error("built-in abbreviation catalogs failed to load", logger.Component("localizer"), logger.Error(err))
			l = &Localizer{}
		}
		activeLocalizer.CompareAndSwap(nil, l)
	})
	return activeLocalizer.Load()
}

// SetLocalizer replaces the process localizer. Nil disables localization.
// Cached unit indexes built with the previous localizer are not reused.
func SetLocalizer(l *Localizer) {
	if l == nil {
		l = &Localizer{}
	}
	activeLocalizer.Store(l)
	generation.Add(1)
}

func localizerGeneration() uint64 {
	return generation.Load()
}
