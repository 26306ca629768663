package unitkit

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/unitkit/pkg/i18n"
	"github.com/dmitrymomot/unitkit/pkg/logger"
	"github.com/dmitrymomot/unitkit/pkg/quantity"
)

// Runtime describes what Setup installed.
type Runtime struct {
	Logger    *slog.Logger
	Localizer *quantity.Localizer
	Culture   quantity.Culture
	Digits    int
}

// Option configures Setup.
type Option func(*setupOptions)

type setupOptions struct {
	output     io.Writer
	extractors []logger.ContextExtractor
}

// WithLogOutput sets the log destination. Defaults to os.Stdout.
func WithLogOutput(w io.Writer) Option {
	return func(o *setupOptions) {
		if w != nil {
			o.output = w
		}
	}
}

// WithContextExtractors adds log context extractors after the culture extractor.
func WithContextExtractors(extractors ...logger.ContextExtractor) Option {
	return func(o *setupOptions) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// Setup builds the logger and the abbreviation localizer described by cfg and
// installs them, together with the default culture and digits, in
// pkg/quantity. Nothing is installed when an error is returned.
func Setup(ctx context.Context, cfg Config, opts ...Option) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &setupOptions{output: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	log := logger.New(
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(o.output),
		logger.WithContextExtractors(append([]logger.ContextExtractor{quantity.LogExtractor}, o.extractors...)...),
	)

	localizer, err := quantity.NewLocalizer(ctx, catalogAdapter(cfg),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(cfg.LogMissingAbbreviations),
	)
	if err != nil {
		log.ErrorContext(ctx, "abbreviation catalogs failed to load", logger.Error(err))
		return nil, err
	}

	culture, _ := quantity.ParseCulture(cfg.Culture)

	quantity.SetLogger(log.With(logger.Component("quantity")))
	quantity.SetLocalizer(localizer)
	quantity.SetDefaultCulture(culture)
	quantity.SetDefaultDigits(cfg.SignificantDigits)

	log.InfoContext(ctx, "unitkit configured",
		logger.Culture(culture.String()),
		slog.Int("digits", cfg.SignificantDigits),
		logger.Languages(localizer.Languages()),
	)

	return &Runtime{
		Logger:    log,
		Localizer: localizer,
		Culture:   culture,
		Digits:    cfg.SignificantDigits,
	}, nil
}

func catalogAdapter(cfg Config) i18n.TranslationAdapter {
	if cfg.CatalogDir == "" {
		return quantity.BuiltinCatalogs()
	}
	return i18n.NewDirectoryAdapter(catalogParser(cfg.CatalogFormat), cfg.CatalogDir)
}

func catalogParser(format string) i18n.Parser {
	return i18n.NewParserForFile("catalog." + format)
}
