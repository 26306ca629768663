package quantity

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/unitkit/pkg/logger"
)

// DefaultSignificantDigits is the number of digits after the radix point used
// by String until SetDefaultDigits changes it.
const DefaultSignificantDigits = 2

var (
	defaultsMu     sync.RWMutex
	defaultCulture = InvariantCulture
	defaultDigits  = DefaultSignificantDigits

	pkgLogger atomic.Pointer[slog.Logger]
)

// SetDefaultCulture sets the culture used by String and by CultureFromContext
// when the context carries none.
func SetDefaultCulture(c Culture) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultCulture = c.normalize()
}

// DefaultCulture returns the culture used by String. It starts as InvariantCulture.
func DefaultCulture() Culture {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultCulture
}

// SetDefaultDigits sets the digits after the radix point used by String.
// Negative values are treated as zero.
func SetDefaultDigits(n int) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultDigits = max(n, 0)
}

// DefaultDigits returns the digit count used by String. It starts as DefaultSignificantDigits.
func DefaultDigits() int {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultDigits
}

// SetLogger sets the package logger. Nil restores the discard logger.
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return discard
}

var discard = logger.Discard()

type cultureContextKey struct{}

// WithCulture stores c in ctx.
func WithCulture(ctx context.Context, c Culture) context.Context {
	return context.WithValue(ctx, cultureContextKey{}, c.normalize())
}

// CultureFromContext returns the culture stored in ctx, or DefaultCulture.
func CultureFromContext(ctx context.Context) Culture {
	if ctx != nil {
		if c, ok := ctx.Value(cultureContextKey{}).(Culture); ok {
			return c
		}
	}
	return DefaultCulture()
}

// LogExtractor is a logger.ContextExtractor adding the context culture to log records.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	c, ok := ctx.Value(cultureContextKey{}).(Culture)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Culture(c.String()), true
}

var _ logger.ContextExtractor = LogExtractor
