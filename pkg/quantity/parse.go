package quantity

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/unitkit/pkg/cache"
	"github.com/dmitrymomot/unitkit/pkg/logger"
)

const tokenizerCacheSize = 32

var (
	tokenizers     = cache.NewLRUCache[string, *regexp.Regexp](tokenizerCacheSize)
	numberPatterns = cache.NewLRUCache[string, *regexp.Regexp](tokenizerCacheSize)
)

// valuePattern matches a numeric literal of culture: a sign, digits, the
// culture's separators plus '.', ',' and ' ', and an exponent. It must end in
// a digit.
func valuePattern(culture Culture) string {
	seps := classEscape(culture.GroupSeparator + culture.DecimalSeparator)
	return `[-+]?[\d., ` + seps + `]*\d(?:[eE][-+]?\d+)?`
}

// tokenizer returns the pattern splitting "<number><optional space><unit>"
// for culture. The unit token must not start with a digit, sign or separator,
// so "5.5" alone is malformed instead of the number 5 with unit ".5".
func tokenizer(culture Culture) *regexp.Regexp {
	key := culture.key()
	if re, ok := tokenizers.Get(key); ok {
		return re
	}

	seps := classEscape(culture.GroupSeparator + culture.DecimalSeparator)
	re := regexp.MustCompile(`^(?P<value>` + valuePattern(culture) + `)` +
		`\s*` +
		`(?P<unit>[^\s\d.,+\-` + seps + `]\S*)$`)

	tokenizers.Put(key, re)
	return re
}

// numberPattern anchors valuePattern so that literals such as "NaN", "Inf"
// or hex floats are rejected before they reach strconv.
func numberPattern(culture Culture) *regexp.Regexp {
	key := culture.key()
	if re, ok := numberPatterns.Get(key); ok {
		return re
	}
	re := regexp.MustCompile(`^` + valuePattern(culture) + `$`)
	numberPatterns.Put(key, re)
	return re
}

// classEscape quotes s for use inside a regexp character class.
func classEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\]-^[`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func tokenize(s string, culture Culture) (value, unit string, ok bool) {
	re := tokenizer(culture)
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	value = m[re.SubexpIndex("value")]
	unit = m[re.SubexpIndex("unit")]
	return value, unit, value != "" && unit != ""
}

var (
	errNotANumber      = errors.New("not a numeric literal")
	errDecimalMismatch = errors.New("'.' is not a separator of this culture")
)

// ParseNumber parses a numeric literal written with culture's separators.
// Group separators are dropped, the decimal separator is read as the radix
// point, and an exponent is allowed. When the group separator is a no-break
// space, an ordinary space is accepted in its place. Every failure, including
// an out-of-range value, wraps ErrInvalidNumber.
func ParseNumber(s string, culture Culture) (float64, error) {
	v, err := parseNumber(s, culture.normalize())
	if err != nil {
		return 0, errors.Join(ErrInvalidNumber, err)
	}
	return v, nil
}

// parseNumber returns the bare cause so that Parse can report it under its
// own ParseError.
func parseNumber(s string, culture Culture) (float64, error) {
	n := strings.TrimSpace(s)
	if !numberPattern(culture).MatchString(n) {
		return 0, errNotANumber
	}
	if g := culture.GroupSeparator; g != "" {
		n = strings.ReplaceAll(n, g, "")
		if g == "\u00a0" || g == "\u202f" {
			n = strings.ReplaceAll(n, " ", "")
		}
	}
	if culture.DecimalSeparator != "." {
		if strings.Contains(n, ".") {
			return 0, errDecimalMismatch
		}
		n = strings.ReplaceAll(n, culture.DecimalSeparator, ".")
	}
	return strconv.ParseFloat(n, 64)
}

// Parse reads a quantity written as "<number><optional whitespace><unit>",
// e.g. "5.5 kΩ" or "1.234,5MΩ" under a German culture. Failures are
// *ParseError values wrapping ErrMalformedQuantity, ErrInvalidNumber or
// ErrUnrecognizedUnit.
func Parse[U Unit[U]](s string, culture Culture) (Quantity[U], error) {
	t := tableOf[U]()
	culture = culture.normalize()

	fail := func(kind error, token string, cause error) (Quantity[U], error) {
		err := &ParseError{
			Kind:     kind,
			Quantity: t.Kind(),
			Input:    s,
			Token:    token,
			Culture:  culture.String(),
			Err:      cause,
		}
		Logger().Debug("quantity parse failed",
			logger.Kind(t.Kind()),
			logger.Input(s),
			logger.Culture(culture.String()),
			logger.Error(err),
		)
		return Quantity[U]{}, err
	}

	valueToken, unitToken, ok := tokenize(strings.TrimSpace(s), culture)
	if !ok {
		return fail(ErrMalformedQuantity, "", nil)
	}

	value, err := parseNumber(valueToken, culture)
	if err != nil {
		return fail(ErrInvalidNumber, valueToken, err)
	}

	unit := t.Resolve(unitToken, culture)
	if unit == t.Undefined() {
		return fail(ErrUnrecognizedUnit, unitToken, nil)
	}

	return TryFrom(value, unit)
}

// MustParse is like Parse but panics on error. It is meant for constants in
// tests and static configuration.
func MustParse[U Unit[U]](s string, culture Culture) Quantity[U] {
	q, err := Parse[U](s, culture)
	if err != nil {
		panic(err)
	}
	return q
}

// ParseUnit resolves a unit token. An unknown token is a *ParseError
// wrapping ErrUnrecognizedUnit, never the Undefined sentinel.
func ParseUnit[U Unit[U]](s string, culture Culture) (U, error) {
	t := tableOf[U]()
	culture = culture.normalize()
	unit := t.Resolve(s, culture)
	if unit == t.Undefined() {
		return unit, &ParseError{
			Kind:     ErrUnrecognizedUnit,
			Quantity: t.Kind(),
			Input:    s,
			Token:    strings.TrimSpace(s),
			Culture:  culture.String(),
		}
	}
	return unit, nil
}
