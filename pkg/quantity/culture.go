package quantity

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Culture is the format context of parsing and formatting: a language tag
// selecting localized abbreviations plus the number separators. It is a
// read-only value; the zero value behaves as InvariantCulture.
type Culture struct {
	Tag              language.Tag
	DecimalSeparator string
	GroupSeparator   string
}

// InvariantCulture uses "." and "," and never consults abbreviation catalogs.
var InvariantCulture = Culture{Tag: language.Und, DecimalSeparator: ".", GroupSeparator: ","}

// NewCulture returns the culture of tag with separators taken from CLDR data.
// Tags whose numbers are not written with ASCII digits keep invariant separators.
func NewCulture(tag language.Tag) Culture {
	if tag == language.Und {
		return InvariantCulture
	}
	c := InvariantCulture
	c.Tag = tag
	if decimal, group, ok := separators(tag); ok {
		c.DecimalSeparator, c.GroupSeparator = decimal, group
	}
	return c
}

// ParseCulture parses a BCP 47 tag such as "de-DE". An empty string and
// "invariant" select InvariantCulture.
func ParseCulture(s string) (Culture, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "invariant") {
		return InvariantCulture, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Culture{}, fmt.Errorf("%w %q: %w", ErrInvalidCulture, s, err)
	}
	return NewCulture(tag), nil
}

// MustParseCulture is like ParseCulture but panics on error.
func MustParseCulture(s string) Culture {
	c, err := ParseCulture(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithSeparators returns a copy of c using the given separators. An empty
// decimal separator means "."; a group separator equal to the decimal one
// disables grouping.
func (c Culture) WithSeparators(decimal, group string) Culture {
	c.DecimalSeparator, c.GroupSeparator = decimal, group
	return c.normalize()
}

// IsInvariant reports whether c is not bound to a language.
func (c Culture) IsInvariant() bool {
	return c.Tag == language.Und
}

// String describes the culture for diagnostics.
func (c Culture) String() string {
	if c.IsInvariant() {
		return "invariant"
	}
	return c.Tag.String()
}

func (c Culture) normalize() Culture {
	if c.IsInvariant() && c.DecimalSeparator == "" && c.GroupSeparator == "" {
		return InvariantCulture
	}
	if c.DecimalSeparator == "" {
		c.DecimalSeparator = "."
	}
	if c.GroupSeparator == c.DecimalSeparator {
		c.GroupSeparator = ""
	}
	return c
}

func (c Culture) key() string {
	c = c.normalize()
	return c.String() + "|" + c.DecimalSeparator + "|" + c.GroupSeparator
}

// separators derives the decimal and group separators of tag by rendering a
// sample number through x/text and reading back the non-digit runs.
func separators(tag language.Tag) (decimal, group string, ok bool) {
	sample := message.NewPrinter(tag).Sprintf("%v", number.Decimal(1234567.5, number.MinFractionDigits(1)))

	var runs []string
	var run strings.Builder
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if r < '0' || r > '9' {
				return "", "", false
			}
			if run.Len() > 0 {
				runs = append(runs, run.String())
				run.Reset()
			}
			continue
		}
		run.WriteRune(r)
	}
	if run.Len() > 0 {
		runs = append(runs, run.String())
	}

	switch len(runs) {
	case 0:
		return "", "", false
	case 1:
		return runs[0], "", true
	default:
		decimal, group = runs[len(runs)-1], runs[0]
		if decimal == group {
			return "", "", false
		}
		return decimal, group, true
	}
}
