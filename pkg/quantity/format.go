package quantity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultLayout renders the magnitude and the abbreviation separated by a space.
const DefaultLayout = "%[1]s %[2]s"

// Format renders q in unit using culture's separators and abbreviations, with
// at most digits significant digits after the radix point.
func (q Quantity[U]) Format(unit U, culture Culture, digits int) (string, error) {
	return q.FormatLayout(unit, culture, digits, DefaultLayout)
}

// FormatLayout is like Format with a custom fmt layout. The rendered
// magnitude and abbreviation are arguments 1 and 2; args follow them.
//
//	q.FormatLayout(resistance.Kiloohm, c, 2, "%[2]s=%[1]s (%[3]s)", "R1") // "kΩ=4.7 (R1)"
func (q Quantity[U]) FormatLayout(unit U, culture Culture, digits int, layout string, args ...any) (string, error) {
	value, err := q.As(unit)
	if err != nil {
		return "", err
	}
	culture = culture.normalize()
	abbr, err := tableOf[U]().Abbreviation(unit, culture)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(layout, append([]any{FormatNumber(value, culture, digits), abbr}, args...)...), nil
}

// FormatNumber renders v the way quantities are displayed:
//
//   - 0 renders as "0"
//   - |v| < 1e-3 in scientific notation with at most two mantissa fraction digits, e.g. "1.23e-04"
//   - 1e-3 ≤ |v| < 1 with digits significant digits, e.g. "0.12"
//   - 1 ≤ |v| < 1e6 with group separators and at most digits fraction digits, e.g. "1,234.5"
//   - larger values in the same scientific notation, e.g. "1.5e+06"
//
// Trailing fraction zeros are dropped. NaN and infinities render as "NaN", "+Inf" and "-Inf".
func FormatNumber(v float64, culture Culture, digits int) string {
	culture = culture.normalize()
	digits = max(digits, 0)
	abs := math.Abs(v)

	var s string
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case abs == 0:
		return "0"
	case abs < 1e-3:
		s = scientific(v)
	case abs < 1:
		s = strconv.FormatFloat(v, 'g', max(digits, 1), 64)
	case abs < 1e6:
		return grouped(v, digits, culture)
	default:
		s = scientific(v)
	}
	return strings.Replace(s, ".", culture.DecimalSeparator, 1)
}

// scientificDigits is the fixed mantissa precision of the 0.##e+00 form.
const scientificDigits = 2

func scientific(v float64) string {
	s := strconv.FormatFloat(v, 'e', scientificDigits, 64)
	mantissa, exponent, _ := strings.Cut(s, "e")
	return trimFraction(mantissa) + "e" + exponent
}

func grouped(v float64, digits int, culture Culture) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', digits, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(culture.GroupSeparator)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(culture.DecimalSeparator)
		b.WriteString(frac)
	}
	return b.String()
}

func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
