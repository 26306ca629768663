package quantity

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// Quantity is an immutable magnitude of kind U, stored in the kind's base
// unit. Every operation returns a new value. The zero value is zero in the
// base unit.
//
// Equality is exact floating-point equality of the base magnitudes. Two
// quantities reaching the same conceptual value through different unit paths
// may differ in the last bits and compare unequal.
type Quantity[U Unit[U]] struct {
	base float64
}

func tableOf[U Unit[U]]() *Table[U] {
	var u U
	return u.Table()
}

// From converts value in unit into a quantity. NaN and infinities propagate.
// A unit outside the kind's table is a programming error and panics with an
// *UnsupportedUnitError; use TryFrom for units that come from input.
func From[U Unit[U]](value float64, unit U) Quantity[U] {
	q, err := TryFrom(value, unit)
	if err != nil {
		panic(err)
	}
	return q
}

// TryFrom is like From but returns ErrUnsupportedUnit instead of panicking.
func TryFrom[U Unit[U]](value float64, unit U) (Quantity[U], error) {
	factor, err := tableOf[U]().Factor(unit)
	if err != nil {
		return Quantity[U]{}, err
	}
	return Quantity[U]{base: value * factor}, nil
}

// FromBase returns a quantity of v base units.
func FromBase[U Unit[U]](v float64) Quantity[U] {
	return Quantity[U]{base: v}
}

// Zero returns the zero quantity of kind U.
func Zero[U Unit[U]]() Quantity[U] {
	return Quantity[U]{}
}

// Base returns the magnitude in the base unit.
func (q Quantity[U]) Base() float64 { return q.base }

// As returns the magnitude expressed in unit.
func (q Quantity[U]) As(unit U) (float64, error) {
	factor, err := tableOf[U]().Factor(unit)
	if err != nil {
		return 0, err
	}
	return q.base / factor, nil
}

// MustAs is like As but panics for units outside the kind's table.
func (q Quantity[U]) MustAs(unit U) float64 {
	v, err := q.As(unit)
	if err != nil {
		panic(err)
	}
	return v
}

// Neg returns -q.
func (q Quantity[U]) Neg() Quantity[U] { return Quantity[U]{base: -q.base} }

// Abs returns the magnitude of q.
func (q Quantity[U]) Abs() Quantity[U] { return Quantity[U]{base: math.Abs(q.base)} }

// Add returns q+other.
func (q Quantity[U]) Add(other Quantity[U]) Quantity[U] {
	return Quantity[U]{base: q.base + other.base}
}

// Sub returns q-other.
func (q Quantity[U]) Sub(other Quantity[U]) Quantity[U] {
	return Quantity[U]{base: q.base - other.base}
}

// Mul scales q by a dimensionless factor.
func (q Quantity[U]) Mul(s float64) Quantity[U] { return Quantity[U]{base: q.base * s} }

// Div divides q by a dimensionless divisor, following IEEE-754 for zero.
func (q Quantity[U]) Div(s float64) Quantity[U] { return Quantity[U]{base: q.base / s} }

// Ratio returns the dimensionless ratio q/other.
func (q Quantity[U]) Ratio(other Quantity[U]) float64 { return q.base / other.base }

// Compare returns -1, 0 or +1 ordering q against other by base magnitude.
// NaN sorts before every other value, as in cmp.Compare.
func (q Quantity[U]) Compare(other Quantity[U]) int { return cmp.Compare(q.base, other.base) }

// Equal reports exact equality of the base magnitudes; no tolerance is applied.
func (q Quantity[U]) Equal(other Quantity[U]) bool { return q.base == other.base }

// Less reports whether q is smaller than other. Comparisons with NaN are false.
func (q Quantity[U]) Less(other Quantity[U]) bool { return q.base < other.base }

// LessOrEqual reports whether q is smaller than or equal to other.
func (q Quantity[U]) LessOrEqual(other Quantity[U]) bool { return q.base <= other.base }

// Greater reports whether q is larger than other.
func (q Quantity[U]) Greater(other Quantity[U]) bool { return q.base > other.base }

// GreaterOrEqual reports whether q is larger than or equal to other.
func (q Quantity[U]) GreaterOrEqual(other Quantity[U]) bool { return q.base >= other.base }

// IsZero reports whether q is +0 or -0.
func (q Quantity[U]) IsZero() bool { return q.base == 0 }

// Hash returns a hash consistent with Equal: equal quantities, including +0
// and -0, hash identically.
func (q Quantity[U]) Hash() uint64 {
	if q.base == 0 {
		return 0
	}
	return math.Float64bits(q.base)
}

// String renders q in the base unit with DefaultCulture and DefaultDigits.
func (q Quantity[U]) String() string {
	s, err := q.Format(tableOf[U]().Base(), DefaultCulture(), DefaultDigits())
	if err != nil {
		return strconv.FormatFloat(q.base, 'g', -1, 64)
	}
	return s
}

// MarshalText renders the exact base magnitude and the invariant base-unit
// abbreviation, e.g. "5500 Ω", so that UnmarshalText restores the same value.
// NaN and infinities have no text form and return ErrInvalidNumber.
func (q Quantity[U]) MarshalText() ([]byte, error) {
	if math.IsNaN(q.base) || math.IsInf(q.base, 0) {
		return nil, fmt.Errorf("%w: cannot marshal %v", ErrInvalidNumber, q.base)
	}
	t := tableOf[U]()
	abbr, err := t.Abbreviation(t.Base(), InvariantCulture)
	if err != nil {
		return nil, err
	}
	return []byte(strconv.FormatFloat(q.base, 'g', -1, 64) + " " + abbr), nil
}

// UnmarshalText parses text with InvariantCulture.
func (q *Quantity[U]) UnmarshalText(text []byte) error {
	parsed, err := Parse[U](string(text), InvariantCulture)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
