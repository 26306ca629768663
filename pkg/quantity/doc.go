// Package quantity implements typed physical quantities: an immutable
// magnitude stored in the base unit of its kind, with table-driven unit
// conversion, same-kind arithmetic and comparison, and culture-aware parsing
// and formatting.
//
// A kind is declared once as an integer unit enumeration whose Table method
// returns a static *Table built with NewTable:
//
//	type Unit int
//
//	const (
//		Undefined Unit = iota
//		Kiloohm
//		Ohm
//	)
//
//	var table = quantity.NewTable("ElectricResistance", "electric_resistance", Undefined,
//		quantity.Entry[Unit]{Unit: Kiloohm, Name: "Kiloohm", Factor: 1e3, Abbreviations: []string{"kΩ"}},
//		quantity.Entry[Unit]{Unit: Ohm, Name: "Ohm", Factor: 1, Abbreviations: []string{"Ω"}},
//	)
//
//	func (Unit) Table() *quantity.Table[Unit] { return table }
//
// The enumeration type is the type parameter of Quantity, so
// Quantity[resistance.Unit] and a quantity of any other kind are distinct types
// and mixing them does not compile.
//
// # Conversion
//
// From multiplies a value by its unit's factor; As divides the base magnitude
// by the target factor. NaN and infinities propagate. Units outside the
// table, including the Undefined sentinel, yield ErrUnsupportedUnit.
//
// # Equality
//
// Equal compares base magnitudes exactly. 1 kΩ built as From(1, Kiloohm) and
// as From(1000, Ohm) are equal, but values reaching the same magnitude through
// different rounding paths may not be. Use Ratio or Base with a tolerance when
// that matters.
//
// # Text
//
// Parse accepts "<number><optional whitespace><unit>", e.g. "5.5 kΩ", where the
// number follows the separators of a Culture. Units resolve through localized
// abbreviations of the culture's catalog language, invariant abbreviations,
// and unit names in that order. Format renders a magnitude with a number of
// digits after the radix point and appends the unit abbreviation.
//
// Localized abbreviations come from YAML or JSON catalogs loaded by a
// Localizer. Catalogs for en, de and ru are embedded and loaded on first use;
// SetLocalizer installs others:
//
//	en:
//	  electric_resistance:
//	    kiloohm: [kΩ, kOhm]
//	    names:
//	      kiloohm: kiloohm
//
// InvariantCulture never consults catalogs.
package quantity
