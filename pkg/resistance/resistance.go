package resistance

import (
	"github.com/dmitrymomot/unitkit/pkg/quantity"
)

// Unit is a unit of electric resistance.
type Unit int

const (
	// Undefined marks a failed unit resolution. It is not a valid unit.
	Undefined Unit = iota
	Kiloohm
	Megaohm
	// Ohm is the base unit.
	Ohm
)

var table = quantity.NewTable("ElectricResistance", "electric_resistance", Undefined,
	quantity.Entry[Unit]{Unit: Kiloohm, Name: "Kiloohm", Plural: "Kiloohms", Factor: 1e3, Abbreviations: []string{"kΩ"}},
	quantity.Entry[Unit]{Unit: Megaohm, Name: "Megaohm", Plural: "Megaohms", Factor: 1e6, Abbreviations: []string{"MΩ"}},
	quantity.Entry[Unit]{Unit: Ohm, Name: "Ohm", Plural: "Ohms", Factor: 1, Abbreviations: []string{"Ω"}},
)

// Table returns the unit table of electric resistance.
func (Unit) Table() *quantity.Table[Unit] { return table }

func (u Unit) String() string { return table.Name(u) }

// ElectricResistance is a resistance stored in ohms.
type ElectricResistance = quantity.Quantity[Unit]

// Units returns Kiloohm, Megaohm and Ohm.
func Units() []Unit { return table.Units() }

// Zero returns 0 Ω.
func Zero() ElectricResistance { return quantity.Zero[Unit]() }

// From converts value in unit. It panics for Undefined.
func From(value float64, unit Unit) ElectricResistance { return quantity.From(value, unit) }

// FromOhms returns v ohms.
func FromOhms(v float64) ElectricResistance { return quantity.From(v, Ohm) }

// FromKiloohms returns v kiloohms.
func FromKiloohms(v float64) ElectricResistance { return quantity.From(v, Kiloohm) }

// FromMegaohms returns v megaohms.
func FromMegaohms(v float64) ElectricResistance { return quantity.From(v, Megaohm) }

// Ohms returns r in ohms.
func Ohms(r ElectricResistance) float64 { return r.MustAs(Ohm) }

// Kiloohms returns r in kiloohms.
func Kiloohms(r ElectricResistance) float64 { return r.MustAs(Kiloohm) }

// Megaohms returns r in megaohms.
func Megaohms(r ElectricResistance) float64 { return r.MustAs(Megaohm) }

// Abbreviation returns the abbreviation of unit for culture, e.g. "kΩ".
func Abbreviation(unit Unit, culture quantity.Culture) (string, error) {
	return table.Abbreviation(unit, culture)
}

// Parse reads a resistance such as "5.5 kΩ" or "1 megaohm".
func Parse(s string, culture quantity.Culture) (ElectricResistance, error) {
	return quantity.Parse[Unit](s, culture)
}

// ParseUnit resolves a unit token such as "kΩ". Unknown tokens fail with
// quantity.ErrUnrecognizedUnit.
func ParseUnit(s string, culture quantity.Culture) (Unit, error) {
	return quantity.ParseUnit[Unit](s, culture)
}
