// Package resistance defines the electric resistance quantity kind.
//
//	r := resistance.FromKiloohms(4.7)
//	resistance.Ohms(r)                           // 4700
//	r.Format(resistance.Kiloohm, culture, 2)     // "4.7 kΩ"
//	resistance.Parse("5,5 кОм", ruCulture)       // 5500 Ω
//
// ElectricResistance is an alias of quantity.Quantity[Unit], so every method
// of the generic type applies.
package resistance
