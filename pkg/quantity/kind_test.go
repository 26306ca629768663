package quantity_test

import (
	"github.com/dmitrymomot/unitkit/pkg/quantity"
)

type lengthUnit int

const (
	lengthUndefined lengthUnit = iota
	meter
	kilometer
	millimeter
	lengthUnknown lengthUnit = 42
)

var lengthTable = quantity.NewTable("Length", "length", lengthUndefined,
	quantity.Entry[lengthUnit]{Unit: meter, Name: "Meter", Plural: "Meters", Factor: 1, Abbreviations: []string{"m"}},
	quantity.Entry[lengthUnit]{Unit: kilometer, Name: "Kilometer", Plural: "Kilometers", Factor: 1e3, Abbreviations: []string{"km"}},
	quantity.Entry[lengthUnit]{Unit: millimeter, Name: "Millimeter", Factor: 1e-3, Abbreviations: []string{"mm"}},
)

func (lengthUnit) Table() *quantity.Table[lengthUnit] { return lengthTable }

func (u lengthUnit) String() string { return lengthTable.Name(u) }

type length = quantity.Quantity[lengthUnit]
