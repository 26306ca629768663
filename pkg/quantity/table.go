package quantity

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/unitkit/pkg/cache"
)

// Enum is the underlying type set of unit enumerations.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Unit is implemented by a kind's unit enumeration. The enumeration type is
// the kind parameter of Quantity, so quantities of different kinds are
// different types.
type Unit[U Enum] interface {
	Enum
	// Table returns the kind's static unit table. It is called on the zero
	// value and must not depend on the receiver.
	Table() *Table[U]
}

// Entry is one row of a unit table.
type Entry[U Enum] struct {
	Unit U
	// Name is the singular English name, e.g. "Kiloohm". Its lower-case form
	// is the unit's key in abbreviation catalogs.
	Name string
	// Plural is the plural English name, e.g. "Kiloohms".
	Plural string
	// Factor converts a value in this unit to the base unit by multiplication.
	Factor float64
	// Abbreviations are the culture-invariant tokens; the first one is the default.
	Abbreviations []string
}

func (e Entry[U]) key() string {
	return strings.ToLower(e.Name)
}

// Table is the read-only conversion registry of one quantity kind.
// Build it with NewTable in a package-level variable so initialization
// happens before any concurrent use.
type Table[U Enum] struct {
	kind       string
	catalogKey string
	undefined  U
	base       U
	entries    map[U]Entry[U]
	units      []U
	indexes    *cache.LRUCache[string, *unitIndex[U]]
}

// unitIndex maps text tokens to units for one culture.
type unitIndex[U Enum] struct {
	exact  map[string]U
	folded map[string]U
}

const indexCacheSize = 32

// NewTable builds the table of a kind. catalogKey is the namespace of the
// kind in abbreviation catalogs. undefined is the parse-failure sentinel.
//
// NewTable panics unless exactly one entry has factor 1 (the base unit), every
// factor is finite and positive, every entry has a name and an abbreviation,
// and no unit is repeated or equal to undefined.
func NewTable[U Enum](kind, catalogKey string, undefined U, entries ...Entry[U]) *Table[U] {
	t := &Table[U]{
		kind:       kind,
		catalogKey: catalogKey,
		undefined:  undefined,
		entries:    make(map[U]Entry[U], len(entries)),
		units:      make([]U, 0, len(entries)),
		indexes:    cache.NewLRUCache[string, *unitIndex[U]](indexCacheSize),
	}

	bases := 0
	for _, e := range entries {
		switch {
		case e.Unit == undefined:
			panic(fmt.Errorf("quantity: %s: entry %q uses the undefined unit", kind, e.Name))
		case e.Name == "" || len(e.Abbreviations) == 0:
			panic(fmt.Errorf("quantity: %s: unit %d needs a name and an abbreviation", kind, int64(e.Unit)))
		case math.IsNaN(e.Factor) || math.IsInf(e.Factor, 0) || e.Factor <= 0:
			panic(fmt.Errorf("quantity: %s: unit %s has invalid factor %v", kind, e.Name, e.Factor))
		}
		if _, dup := t.entries[e.Unit]; dup {
			panic(fmt.Errorf("quantity: %s: unit %s declared twice", kind, e.Name))
		}
		if e.Plural == "" {
			e.Plural = e.Name + "s"
		}
		e.Abbreviations = slices.Clone(e.Abbreviations)
		if e.Factor == 1 {
			bases++
			t.base = e.Unit
		}
		t.entries[e.Unit] = e
		t.units = append(t.units, e.Unit)
	}
	if bases != 1 {
		panic(fmt.Errorf("quantity: %s: want exactly one base unit with factor 1, got %d", kind, bases))
	}

	return t
}

// Kind returns the name of the quantity kind.
func (t *Table[U]) Kind() string { return t.kind }

// Base returns the base unit.
func (t *Table[U]) Base() U { return t.base }

// Undefined returns the parse-failure sentinel.
func (t *Table[U]) Undefined() U { return t.undefined }

// Units returns the declared units in declaration order.
func (t *Table[U]) Units() []U { return slices.Clone(t.units) }

// Entry returns the row of unit.
func (t *Table[U]) Entry(unit U) (Entry[U], bool) {
	e, ok := t.entries[unit]
	if ok {
		e.Abbreviations = slices.Clone(e.Abbreviations)
	}
	return e, ok
}

// Name returns the English name of unit, "Undefined" for the sentinel, and
// "Unit(n)" for values outside the table.
func (t *Table[U]) Name(unit U) string {
	if e, ok := t.entries[unit]; ok {
		return e.Name
	}
	if unit == t.undefined {
		return "Undefined"
	}
	return "Unit(" + strconv.FormatInt(int64(unit), 10) + ")"
}

func (t *Table[U]) entry(unit U) (Entry[U], error) {
	e, ok := t.entries[unit]
	if !ok {
		return Entry[U]{}, &UnsupportedUnitError{Kind: t.kind, Unit: t.Name(unit)}
	}
	return e, nil
}

// Factor returns the multiplier converting a value in unit to the base unit.
func (t *Table[U]) Factor(unit U) (float64, error) {
	e, err := t.entry(unit)
	if err != nil {
		return 0, err
	}
	return e.Factor, nil
}

// Abbreviation returns the display token of unit for culture. A localized
// abbreviation wins; otherwise the invariant default is returned.
func (t *Table[U]) Abbreviation(unit U, culture Culture) (string, error) {
	e, err := t.entry(unit)
	if err != nil {
		return "", err
	}
	if localized := t.localized(e, culture); len(localized) > 0 {
		return localized[0], nil
	}
	return e.Abbreviations[0], nil
}

// Abbreviations returns every token accepted for unit under culture,
// localized ones first, without duplicates.
func (t *Table[U]) Abbreviations(unit U, culture Culture) ([]string, error) {
	e, err := t.entry(unit)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, a := range append(t.localized(e, culture), e.Abbreviations...) {
		if !slices.Contains(out, a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// DisplayName returns the localized name of unit, falling back to its English name.
func (t *Table[U]) DisplayName(unit U, culture Culture) (string, error) {
	e, err := t.entry(unit)
	if err != nil {
		return "", err
	}
	if culture.IsInvariant() {
		return e.Name, nil
	}
	return CurrentLocalizer().UnitName(t.catalogKey, e.key(), culture, e.Name), nil
}

func (t *Table[U]) localized(e Entry[U], culture Culture) []string {
	if culture.IsInvariant() {
		return nil
	}
	return CurrentLocalizer().Abbreviations(t.catalogKey, e.key(), culture)
}

// Resolve maps a text token to a unit. Localized abbreviations of culture are
// tried first, then invariant abbreviations (both case-sensitive, since "mΩ"
// and "MΩ" differ), then unit names and plurals compared case-insensitively.
// Resolve returns the Undefined sentinel when nothing matches; callers must
// treat that as a failure.
func (t *Table[U]) Resolve(text string, culture Culture) U {
	text = strings.TrimSpace(text)
	if text == "" {
		return t.undefined
	}

	idx := t.index(culture)
	if u, ok := idx.exact[text]; ok {
		return u
	}
	if u, ok := idx.folded[cases.Fold().String(text)]; ok {
		return u
	}
	return t.undefined
}

func (t *Table[U]) index(culture Culture) *unitIndex[U] {
	key := culture.key() + "#" + strconv.FormatUint(localizerGeneration(), 10)
	if idx, ok := t.indexes.Get(key); ok {
		return idx
	}

	idx := &unitIndex[U]{
		exact:  make(map[string]U),
		folded: make(map[string]U),
	}
	fold := cases.Fold()
	addFolded := func(s string, u U) {
		if s == "" {
			return
		}
		s = fold.String(s)
		if _, taken := idx.folded[s]; !taken {
			idx.folded[s] = u
		}
	}

	for _, u := range t.units {
		for _, a := range t.entries[u].Abbreviations {
			if _, taken := idx.exact[a]; !taken {
				idx.exact[a] = u
			}
		}
	}
	claimed := make(map[string]bool)
	for _, u := range t.units {
		e := t.entries[u]
		for _, a := range t.localized(e, culture) {
			if !claimed[a] {
				idx.exact[a] = u
				claimed[a] = true
			}
		}
	}
	for _, u := range t.units {
		e := t.entries[u]
		addFolded(e.Name, u)
		addFolded(e.Plural, u)
		if !culture.IsInvariant() {
			addFolded(CurrentLocalizer().UnitName(t.catalogKey, e.key(), culture, ""), u)
		}
	}

	t.indexes.Put(key, idx)
	return idx
}
