package quantity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/unitkit/pkg/i18n"
	"github.com/dmitrymomot/unitkit/pkg/quantity"
)

var testCatalogs = map[string]map[string]any{
	"en": {
		"length": map[string]any{
			"kilometer": []any{"km", "klick"},
		},
	},
	"fr": {
		"length": map[string]any{
			"millimeter": "m",
		},
	},
	"ru": {
		"length": map[string]any{
			"meter":      "м",
			"kilometer":  []any{"км"},
			"millimeter": []string{"мм"},
			"names": map[string]any{
				"meter":     "метр",
				"kilometer": "километр",
			},
		},
	},
}

var (
	ruCulture = quantity.NewCulture(language.Russian)
	deCulture = quantity.MustParseCulture("de-DE")
	enCulture = quantity.MustParseCulture("en-US")
	frCulture = quantity.NewCulture(language.French)
)

// useTestLocalizer installs a localizer serving testCatalogs for the duration of the test.
func useTestLocalizer(t *testing.T) {
	t.Helper()
	prev := quantity.CurrentLocalizer()
	l, err := quantity.NewLocalizer(context.Background(), &i18n.MapAdapter{Data: testCatalogs})
	require.NoError(t, err)
	quantity.SetLocalizer(l)
	t.Cleanup(func() { quantity.SetLocalizer(prev) })
}

func TestNewLocalizer(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		_, err := quantity.NewLocalizer(context.Background(), nil)
		require.ErrorIs(t, err, i18n.ErrNilAdapter)

		_, err = quantity.NewLocalizer(context.Background(), i18n.NewDirectoryAdapter(nil, "x"))
		require.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("adapter failure", func(t *testing.T) {
		adapter := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), "testdata/missing")
		_, err := quantity.NewLocalizer(context.Background(), adapter)
		require.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("languages", func(t *testing.T) {
		l, err := quantity.NewLocalizer(context.Background(), &i18n.MapAdapter{Data: testCatalogs})
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "fr", "ru"}, l.Languages())
	})
}

func TestBuiltinLocalizer(t *testing.T) {
	l, err := quantity.NewBuiltinLocalizer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en", "ru"}, l.Languages())

	t.Run("matches regional cultures to catalog languages", func(t *testing.T) {
		assert.Equal(t, []string{"кОм"}, l.Abbreviations("electric_resistance", "kiloohm", quantity.MustParseCulture("ru-RU")))
		assert.Equal(t, []string{"kΩ", "kOhm"}, l.Abbreviations("electric_resistance", "kiloohm", quantity.MustParseCulture("en-GB")))
	})

	t.Run("unit names", func(t *testing.T) {
		assert.Equal(t, "мегаом", l.UnitName("electric_resistance", "megaohm", ruCulture, "Megaohm"))
		assert.Equal(t, "Kiloohm", l.UnitName("electric_resistance", "kiloohm", deCulture, "x"))
	})

	t.Run("unsupported language and invariant culture", func(t *testing.T) {
		assert.Nil(t, l.Abbreviations("electric_resistance", "ohm", quantity.MustParseCulture("ja")))
		assert.Nil(t, l.Abbreviations("electric_resistance", "ohm", quantity.InvariantCulture))
		assert.Equal(t, "Ohm", l.UnitName("electric_resistance", "ohm", quantity.MustParseCulture("ja"), "Ohm"))
	})

	t.Run("missing entries", func(t *testing.T) {
		assert.Nil(t, l.Abbreviations("electric_resistance", "milliohm", enCulture))
		assert.Nil(t, l.Abbreviations("length", "meter", enCulture))
	})
}

func TestNilLocalizer(t *testing.T) {
	var l *quantity.Localizer
	assert.Nil(t, l.Languages())
	assert.Nil(t, l.Abbreviations("length", "meter", ruCulture))
	assert.Equal(t, "Meter", l.UnitName("length", "meter", ruCulture, "Meter"))
}

func TestSetLocalizer(t *testing.T) {
	prev := quantity.CurrentLocalizer()
	require.NotNil(t, prev)
	t.Cleanup(func() { quantity.SetLocalizer(prev) })

	assert.Equal(t, lengthUndefined, lengthTable.Resolve("км", ruCulture))

	l, err := quantity.NewLocalizer(context.Background(), &i18n.MapAdapter{Data: testCatalogs})
	require.NoError(t, err)
	quantity.SetLocalizer(l)
	assert.Same(t, l, quantity.CurrentLocalizer())
	assert.Equal(t, kilometer, lengthTable.Resolve("км", ruCulture), "cached index must be rebuilt")

	quantity.SetLocalizer(nil)
	assert.NotNil(t, quantity.CurrentLocalizer())
	assert.Equal(t, lengthUndefined, lengthTable.Resolve("км", ruCulture))
}
