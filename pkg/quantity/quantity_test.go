package quantity_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/unitkit/pkg/quantity"
)

var allLengthUnits = []lengthUnit{meter, kilometer, millimeter}

func TestFromAndAs(t *testing.T) {
	t.Run("converts between units", func(t *testing.T) {
		q := quantity.From(1, kilometer)
		assert.Equal(t, 1000.0, q.Base())
		assert.Equal(t, 1e6, q.MustAs(millimeter))

		v, err := q.As(meter)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, v)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, u := range allLengthUnits {
			for _, v := range []float64{0, 1, -2.5, 5.5, 1234.5678, 1e-9, 3e12} {
				got := quantity.From(v, u).MustAs(u)
				assert.InDelta(t, v, got, math.Abs(v)*1e-12, "unit %s value %v", u, v)
			}
		}
	})

	t.Run("base unit round trip is exact", func(t *testing.T) {
		for _, v := range []float64{0.1, 1.0 / 3, 5.5, -7e-300} {
			assert.Equal(t, v, quantity.From(v, meter).MustAs(meter))
		}
	})

	t.Run("non-finite values propagate", func(t *testing.T) {
		assert.True(t, math.IsNaN(quantity.From(math.NaN(), kilometer).Base()))
		assert.True(t, math.IsInf(quantity.From(math.Inf(-1), kilometer).MustAs(meter), -1))
	})

	t.Run("undefined unit", func(t *testing.T) {
		_, err := quantity.From(1, meter).As(lengthUndefined)
		require.ErrorIs(t, err, quantity.ErrUnsupportedUnit)

		var unitErr *quantity.UnsupportedUnitError
		require.ErrorAs(t, err, &unitErr)
		assert.Equal(t, "Length", unitErr.Kind)
		assert.Equal(t, "Undefined", unitErr.Unit)
	})

	t.Run("unit outside the table", func(t *testing.T) {
		_, err := quantity.TryFrom(1, lengthUnknown)
		require.ErrorIs(t, err, quantity.ErrUnsupportedUnit)
		assert.Contains(t, err.Error(), "Unit(42)")

		assert.Panics(t, func() { quantity.From(1, lengthUnknown) })
		assert.Panics(t, func() { quantity.Zero[lengthUnit]().MustAs(lengthUndefined) })
	})

	t.Run("zero value", func(t *testing.T) {
		var q length
		assert.True(t, q.IsZero())
		assert.True(t, q.Equal(quantity.Zero[lengthUnit]()))
		assert.True(t, q.Equal(quantity.FromBase[lengthUnit](0)))
	})
}

func TestArithmetic(t *testing.T) {
	a := quantity.From(1.5, kilometer)
	b := quantity.From(250, meter)

	assert.Equal(t, 1750.0, a.Add(b).Base())
	assert.Equal(t, 1250.0, a.Sub(b).Base())
	assert.Equal(t, -1500.0, a.Neg().Base())
	assert.Equal(t, 1500.0, a.Neg().Abs().Base())
	assert.Equal(t, 3000.0, a.Mul(2).Base())
	assert.Equal(t, 750.0, a.Div(2).Base())
	assert.Equal(t, 6.0, a.Ratio(b))

	t.Run("additivity", func(t *testing.T) {
		for _, u := range allLengthUnits {
			sum := quantity.From(2.25, u).Add(quantity.From(4.5, u))
			assert.InEpsilon(t, quantity.From(6.75, u).Base(), sum.Base(), 1e-12)
		}
	})

	t.Run("scale invariance", func(t *testing.T) {
		for _, u := range allLengthUnits {
			scaled := quantity.From(3.3, u).Mul(7)
			assert.InEpsilon(t, quantity.From(3.3*7, u).Base(), scaled.Base(), 1e-12)
		}
	})

	t.Run("ratio of equal quantities", func(t *testing.T) {
		for _, u := range allLengthUnits {
			q := quantity.From(-12.5, u)
			assert.Equal(t, 1.0, q.Ratio(q))
		}
	})

	t.Run("division by zero follows IEEE-754", func(t *testing.T) {
		assert.True(t, math.IsInf(a.Div(0).Base(), 1))
		assert.True(t, math.IsNaN(quantity.Zero[lengthUnit]().Ratio(quantity.Zero[lengthUnit]())))
	})
}

func TestComparison(t *testing.T) {
	small := quantity.FromBase[lengthUnit](-1)
	large := quantity.FromBase[lengthUnit](2)

	assert.True(t, small.Less(large))
	assert.True(t, small.LessOrEqual(large))
	assert.True(t, large.Greater(small))
	assert.True(t, large.GreaterOrEqual(small))
	assert.False(t, large.Less(small))
	assert.Equal(t, -1, small.Compare(large))
	assert.Equal(t, 1, large.Compare(small))
	assert.Equal(t, 0, large.Compare(quantity.From(2, meter)))

	t.Run("ordering follows base magnitude", func(t *testing.T) {
		values := []float64{-1e9, -3, -0.5, 0, 1e-12, 0.5, 7, 1e300}
		for i := 1; i < len(values); i++ {
			a := quantity.FromBase[lengthUnit](values[i-1])
			b := quantity.FromBase[lengthUnit](values[i])
			assert.True(t, a.Less(b), "%v < %v", values[i-1], values[i])
		}
	})

	t.Run("equality is exact", func(t *testing.T) {
		assert.True(t, quantity.From(1, kilometer).Equal(quantity.From(1000, meter)))
		assert.True(t, quantity.From(1, kilometer).Equal(quantity.From(1e6, millimeter)))

		viaMillimeters := quantity.From(0.1, millimeter).Mul(3)
		direct := quantity.From(0.3, millimeter)
		assert.NotEqual(t, direct.Base(), viaMillimeters.Base())
		assert.False(t, direct.Equal(viaMillimeters))
	})

	t.Run("hash is consistent with equality", func(t *testing.T) {
		zero := quantity.FromBase[lengthUnit](0)
		negZero := quantity.FromBase[lengthUnit](math.Copysign(0, -1))
		assert.True(t, zero.Equal(negZero))
		assert.Equal(t, zero.Hash(), negZero.Hash())

		assert.Equal(t, quantity.From(1, kilometer).Hash(), quantity.From(1000, meter).Hash())
		assert.NotEqual(t, quantity.From(1, meter).Hash(), quantity.From(2, meter).Hash())
	})

	t.Run("usable as map key", func(t *testing.T) {
		seen := map[length]string{quantity.From(1, kilometer): "km"}
		assert.Equal(t, "km", seen[quantity.From(1000, meter)])
	})
}

func TestText(t *testing.T) {
	t.Run("string uses base unit and defaults", func(t *testing.T) {
		assert.Equal(t, "1,500 m", quantity.From(1.5, kilometer).String())
		assert.Equal(t, "0.0012 m", quantity.From(1.234, millimeter).String())
	})

	t.Run("marshal round trip", func(t *testing.T) {
		for _, q := range []length{
			quantity.From(5.5, kilometer),
			quantity.From(0.1, millimeter),
			quantity.FromBase[lengthUnit](-1e21),
			quantity.Zero[lengthUnit](),
		} {
			text, err := q.MarshalText()
			require.NoError(t, err)

			var back length
			require.NoError(t, back.UnmarshalText(text))
			assert.True(t, q.Equal(back), "%s", text)
		}
	})

	t.Run("marshal text format", func(t *testing.T) {
		text, err := quantity.From(5.5, kilometer).MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "5500 m", string(text))
	})

	t.Run("non-finite values do not marshal", func(t *testing.T) {
		_, err := quantity.FromBase[lengthUnit](math.Inf(1)).MarshalText()
		require.ErrorIs(t, err, quantity.ErrInvalidNumber)
	})

	t.Run("json", func(t *testing.T) {
		type route struct {
			Distance length `json:"distance"`
		}
		data, err := json.Marshal(route{Distance: quantity.From(2, kilometer)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"distance":"2000 m"}`, string(data))

		var r route
		require.NoError(t, json.Unmarshal([]byte(`{"distance":"12 km"}`), &r))
		assert.Equal(t, 12000.0, r.Distance.Base())

		err = json.Unmarshal([]byte(`{"distance":"12 parsecs"}`), &r)
		require.ErrorIs(t, err, quantity.ErrUnrecognizedUnit)
	})
}
