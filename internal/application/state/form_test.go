package state_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/state"
)

func TestForm_CoercionNumerica(t *testing.T) {
	f := state.Form{
		"quantity":  "10",
		"min_stock": "diez",
		"max_stock": 20.0,
		"center_id": 9,
		"price":     "12,50",
		"rating":    4.5,
		"bad_price": "gratis",
	}

	assert.Equal(t, 10, f.Int("quantity"))
	assert.Equal(t, 0, f.Int("min_stock"))
	assert.Equal(t, 20, f.Int("max_stock"))
	assert.Equal(t, 0, f.Int("ausente"))
	assert.Equal(t, int64(9), f.Int64("center_id"))
	assert.True(t, decimal.RequireFromString("12.5").Equal(f.Money("price")))
	assert.True(t, decimal.RequireFromString("4.5").Equal(f.Money("rating")))
	assert.True(t, f.Money("bad_price").IsZero())
	assert.True(t, f.Money("ausente").IsZero())
}

func TestForm_EnterosSiempreEnBaseDiez(t *testing.T) {
	f := state.Form{
		"quantity":  "010",
		"min_stock": "08",
		"center_id": " 09 ",
		"max_stock": "10.0",
		"units":     "10.5",
		"hex":       "0x10",
	}

	assert.Equal(t, 10, f.Int("quantity"))
	assert.Equal(t, 8, f.Int("min_stock"))
	assert.Equal(t, int64(9), f.Int64("center_id"))
	assert.Equal(t, 10, f.Int("max_stock"))
	assert.Equal(t, 0, f.Int("units"))
	assert.Equal(t, 0, f.Int("hex"))
}

func TestForm_OptionalIDYTextos(t *testing.T) {
	f := state.Form{"supplier_id": "", "center_id": "3", "categories": "Ropa, Material ,", "tags": []any{"a", " b "}, "name": "  Polo "}

	assert.Nil(t, f.OptionalID("supplier_id"))
	assert.Equal(t, int64(3), *f.OptionalID("center_id"))
	assert.Equal(t, []string{"Ropa", "Material"}, f.Strings("categories"))
	assert.Equal(t, []string{"a", "b"}, f.Strings("tags"))
	assert.Equal(t, []string{}, f.Strings("ausente"))
	assert.Equal(t, "Polo", f.String("name"))
}

func TestForm_TimeYLineas(t *testing.T) {
	f := state.Form{
		"expected_delivery": "2026-07-01",
		"empty":             "",
		"items": []any{
			map[string]any{"item_name": "Banco", "quantity": "2"},
			"no-es-un-mapa",
		},
	}

	d := f.Time("expected_delivery")
	if assert.NotNil(t, d) {
		assert.Equal(t, 2026, d.Year())
	}
	assert.Nil(t, f.Time("empty"))
	assert.Nil(t, f.Time("ausente"))

	lines := f.Forms("items")
	if assert.Len(t, lines, 1) {
		assert.Equal(t, 2, lines[0].Int("quantity"))
	}
}
