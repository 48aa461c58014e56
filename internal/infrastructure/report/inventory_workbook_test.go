package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

func TestInventoryWorkbook_FilasYTotales(t *testing.T) {
	items := []entity.InventoryItem{
		{ID: 1, CenterID: 1, NombreItem: "Mancuerna 10kg", Quantity: 20, MinStock: 5, PurchasePrice: decimal.NewFromInt(25)},
		{ID: 2, CenterID: 2, NombreItem: "Esterilla", Quantity: 3, MinStock: 5, PurchasePrice: decimal.NewFromInt(10)},
		{ID: 3, CenterID: 2, NombreItem: "Polo M", Quantity: 0, MinStock: 2},
	}

	var buf bytes.Buffer
	_, err := NewInventoryWorkbook(items).WriteTo(&buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(inventorySheet)
	require.NoError(t, err)
	require.Len(t, rows, 6) // cabecera + 3 filas + hueco + totales

	assert.Equal(t, "Artículo", rows[0][2])
	assert.Equal(t, "Mancuerna 10kg", rows[1][2])
	assert.Equal(t, "En stock", rows[1][12])
	assert.Equal(t, "Stock bajo", rows[2][12])
	assert.Equal(t, "Sin stock", rows[3][12])

	assert.Equal(t, "Totales", rows[5][0])
	assert.Equal(t, "23", rows[5][6])
	formula, err := f.GetCellFormula(inventorySheet, "L6")
	require.NoError(t, err)
	assert.Equal(t, "SUM(L2:L4)", formula)
}

func TestInventoryWorkbook_Vacio(t *testing.T) {
	f, err := NewInventoryWorkbook(nil).Build()
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(inventorySheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "0 artículos", v)
}
