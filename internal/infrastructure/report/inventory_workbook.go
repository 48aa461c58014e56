// Package report exporta listados a hojas de cálculo.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

const inventorySheet = "Inventario"

var inventoryHeaders = []string{
	"ID", "Centro", "Artículo", "Categoría", "Talla", "Color", "Cantidad",
	"Mínimo", "Máximo", "P. Compra", "P. Venta", "Valor stock", "Estado", "Ubicación",
}

var stockStatusLabel = map[string]string{
	entity.StockStatusInStock:    "En stock",
	entity.StockStatusLowStock:   "Stock bajo",
	entity.StockStatusOutOfStock: "Sin stock",
}

// InventoryWorkbook construye el XLSX del inventario con estado de stock y totales.
type InventoryWorkbook struct {
	items []entity.InventoryItem
}

// NewInventoryWorkbook prepara el libro para los artículos dados.
func NewInventoryWorkbook(items []entity.InventoryItem) *InventoryWorkbook {
	return &InventoryWorkbook{items: items}
}

// Build genera el libro. El llamador debe cerrarlo.
func (w *InventoryWorkbook) Build() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", inventorySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9EAD3"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	moneyStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4})
	warnStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#B42818", Bold: true},
	})

	if err := f.SetSheetRow(inventorySheet, "A1", &inventoryHeaders); err != nil {
		f.Close()
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	last, _ := excelize.ColumnNumberToName(len(inventoryHeaders))
	f.SetCellStyle(inventorySheet, "A1", last+"1", headerStyle)

	var units int
	r := 2
	for _, it := range w.items {
		status := it.StockStatus()
		values := []any{
			it.ID, it.CenterID, it.NombreItem, it.Categoria, it.Talla, it.Color, it.Quantity,
			it.MinStock, it.MaxStock, it.PurchasePrice.InexactFloat64(), it.SalePrice.InexactFloat64(),
			it.StockValue().InexactFloat64(), stockStatusLabel[status], it.Location,
		}
		cell := fmt.Sprintf("A%d", r)
		if err := f.SetSheetRow(inventorySheet, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("fila %d: %w", r, err)
		}
		f.SetCellStyle(inventorySheet, fmt.Sprintf("J%d", r), fmt.Sprintf("L%d", r), moneyStyle)
		if status != entity.StockStatusInStock {
			f.SetCellStyle(inventorySheet, fmt.Sprintf("M%d", r), fmt.Sprintf("M%d", r), warnStyle)
		}
		units += it.Quantity
		r++
	}

	totalRow := r + 1
	summaryStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 4})
	f.SetCellValue(inventorySheet, fmt.Sprintf("A%d", totalRow), "Totales")
	f.SetCellValue(inventorySheet, fmt.Sprintf("C%d", totalRow), fmt.Sprintf("%d artículos", len(w.items)))
	f.SetCellValue(inventorySheet, fmt.Sprintf("G%d", totalRow), units)
	if len(w.items) > 0 {
		f.SetCellFormula(inventorySheet, fmt.Sprintf("L%d", totalRow), fmt.Sprintf("SUM(L2:L%d)", r-1))
	} else {
		f.SetCellValue(inventorySheet, fmt.Sprintf("L%d", totalRow), 0)
	}
	f.SetCellStyle(inventorySheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("%s%d", last, totalRow), summaryStyle)

	widths := []float64{8, 8, 30, 16, 8, 10, 10, 9, 9, 12, 12, 14, 12, 18}
	for i, wd := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(inventorySheet, col, col, wd)
	}
	f.SetPanes(inventorySheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
	return f, nil
}

// WriteTo escribe el libro en out.
func (w *InventoryWorkbook) WriteTo(out io.Writer) (int64, error) {
	f, err := w.Build()
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return f.WriteTo(out)
}
