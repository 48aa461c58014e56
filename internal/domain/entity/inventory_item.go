package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de stock (no se almacenan).
const (
	StockStatusInStock    = "in_stock"
	StockStatusLowStock   = "low_stock"
	StockStatusOutOfStock = "out_of_stock"
)

// InventoryItem representa un artículo del inventario de un centro (tabla inventory_items).
// Quantity nunca es negativa.
type InventoryItem struct {
	ID            int64           `json:"id"`
	NombreItem    string          `json:"nombre_item"`
	Categoria     string          `json:"categoria,omitempty"`
	Talla         string          `json:"talla,omitempty"`
	Color         string          `json:"color,omitempty"`
	Quantity      int             `json:"quantity"`
	MinStock      int             `json:"min_stock"`
	MaxStock      int             `json:"max_stock"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	CenterID      int64           `json:"center_id"`
	SupplierID    *int64          `json:"supplier_id,omitempty"`
	Location      string          `json:"location,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockStatus calcula el estado de stock: sin unidades, en o bajo el mínimo, o normal.
func (i InventoryItem) StockStatus() string {
	switch {
	case i.Quantity <= 0:
		return StockStatusOutOfStock
	case i.Quantity <= i.MinStock:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// StockValue valor del stock a precio de compra.
func (i InventoryItem) StockValue() decimal.Decimal {
	return i.PurchasePrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// InventoryItemPatch campos actualizables de un artículo; nil = no tocar.
type InventoryItemPatch struct {
	NombreItem    *string          `json:"nombre_item,omitempty"`
	Categoria     *string          `json:"categoria,omitempty"`
	Talla         *string          `json:"talla,omitempty"`
	Color         *string          `json:"color,omitempty"`
	Quantity      *int             `json:"quantity,omitempty"`
	MinStock      *int             `json:"min_stock,omitempty"`
	MaxStock      *int             `json:"max_stock,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	CenterID      *int64           `json:"center_id,omitempty"`
	SupplierID    *int64           `json:"supplier_id,omitempty"`
	Location      *string          `json:"location,omitempty"`
}

// IsEmpty indica que el patch no modifica ningún campo.
func (p InventoryItemPatch) IsEmpty() bool {
	return p == InventoryItemPatch{}
}
