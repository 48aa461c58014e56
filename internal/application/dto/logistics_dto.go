package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest entrada para crear un artículo de inventario.
type CreateInventoryItemRequest struct {
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
}

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person,omitempty"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Address       string          `json:"address,omitempty"`
	TaxID         string          `json:"tax_id,omitempty"`
	Categories    []string        `json:"categories,omitempty"`
	Rating        decimal.Decimal `json:"rating"`
}

// SupplierOrderItemRequest línea de un pedido a proveedor.
type SupplierOrderItemRequest struct {
	InventoryItemID *int64          `json:"inventory_item_id,omitempty"`
	ItemName        string          `json:"item_name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// CreateSupplierOrderRequest entrada para crear un pedido a proveedor con sus líneas.
// Si TotalAmount es cero y hay líneas, el total se calcula como suma de subtotales.
type CreateSupplierOrderRequest struct {
	OrderNumber      string                     `json:"order_number,omitempty"`
	SupplierID       int64                      `json:"supplier_id"`
	CenterID         *int64                     `json:"center_id,omitempty"`
	TotalAmount      decimal.Decimal            `json:"total_amount"`
	ExpectedDelivery *time.Time                 `json:"expected_delivery,omitempty"`
	Notes            string                     `json:"notes,omitempty"`
	Items            []SupplierOrderItemRequest `json:"items"`
}

// CreateProductCategoryRequest entrada para crear una categoría.
type CreateProductCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateUniformRequestRequest entrada para una solicitud de uniformes.
type CreateUniformRequestRequest struct {
	EmployeeName string          `json:"employee_name"`
	CenterID     int64           `json:"center_id"`
	Items        json.RawMessage `json:"items"`
	Notes        string          `json:"notes,omitempty"`
}

// StatusRequest cuerpo genérico de cambio de estado.
type StatusRequest struct {
	Status string `json:"status"`
}

// OrderStatsDTO agregados de pedidos a proveedor, recalculados en cada llamada.
type OrderStatsDTO struct {
	Total          int             `json:"total"`
	ByStatus       map[string]int  `json:"by_status"`
	PendingPayment int             `json:"pending_payment"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	UnpaidAmount   decimal.Decimal `json:"unpaid_amount"`
	InTransit      int             `json:"in_transit"`
}

// InventorySummaryDTO agregados del inventario por estado de stock.
type InventorySummaryDTO struct {
	TotalItems  int             `json:"total_items"`
	TotalUnits  int             `json:"total_units"`
	InStock     int             `json:"in_stock"`
	LowStock    int             `json:"low_stock"`
	OutOfStock  int             `json:"out_of_stock"`
	StockValue  decimal.Decimal `json:"stock_value"`
	CentersSeen []int64         `json:"centers"`
}
