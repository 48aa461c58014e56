package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido a proveedor.
const (
	SupplierOrderDraft     = "draft"
	SupplierOrderSent      = "sent"
	SupplierOrderShipped   = "shipped"
	SupplierOrderDelivered = "delivered"
	SupplierOrderCancelled = "cancelled"
)

// Estados de pago de un pedido a proveedor.
const (
	PaymentPending = "pending"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

// SupplierOrder pedido a proveedor (tabla supplier_orders). TotalAmount es una columna
// almacenada y editable; no se reconcilia automáticamente con las líneas.
type SupplierOrder struct {
	ID               int64               `json:"id"`
	OrderNumber      string              `json:"order_number"`
	SupplierID       int64               `json:"supplier_id"`
	CenterID         *int64              `json:"center_id,omitempty"`
	Status           string              `json:"status"`
	PaymentStatus    string              `json:"payment_status"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	OrderDate        time.Time           `json:"order_date"`
	ExpectedDelivery *time.Time          `json:"expected_delivery,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	Items            []SupplierOrderItem `json:"items,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// SupplierOrderItem línea de un pedido (tabla supplier_order_items).
type SupplierOrderItem struct {
	ID              int64           `json:"id"`
	OrderID         int64           `json:"order_id"`
	InventoryItemID *int64          `json:"inventory_item_id,omitempty"`
	ItemName        string          `json:"item_name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// Subtotal cantidad × precio unitario.
func (it SupplierOrderItem) Subtotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// ItemsTotal suma de subtotales de las líneas cargadas.
func (o SupplierOrder) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// TotalMismatch indica si el total almacenado difiere de la suma de líneas.
// Solo es significativo cuando Items está cargado.
func (o SupplierOrder) TotalMismatch() bool {
	return len(o.Items) > 0 && !o.TotalAmount.Equal(o.ItemsTotal())
}

// IsValidSupplierOrderStatus valida un estado de pedido.
func IsValidSupplierOrderStatus(s string) bool {
	switch s {
	case SupplierOrderDraft, SupplierOrderSent, SupplierOrderShipped, SupplierOrderDelivered, SupplierOrderCancelled:
		return true
	}
	return false
}

// IsValidPaymentStatus valida un estado de pago.
func IsValidPaymentStatus(s string) bool {
	return s == PaymentPending || s == PaymentPartial || s == PaymentPaid
}

// SupplierOrderPatch campos actualizables de la cabecera de un pedido.
type SupplierOrderPatch struct {
	SupplierID       *int64           `json:"supplier_id,omitempty"`
	CenterID         *int64           `json:"center_id,omitempty"`
	Status           *string          `json:"status,omitempty"`
	PaymentStatus    *string          `json:"payment_status,omitempty"`
	TotalAmount      *decimal.Decimal `json:"total_amount,omitempty"`
	ExpectedDelivery *time.Time       `json:"expected_delivery,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

// IsEmpty indica que el patch no modifica ningún campo.
func (p SupplierOrderPatch) IsEmpty() bool {
	return p == SupplierOrderPatch{}
}
