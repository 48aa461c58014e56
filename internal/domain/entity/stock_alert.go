package entity

import "time"

// StockAlert alerta de stock generada para un artículo (tabla stock_alerts).
type StockAlert struct {
	ID              int64      `json:"id"`
	InventoryItemID int64      `json:"inventory_item_id"`
	CenterID        int64      `json:"center_id"`
	AlertType       string     `json:"alert_type"` // low_stock, out_of_stock, overstock
	Message         string     `json:"message"`
	Resolved        bool       `json:"resolved"`
	CreatedAt       time.Time  `json:"created_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
}
