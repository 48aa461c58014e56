package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido interno de centro.
const (
	OrderPending   = "pending"
	OrderSent      = "sent"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order pedido interno de un centro a logística (tabla orders). Items es un documento JSON.
type Order struct {
	ID          string          `json:"id"`
	CenterID    int64           `json:"center_id"`
	RequestedBy string          `json:"requested_by,omitempty"`
	Status      string          `json:"status"`
	Items       json.RawMessage `json:"items,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes,omitempty"`
	SentAt      *time.Time      `json:"sent_at,omitempty"`
	DeliveredAt *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
