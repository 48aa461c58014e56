package entity

import (
	"encoding/json"
	"time"
)

// Estados de una solicitud de uniformes.
const (
	UniformPending   = "pending"
	UniformApproved  = "approved"
	UniformRejected  = "rejected"
	UniformDelivered = "delivered"
)

// UniformRequest solicitud de uniformes de un empleado (tabla uniform_requests).
type UniformRequest struct {
	ID           string          `json:"id"`
	EmployeeName string          `json:"employee_name"`
	CenterID     int64           `json:"center_id"`
	Items        json.RawMessage `json:"items"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IsValidUniformStatus valida un estado de solicitud.
func IsValidUniformStatus(s string) bool {
	switch s {
	case UniformPending, UniformApproved, UniformRejected, UniformDelivered:
		return true
	}
	return false
}
