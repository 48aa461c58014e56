package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor (tabla suppliers). El borrado es físico.
type Supplier struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person,omitempty"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Address       string          `json:"address,omitempty"`
	TaxID         string          `json:"tax_id,omitempty"`
	Categories    []string        `json:"categories"`
	Rating        decimal.Decimal `json:"rating"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SupplierPatch campos actualizables de un proveedor.
type SupplierPatch struct {
	Name          *string          `json:"name,omitempty"`
	ContactPerson *string          `json:"contact_person,omitempty"`
	Email         *string          `json:"email,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	Address       *string          `json:"address,omitempty"`
	TaxID         *string          `json:"tax_id,omitempty"`
	Categories    []string         `json:"categories,omitempty"`
	Rating        *decimal.Decimal `json:"rating,omitempty"`
	Active        *bool            `json:"active,omitempty"`
}

// IsEmpty indica que el patch no modifica ningún campo.
func (p SupplierPatch) IsEmpty() bool {
	return p.Name == nil && p.ContactPerson == nil && p.Email == nil && p.Phone == nil &&
		p.Address == nil && p.TaxID == nil && p.Categories == nil && p.Rating == nil && p.Active == nil
}

// ProductCategory categoría de producto (tabla product_categories).
type ProductCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
