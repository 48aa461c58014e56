package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un proyecto de inversión.
const (
	ProjectIdea       = "idea"
	ProjectAnalisis   = "analisis"
	ProjectCaptacion  = "captacion"
	ProjectEjecucion  = "ejecucion"
	ProjectCerrado    = "cerrado"
	ProjectDescartado = "descartado"
)

// IsValidProjectStatus valida un estado de proyecto.
func IsValidProjectStatus(s string) bool {
	switch s {
	case ProjectIdea, ProjectAnalisis, ProjectCaptacion, ProjectEjecucion, ProjectCerrado, ProjectDescartado:
		return true
	}
	return false
}

// Project proyecto de inversión (tabla projects).
type Project struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Status        string          `json:"status"`
	CapitalTarget decimal.Decimal `json:"capital_target"`
	CapitalRaised decimal.Decimal `json:"capital_raised"`
	TicketSize    decimal.Decimal `json:"ticket_size"`
	ROIProjection decimal.Decimal `json:"roi_projection"`
	Location      string          `json:"location,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// FundingProgress porcentaje del capital objetivo ya captado (0 si no hay objetivo).
func (p Project) FundingProgress() decimal.Decimal {
	if !p.CapitalTarget.IsPositive() {
		return decimal.Zero
	}
	return p.CapitalRaised.Div(p.CapitalTarget).Mul(decimal.NewFromInt(100)).Round(2)
}

// ProjectPatch campos actualizables de un proyecto.
type ProjectPatch struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Status        *string          `json:"status,omitempty"`
	CapitalTarget *decimal.Decimal `json:"capital_target,omitempty"`
	CapitalRaised *decimal.Decimal `json:"capital_raised,omitempty"`
	TicketSize    *decimal.Decimal `json:"ticket_size,omitempty"`
	ROIProjection *decimal.Decimal `json:"roi_projection,omitempty"`
	Location      *string          `json:"location,omitempty"`
}

// IsEmpty indica que el patch no modifica ningún campo.
func (p ProjectPatch) IsEmpty() bool {
	return p == ProjectPatch{}
}
