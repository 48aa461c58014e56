package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeadRequest entrada para crear un lead. Stage vacío = prospecto.
type CreateLeadRequest struct {
	Name           string          `json:"name"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Company        string          `json:"company,omitempty"`
	Source         string          `json:"source,omitempty"`
	Stage          string          `json:"stage,omitempty"`
	Probability    *int            `json:"probability,omitempty"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	CenterID       *int64          `json:"center_id,omitempty"`
	AssignedTo     string          `json:"assigned_to,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// UpdateLeadStageRequest mueve un lead de etapa. Sin Probability se usa la de la etapa.
type UpdateLeadStageRequest struct {
	Stage       string `json:"stage"`
	Probability *int   `json:"probability,omitempty"`
}

// CreateLeadInteractionRequest entrada para anexar una interacción.
type CreateLeadInteractionRequest struct {
	Type       string     `json:"type"`
	Content    string     `json:"content"`
	CreatedBy  string     `json:"created_by,omitempty"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

// PipelineStageDTO agregado de una etapa del pipeline.
type PipelineStageDTO struct {
	Stage         string          `json:"stage"`
	Count         int             `json:"count"`
	Value         decimal.Decimal `json:"value"`
	WeightedValue decimal.Decimal `json:"weighted_value"`
}

// PipelineSummaryDTO resumen del pipeline comercial.
type PipelineSummaryDTO struct {
	Stages         []PipelineStageDTO `json:"stages"`
	TotalLeads     int                `json:"total_leads"`
	OpenLeads      int                `json:"open_leads"`
	WeightedValue  decimal.Decimal    `json:"weighted_value"`
	ConversionRate decimal.Decimal    `json:"conversion_rate"` // cerrados / (cerrados + perdidos), en %
}

// CreateProjectRequest entrada para crear un proyecto de inversión. Status vacío = idea.
type CreateProjectRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Status        string          `json:"status,omitempty"`
	CapitalTarget decimal.Decimal `json:"capital_target"`
	CapitalRaised decimal.Decimal `json:"capital_raised"`
	TicketSize    decimal.Decimal `json:"ticket_size"`
	ROIProjection decimal.Decimal `json:"roi_projection"`
	Location      string          `json:"location,omitempty"`
}

// PortfolioSummaryDTO agregado de la cartera de proyectos.
type PortfolioSummaryDTO struct {
	Projects      int             `json:"projects"`
	ByStatus      map[string]int  `json:"by_status"`
	CapitalTarget decimal.Decimal `json:"capital_target"`
	CapitalRaised decimal.Decimal `json:"capital_raised"`
	Progress      decimal.Decimal `json:"progress"`
}
