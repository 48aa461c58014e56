package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etapas del pipeline comercial de un lead.
const (
	StageProspecto   = "prospecto"
	StageContactado  = "contactado"
	StageReunion     = "reunion"
	StagePropuesta   = "propuesta"
	StageNegociacion = "negociacion"
	StageCerrado     = "cerrado"
	StagePerdido     = "perdido"
)

// PipelineStages etapas en orden de avance (cerrado y perdido son terminales).
var PipelineStages = []string{
	StageProspecto, StageContactado, StageReunion, StagePropuesta,
	StageNegociacion, StageCerrado, StagePerdido,
}

var stageProbability = map[string]int{
	StageProspecto:   10,
	StageContactado:  20,
	StageReunion:     40,
	StagePropuesta:   60,
	StageNegociacion: 80,
	StageCerrado:     100,
	StagePerdido:     0,
}

// IsValidStage valida una etapa del pipeline.
func IsValidStage(stage string) bool {
	_, ok := stageProbability[stage]
	return ok
}

// DefaultProbability probabilidad de cierre sugerida para una etapa.
func DefaultProbability(stage string) int {
	return stageProbability[stage]
}

// Lead representa un contacto comercial (tabla leads).
type Lead struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Company        string          `json:"company,omitempty"`
	Source         string          `json:"source,omitempty"`
	Stage          string          `json:"stage"`
	Probability    int             `json:"probability"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	CenterID       *int64          `json:"center_id,omitempty"`
	AssignedTo     string          `json:"assigned_to,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// WeightedValue valor estimado ponderado por la probabilidad de cierre.
func (l Lead) WeightedValue() decimal.Decimal {
	return l.EstimatedValue.Mul(decimal.NewFromInt(int64(l.Probability))).Div(decimal.NewFromInt(100))
}

// LeadPatch campos actualizables de un lead.
type LeadPatch struct {
	Name           *string          `json:"name,omitempty"`
	Email          *string          `json:"email,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	Company        *string          `json:"company,omitempty"`
	Source         *string          `json:"source,omitempty"`
	Stage          *string          `json:"stage,omitempty"`
	Probability    *int             `json:"probability,omitempty"`
	EstimatedValue *decimal.Decimal `json:"estimated_value,omitempty"`
	CenterID       *int64           `json:"center_id,omitempty"`
	AssignedTo     *string          `json:"assigned_to,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

// IsEmpty indica que el patch no modifica ningún campo.
func (p LeadPatch) IsEmpty() bool {
	return p == LeadPatch{}
}

// Tipos de interacción con un lead.
const (
	InteractionLlamada  = "llamada"
	InteractionEmail    = "email"
	InteractionReunion  = "reunion"
	InteractionWhatsapp = "whatsapp"
	InteractionNota     = "nota"
)

// IsValidInteractionType valida el canal de una interacción.
func IsValidInteractionType(t string) bool {
	switch t {
	case InteractionLlamada, InteractionEmail, InteractionReunion, InteractionWhatsapp, InteractionNota:
		return true
	}
	return false
}

// LeadInteraction entrada inmutable del historial de un lead (tabla lead_interactions).
type LeadInteraction struct {
	ID         string    `json:"id"`
	LeadID     string    `json:"lead_id"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	CreatedBy  string    `json:"created_by,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
