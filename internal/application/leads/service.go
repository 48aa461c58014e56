// Package leads gestiona el pipeline comercial: leads, cambios de etapa y el historial
// de interacciones (solo anexado).
package leads

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/facade"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

// Service funciones de servicio de leads.
type Service struct {
	leads        repository.LeadRepository
	interactions repository.LeadInteractionRepository
	inv          cache.Invalidator
	log          *logger.Logger
	now          func() time.Time
}

// NewService construye el servicio. inv puede ser nil.
func NewService(leads repository.LeadRepository, interactions repository.LeadInteractionRepository, inv cache.Invalidator, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{leads: leads, interactions: interactions, inv: inv, log: log.Named("leads"), now: time.Now}
}

// GetLeads devuelve todos los leads (más recientes primero).
func (s *Service) GetLeads(ctx context.Context) result.Result[[]entity.Lead] {
	rows, err := s.leads.List(ctx)
	return facade.Rows(s.log, "GetLeads", rows, err)
}

// GetLeadsByStage devuelve los leads de una etapa.
func (s *Service) GetLeadsByStage(ctx context.Context, stage string) result.Result[[]entity.Lead] {
	if !entity.IsValidStage(stage) {
		return facade.Invalid[[]entity.Lead](s.log, "GetLeadsByStage", fmt.Errorf("%w: etapa %q", domain.ErrInvalidInput, stage))
	}
	rows, err := s.leads.ListByStage(ctx, stage)
	return facade.Rows(s.log, "GetLeadsByStage", rows, err)
}

// GetLeadByID obtiene un lead.
func (s *Service) GetLeadByID(ctx context.Context, id string) result.Result[*entity.Lead] {
	row, err := s.leads.GetByID(ctx, id)
	return facade.One(s.log, "GetLeadByID", row, err)
}

// CreateLead da de alta un lead. Sin etapa entra como prospecto; sin probabilidad toma
// la de su etapa.
func (s *Service) CreateLead(ctx context.Context, in dto.CreateLeadRequest) result.Result[*entity.Lead] {
	if strings.TrimSpace(in.Name) == "" {
		return facade.Invalid[*entity.Lead](s.log, "CreateLead", fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput))
	}
	stage := in.Stage
	if stage == "" {
		stage = entity.StageProspecto
	}
	if !entity.IsValidStage(stage) {
		return facade.Invalid[*entity.Lead](s.log, "CreateLead", fmt.Errorf("%w: etapa %q", domain.ErrInvalidInput, stage))
	}
	probability, err := resolveProbability(stage, in.Probability)
	if err != nil {
		return facade.Invalid[*entity.Lead](s.log, "CreateLead", err)
	}
	lead := &entity.Lead{
		Name:           strings.TrimSpace(in.Name),
		Email:          in.Email,
		Phone:          in.Phone,
		Company:        in.Company,
		Source:         in.Source,
		Stage:          stage,
		Probability:    probability,
		EstimatedValue: in.EstimatedValue,
		CenterID:       in.CenterID,
		AssignedTo:     in.AssignedTo,
		Notes:          in.Notes,
	}
	row, err := s.leads.Create(ctx, lead)
	return facade.Touch(s.inv, cache.KeyLeads, facade.One(s.log, "CreateLead", row, err))
}

// UpdateLead aplica los campos presentes en el patch.
func (s *Service) UpdateLead(ctx context.Context, id string, patch entity.LeadPatch) result.Result[*entity.Lead] {
	if patch.IsEmpty() {
		return facade.Invalid[*entity.Lead](s.log, "UpdateLead", fmt.Errorf("%w: nada que actualizar", domain.ErrInvalidInput))
	}
	if patch.Stage != nil && !entity.IsValidStage(*patch.Stage) {
		return facade.Invalid[*entity.Lead](s.log, "UpdateLead", fmt.Errorf("%w: etapa %q", domain.ErrInvalidInput, *patch.Stage))
	}
	if patch.Probability != nil && (*patch.Probability < 0 || *patch.Probability > 100) {
		return facade.Invalid[*entity.Lead](s.log, "UpdateLead", fmt.Errorf("%w: probabilidad fuera de rango", domain.ErrInvalidInput))
	}
	row, err := s.leads.Update(ctx, id, patch)
	return facade.Touch(s.inv, cache.KeyLeads, facade.One(s.log, "UpdateLead", row, err))
}

// UpdateLeadStage mueve el lead de etapa. probability nil usa la probabilidad por
// defecto de la etapa.
func (s *Service) UpdateLeadStage(ctx context.Context, id, stage string, probability *int) result.Result[*entity.Lead] {
	if !entity.IsValidStage(stage) {
		return facade.Invalid[*entity.Lead](s.log, "UpdateLeadStage", fmt.Errorf("%w: etapa %q", domain.ErrInvalidInput, stage))
	}
	p, err := resolveProbability(stage, probability)
	if err != nil {
		return facade.Invalid[*entity.Lead](s.log, "UpdateLeadStage", err)
	}
	row, err := s.leads.Update(ctx, id, entity.LeadPatch{Stage: &stage, Probability: &p})
	return facade.Touch(s.inv, cache.KeyLeads, facade.One(s.log, "UpdateLeadStage", row, err))
}

// DeleteLead borra un lead.
func (s *Service) DeleteLead(ctx context.Context, id string) result.Result[struct{}] {
	err := s.leads.Delete(ctx, id)
	return facade.Touch(s.inv, cache.KeyLeads, facade.Done(s.log, "DeleteLead", err))
}

// GetLeadInteractions devuelve el historial de un lead (más antiguo primero).
func (s *Service) GetLeadInteractions(ctx context.Context, leadID string) result.Result[[]entity.LeadInteraction] {
	rows, err := s.interactions.ListByLead(ctx, leadID)
	return facade.Rows(s.log, "GetLeadInteractions", rows, err)
}

// AddLeadInteraction anexa una interacción. No existe ruta de modificación.
func (s *Service) AddLeadInteraction(ctx context.Context, leadID string, in dto.CreateLeadInteractionRequest) result.Result[*entity.LeadInteraction] {
	if strings.TrimSpace(leadID) == "" || strings.TrimSpace(in.Content) == "" {
		return facade.Invalid[*entity.LeadInteraction](s.log, "AddLeadInteraction", fmt.Errorf("%w: lead y contenido son obligatorios", domain.ErrInvalidInput))
	}
	if !entity.IsValidInteractionType(in.Type) {
		return facade.Invalid[*entity.LeadInteraction](s.log, "AddLeadInteraction", fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, in.Type))
	}
	at := s.now()
	if in.OccurredAt != nil {
		at = *in.OccurredAt
	}
	row, err := s.interactions.Create(ctx, &entity.LeadInteraction{
		LeadID:     leadID,
		Type:       in.Type,
		Content:    strings.TrimSpace(in.Content),
		CreatedBy:  in.CreatedBy,
		OccurredAt: at,
	})
	return facade.Touch(s.inv, cache.KeyLeadInteractions, facade.One(s.log, "AddLeadInteraction", row, err))
}

func resolveProbability(stage string, p *int) (int, error) {
	if p == nil {
		return entity.DefaultProbability(stage), nil
	}
	if *p < 0 || *p > 100 {
		return 0, fmt.Errorf("%w: probabilidad fuera de rango", domain.ErrInvalidInput)
	}
	return *p, nil
}
