package repository

import (
	"context"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// LeadRepository define el puerto de persistencia para leads.
type LeadRepository interface {
	List(ctx context.Context) ([]entity.Lead, error)
	ListByStage(ctx context.Context, stage string) ([]entity.Lead, error)
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error)
	Update(ctx context.Context, id string, patch entity.LeadPatch) (*entity.Lead, error)
	Delete(ctx context.Context, id string) error
}

// LeadInteractionRepository define el puerto para lead_interactions. Sin Update: el
// historial es de solo anexado.
type LeadInteractionRepository interface {
	ListByLead(ctx context.Context, leadID string) ([]entity.LeadInteraction, error)
	Create(ctx context.Context, in *entity.LeadInteraction) (*entity.LeadInteraction, error)
}
