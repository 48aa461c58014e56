package repository

import (
	"context"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]entity.Project, error)
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	Create(ctx context.Context, project *entity.Project) (*entity.Project, error)
	Update(ctx context.Context, id string, patch entity.ProjectPatch) (*entity.Project, error)
	Delete(ctx context.Context, id string) error
}
