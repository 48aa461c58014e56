// Package projects gestiona la cartera de proyectos de inversión.
package projects

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/facade"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

// Service funciones de servicio de proyectos.
type Service struct {
	repo repository.ProjectRepository
	inv  cache.Invalidator
	log  *logger.Logger
}

// NewService construye el servicio. inv puede ser nil.
func NewService(repo repository.ProjectRepository, inv cache.Invalidator, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, inv: inv, log: log.Named("projects")}
}

// GetProjects devuelve todos los proyectos.
func (s *Service) GetProjects(ctx context.Context) result.Result[[]entity.Project] {
	rows, err := s.repo.List(ctx)
	return facade.Rows(s.log, "GetProjects", rows, err)
}

// GetProjectByID obtiene un proyecto.
func (s *Service) GetProjectByID(ctx context.Context, id string) result.Result[*entity.Project] {
	row, err := s.repo.GetByID(ctx, id)
	return facade.One(s.log, "GetProjectByID", row, err)
}

// CreateProject da de alta un proyecto (estado idea si no se indica).
func (s *Service) CreateProject(ctx context.Context, in dto.CreateProjectRequest) result.Result[*entity.Project] {
	if strings.TrimSpace(in.Name) == "" {
		return facade.Invalid[*entity.Project](s.log, "CreateProject", fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput))
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectIdea
	}
	if !entity.IsValidProjectStatus(status) {
		return facade.Invalid[*entity.Project](s.log, "CreateProject", fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status))
	}
	if err := validateAmounts(in.CapitalTarget, in.CapitalRaised, in.TicketSize); err != nil {
		return facade.Invalid[*entity.Project](s.log, "CreateProject", err)
	}
	row, err := s.repo.Create(ctx, &entity.Project{
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		Status:        status,
		CapitalTarget: in.CapitalTarget,
		CapitalRaised: in.CapitalRaised,
		TicketSize:    in.TicketSize,
		ROIProjection: in.ROIProjection,
		Location:      in.Location,
	})
	return facade.Touch(s.inv, cache.KeyProjects, facade.One(s.log, "CreateProject", row, err))
}

// UpdateProject aplica los campos presentes en el patch.
func (s *Service) UpdateProject(ctx context.Context, id string, patch entity.ProjectPatch) result.Result[*entity.Project] {
	if patch.IsEmpty() {
		return facade.Invalid[*entity.Project](s.log, "UpdateProject", fmt.Errorf("%w: nada que actualizar", domain.ErrInvalidInput))
	}
	if patch.Status != nil && !entity.IsValidProjectStatus(*patch.Status) {
		return facade.Invalid[*entity.Project](s.log, "UpdateProject", fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, *patch.Status))
	}
	for _, d := range []*decimal.Decimal{patch.CapitalTarget, patch.CapitalRaised, patch.TicketSize} {
		if d != nil && d.IsNegative() {
			return facade.Invalid[*entity.Project](s.log, "UpdateProject", fmt.Errorf("%w: importes negativos", domain.ErrInvalidInput))
		}
	}
	row, err := s.repo.Update(ctx, id, patch)
	return facade.Touch(s.inv, cache.KeyProjects, facade.One(s.log, "UpdateProject", row, err))
}

// MarkProjectStatus cambia el estado del proyecto.
func (s *Service) MarkProjectStatus(ctx context.Context, id, status string) result.Result[struct{}] {
	if !entity.IsValidProjectStatus(status) {
		return facade.Invalid[struct{}](s.log, "MarkProjectStatus", fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status))
	}
	_, err := s.repo.Update(ctx, id, entity.ProjectPatch{Status: &status})
	return facade.Touch(s.inv, cache.KeyProjects, facade.Done(s.log, "MarkProjectStatus", err))
}

// DeleteProject borra un proyecto.
func (s *Service) DeleteProject(ctx context.Context, id string) result.Result[struct{}] {
	err := s.repo.Delete(ctx, id)
	return facade.Touch(s.inv, cache.KeyProjects, facade.Done(s.log, "DeleteProject", err))
}

// PortfolioSummary agrega la cartera. Los descartados no suman capital.
func PortfolioSummary(projects []entity.Project) dto.PortfolioSummaryDTO {
	out := dto.PortfolioSummaryDTO{
		ByStatus:      make(map[string]int),
		CapitalTarget: decimal.Zero,
		CapitalRaised: decimal.Zero,
		Progress:      decimal.Zero,
	}
	for _, p := range projects {
		out.Projects++
		out.ByStatus[p.Status]++
		if p.Status == entity.ProjectDescartado {
			continue
		}
		out.CapitalTarget = out.CapitalTarget.Add(p.CapitalTarget)
		out.CapitalRaised = out.CapitalRaised.Add(p.CapitalRaised)
	}
	if out.CapitalTarget.IsPositive() {
		out.Progress = out.CapitalRaised.Div(out.CapitalTarget).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return out
}

func validateAmounts(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if a.IsNegative() {
			return fmt.Errorf("%w: importes negativos", domain.ErrInvalidInput)
		}
	}
	return nil
}
