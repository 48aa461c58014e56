package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectCols = `id, name, COALESCE(description, ''), status, COALESCE(capital_target, 0),
	COALESCE(capital_raised, 0), COALESCE(ticket_size, 0), COALESCE(roi_projection, 0),
	COALESCE(location, ''), created_at, updated_at`

// ProjectRepo implementación de ProjectRepository sobre projects.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el repositorio.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

func scanProject(row pgx.Row) (entity.Project, error) {
	var p entity.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.CapitalTarget,
		&p.CapitalRaised, &p.TicketSize, &p.ROIProjection, &p.Location, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *ProjectRepo) List(ctx context.Context) ([]entity.Project, error) {
	rows, err := r.q.Query(ctx, `SELECT `+projectCols+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, backendErr("list projects", err)
	}
	defer rows.Close()
	var list []entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, backendErr("scan project", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("list projects", err)
	}
	return list, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	p, err := scanProject(r.q.QueryRow(ctx, `SELECT `+projectCols+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, backendErr("get project", err)
	}
	return &p, nil
}

func (r *ProjectRepo) Create(ctx context.Context, in *entity.Project) (*entity.Project, error) {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	p, err := scanProject(r.q.QueryRow(ctx, `
		INSERT INTO projects (id, name, description, status, capital_target, capital_raised,
			ticket_size, roi_projection, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+projectCols,
		id, in.Name, in.Description, in.Status, in.CapitalTarget, in.CapitalRaised,
		in.TicketSize, in.ROIProjection, in.Location))
	if err != nil {
		return nil, backendErr("insert project", err)
	}
	return &p, nil
}

func (r *ProjectRepo) Update(ctx context.Context, id string, patch entity.ProjectPatch) (*entity.Project, error) {
	var s setClause
	setIf(&s, "name", patch.Name)
	setIf(&s, "description", patch.Description)
	setIf(&s, "status", patch.Status)
	setIf(&s, "capital_target", patch.CapitalTarget)
	setIf(&s, "capital_raised", patch.CapitalRaised)
	setIf(&s, "ticket_size", patch.TicketSize)
	setIf(&s, "roi_projection", patch.ROIProjection)
	setIf(&s, "location", patch.Location)
	if s.empty() {
		return r.GetByID(ctx, id)
	}
	query, args := s.update("projects", id, true, projectCols)
	p, err := scanProject(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound("project")
		}
		return nil, backendErr("update project", err)
	}
	return &p, nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return backendErr("delete project", err)
	}
	return nil
}
