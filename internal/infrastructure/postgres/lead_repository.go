package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
)

var (
	_ repository.LeadRepository            = (*LeadRepo)(nil)
	_ repository.LeadInteractionRepository = (*LeadInteractionRepo)(nil)
)

const leadCols = `id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(company, ''), COALESCE(source, ''),
	stage, COALESCE(probability, 0), COALESCE(estimated_value, 0), center_id, COALESCE(assigned_to, ''),
	COALESCE(notes, ''), created_at, updated_at`

// LeadRepo implementación de LeadRepository sobre leads.
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el repositorio.
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

func scanLead(row pgx.Row) (entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Source,
		&l.Stage, &l.Probability, &l.EstimatedValue, &l.CenterID, &l.AssignedTo,
		&l.Notes, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *LeadRepo) list(ctx context.Context, op, query string, args ...any) ([]entity.Lead, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, backendErr(op, err)
	}
	defer rows.Close()
	var list []entity.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, backendErr("scan lead", err)
		}
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr(op, err)
	}
	return list, nil
}

// List devuelve los leads, los más recientes primero.
func (r *LeadRepo) List(ctx context.Context) ([]entity.Lead, error) {
	return r.list(ctx, "list leads", `SELECT `+leadCols+` FROM leads ORDER BY created_at DESC`)
}

// ListByStage devuelve los leads de una etapa.
func (r *LeadRepo) ListByStage(ctx context.Context, stage string) ([]entity.Lead, error) {
	return r.list(ctx, "list leads by stage",
		`SELECT `+leadCols+` FROM leads WHERE stage = $1 ORDER BY created_at DESC`, stage)
}

// GetByID obtiene un lead; (nil, nil) si no existe.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	l, err := scanLead(r.q.QueryRow(ctx, `SELECT `+leadCols+` FROM leads WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, backendErr("get lead", err)
	}
	return &l, nil
}

// Create inserta el lead con un id nuevo.
func (r *LeadRepo) Create(ctx context.Context, in *entity.Lead) (*entity.Lead, error) {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	l, err := scanLead(r.q.QueryRow(ctx, `
		INSERT INTO leads (id, name, email, phone, company, source, stage, probability, estimated_value,
			center_id, assigned_to, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+leadCols,
		id, in.Name, in.Email, in.Phone, in.Company, in.Source, in.Stage, in.Probability, in.EstimatedValue,
		in.CenterID, in.AssignedTo, in.Notes))
	if err != nil {
		return nil, backendErr("insert lead", err)
	}
	return &l, nil
}

// Update escribe los campos presentes.
func (r *LeadRepo) Update(ctx context.Context, id string, p entity.LeadPatch) (*entity.Lead, error) {
	var s setClause
	setIf(&s, "name", p.Name)
	setIf(&s, "email", p.Email)
	setIf(&s, "phone", p.Phone)
	setIf(&s, "company", p.Company)
	setIf(&s, "source", p.Source)
	setIf(&s, "stage", p.Stage)
	setIf(&s, "probability", p.Probability)
	setIf(&s, "estimated_value", p.EstimatedValue)
	setIf(&s, "center_id", p.CenterID)
	setIf(&s, "assigned_to", p.AssignedTo)
	setIf(&s, "notes", p.Notes)
	if s.empty() {
		return r.GetByID(ctx, id)
	}
	query, args := s.update("leads", id, true, leadCols)
	l, err := scanLead(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound("lead")
		}
		return nil, backendErr("update lead", err)
	}
	return &l, nil
}

// Delete borra el lead.
func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id); err != nil {
		return backendErr("delete lead", err)
	}
	return nil
}

// LeadInteractionRepo implementación de LeadInteractionRepository (solo lectura y alta).
type LeadInteractionRepo struct {
	q Querier
}

// NewLeadInteractionRepository construye el repositorio.
func NewLeadInteractionRepository(q Querier) *LeadInteractionRepo {
	return &LeadInteractionRepo{q: q}
}

// ListByLead devuelve el historial del lead en orden cronológico.
func (r *LeadInteractionRepo) ListByLead(ctx context.Context, leadID string) ([]entity.LeadInteraction, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, lead_id, type, content, COALESCE(created_by, ''), occurred_at
		FROM lead_interactions WHERE lead_id = $1 ORDER BY occurred_at, id`, leadID)
	if err != nil {
		return nil, backendErr("list lead_interactions", err)
	}
	defer rows.Close()
	var list []entity.LeadInteraction
	for rows.Next() {
		var in entity.LeadInteraction
		if err := rows.Scan(&in.ID, &in.LeadID, &in.Type, &in.Content, &in.CreatedBy, &in.OccurredAt); err != nil {
			return nil, backendErr("scan lead_interaction", err)
		}
		list = append(list, in)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("list lead_interactions", err)
	}
	return list, nil
}

// Create anexa una interacción.
func (r *LeadInteractionRepo) Create(ctx context.Context, in *entity.LeadInteraction) (*entity.LeadInteraction, error) {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	var out entity.LeadInteraction
	err := r.q.QueryRow(ctx, `
		INSERT INTO lead_interactions (id, lead_id, type, content, created_by, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, lead_id, type, content, COALESCE(created_by, ''), occurred_at`,
		id, in.LeadID, in.Type, in.Content, in.CreatedBy, in.OccurredAt,
	).Scan(&out.ID, &out.LeadID, &out.Type, &out.Content, &out.CreatedBy, &out.OccurredAt)
	if err != nil {
		return nil, backendErr("insert lead_interaction", err)
	}
	return &out, nil
}
