package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
)

var _ repository.MeetingRepository = (*MeetingRepo)(nil)

const meetingCols = `id, title, department, meeting_type, meeting_date, COALESCE(lead_id, ''),
	COALESCE(lead_name, ''), COALESCE(participants, '{}'::text[]), COALESCE(objectives, '[]'::jsonb),
	COALESCE(tasks, '[]'::jsonb), COALESCE(notes, ''), status, created_at, updated_at`

// MeetingRepo implementación de MeetingRepository. Objetivos y tareas se guardan como jsonb.
type MeetingRepo struct {
	q Querier
}

// NewMeetingRepository construye el repositorio.
func NewMeetingRepository(q Querier) *MeetingRepo {
	return &MeetingRepo{q: q}
}

func scanMeeting(row pgx.Row) (entity.Meeting, error) {
	var (
		m          entity.Meeting
		objectives []byte
		tasks      []byte
	)
	if err := row.Scan(&m.ID, &m.Title, &m.Department, &m.MeetingType, &m.MeetingDate, &m.LeadID,
		&m.LeadName, &m.Participants, &objectives, &tasks, &m.Notes, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return m, err
	}
	if err := json.Unmarshal(objectives, &m.Objectives); err != nil {
		return m, err
	}
	if err := json.Unmarshal(tasks, &m.Tasks); err != nil {
		return m, err
	}
	if m.Participants == nil {
		m.Participants = []string{}
	}
	return m, nil
}

// List devuelve las reuniones del departamento (todas si department está vacío), las
// más recientes primero.
func (r *MeetingRepo) List(ctx context.Context, department string) ([]entity.Meeting, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+meetingCols+` FROM meetings
		WHERE $1::text = '' OR department = $1
		ORDER BY meeting_date DESC`, department)
	if err != nil {
		return nil, backendErr("list meetings", err)
	}
	defer rows.Close()
	var list []entity.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, backendErr("scan meeting", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("list meetings", err)
	}
	return list, nil
}

func (r *MeetingRepo) GetByID(ctx context.Context, id string) (*entity.Meeting, error) {
	m, err := scanMeeting(r.q.QueryRow(ctx, `SELECT `+meetingCols+` FROM meetings WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, backendErr("get meeting", err)
	}
	return &m, nil
}

// Upsert inserta o reemplaza la reunión completa, incluidos objetivos y tareas.
func (r *MeetingRepo) Upsert(ctx context.Context, in *entity.Meeting) (*entity.Meeting, error) {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	objectives, err := marshalList(in.Objectives)
	if err != nil {
		return nil, backendErr("encode objectives", err)
	}
	tasks, err := marshalList(in.Tasks)
	if err != nil {
		return nil, backendErr("encode tasks", err)
	}
	participants := in.Participants
	if participants == nil {
		participants = []string{}
	}
	m, err := scanMeeting(r.q.QueryRow(ctx, `
		INSERT INTO meetings (id, title, department, meeting_type, meeting_date, lead_id, lead_name,
			participants, objectives, tasks, notes, status)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			department = EXCLUDED.department,
			meeting_type = EXCLUDED.meeting_type,
			meeting_date = EXCLUDED.meeting_date,
			lead_id = EXCLUDED.lead_id,
			lead_name = EXCLUDED.lead_name,
			participants = EXCLUDED.participants,
			objectives = EXCLUDED.objectives,
			tasks = EXCLUDED.tasks,
			notes = EXCLUDED.notes,
			status = EXCLUDED.status,
			updated_at = now()
		RETURNING `+meetingCols,
		id, in.Title, in.Department, in.MeetingType, in.MeetingDate, in.LeadID, in.LeadName,
		participants, objectives, tasks, in.Notes, in.Status))
	if err != nil {
		return nil, backendErr("upsert meeting", err)
	}
	return &m, nil
}

func (r *MeetingRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id); err != nil {
		return backendErr("delete meeting", err)
	}
	return nil
}

// marshalList serializa la lista como arreglo JSON (nunca null).
func marshalList[T any](list []T) ([]byte, error) {
	if list == nil {
		list = []T{}
	}
	return json.Marshal(list)
}
