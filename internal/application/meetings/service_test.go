package meetings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/meetings"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

type memMeetings struct {
	rows    map[string]entity.Meeting
	listErr error
}

func newMemMeetings() *memMeetings { return &memMeetings{rows: map[string]entity.Meeting{}} }

func (m *memMeetings) List(ctx context.Context, department string) ([]entity.Meeting, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []entity.Meeting
	for _, r := range m.rows {
		if department == "" || r.Department == department {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memMeetings) GetByID(ctx context.Context, id string) (*entity.Meeting, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memMeetings) Upsert(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error) {
	row := *meeting
	m.rows[row.ID] = row
	return &row, nil
}

func (m *memMeetings) Delete(ctx context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

type brokenMailbox struct{}

func (brokenMailbox) Put(context.Context, meetings.LeadSelection) error {
	return errors.New("redis caído")
}
func (brokenMailbox) Take(context.Context) (*meetings.LeadSelection, error) {
	return nil, errors.New("redis caído")
}
func (brokenMailbox) Peek(context.Context) (*meetings.LeadSelection, error) {
	return nil, errors.New("redis caído")
}

func TestSaveMeeting_RoundTripDelDocumento(t *testing.T) {
	ctx := context.Background()
	repo := newMemMeetings()
	hub := cache.NewHub(1)
	svc := meetings.NewService(repo, nil, hub, logger.Nop())

	d := meetings.NewDraft("Revisión ventas", "comercial", entity.MeetingVentas, time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC))
	d.AddObjective("Cerrar 3 franquicias")
	d.AddTask(meetings.TaskInput{Title: "Llamar a inversores", Assignee: "Marta", Deadline: "2026-06-08", Priority: entity.PriorityAlta})

	saved := svc.SaveMeeting(ctx, d.Meeting())
	require.True(t, saved.IsOk(), saved.Reason())
	assert.NotEmpty(t, saved.Value().ID)
	assert.Equal(t, uint64(1), hub.Version(cache.KeyMeetings))

	got := svc.GetMeetingByID(ctx, saved.Value().ID)
	require.True(t, got.IsOk())
	if diff := cmp.Diff(*saved.Value(), *got.Value()); diff != "" {
		t.Errorf("documento distinto tras guardar (-guardado +leído):\n%s", diff)
	}
}

func TestSaveMeeting_Validaciones(t *testing.T) {
	svc := meetings.NewService(newMemMeetings(), nil, nil, logger.Nop())

	for _, m := range []entity.Meeting{
		{Department: "comercial", MeetingType: entity.MeetingVentas},
		{Title: "X", MeetingType: entity.MeetingVentas},
		{Title: "X", Department: "comercial", MeetingType: "social"},
		{Title: "X", Department: "comercial", MeetingType: entity.MeetingVentas, Tasks: []entity.Task{{Title: "sin responsable"}}},
	} {
		r := svc.SaveMeeting(context.Background(), m)
		assert.ErrorIs(t, r.Err(), domain.ErrInvalidInput)
	}
}

func TestGetMeetings_PorDepartamentoYError(t *testing.T) {
	ctx := context.Background()
	repo := newMemMeetings()
	repo.rows["a"] = entity.Meeting{ID: "a", Department: "comercial"}
	repo.rows["b"] = entity.Meeting{ID: "b", Department: "rrhh"}
	svc := meetings.NewService(repo, nil, nil, logger.Nop())

	assert.Len(t, svc.GetMeetings(ctx, "rrhh").Value(), 1)
	assert.Len(t, svc.GetMeetings(ctx, "").Value(), 2)

	repo.listErr = errors.New("boom")
	assert.Equal(t, []entity.Meeting{}, result.ToList(svc.GetMeetings(ctx, "")))
}

func TestDraftFromHandoff_ConsumeLaSeleccion(t *testing.T) {
	ctx := context.Background()
	mb := meetings.NewMemoryMailbox()
	svc := meetings.NewService(newMemMeetings(), mb, nil, logger.Nop())

	require.True(t, svc.SelectLead(ctx, meetings.LeadSelection{LeadID: "lead-1", LeadName: "Primero"}).IsOk())
	require.True(t, svc.SelectLead(ctx, meetings.LeadSelection{LeadID: "lead-2", LeadName: "CrossFit Delta"}).IsOk())

	r := svc.DraftFromHandoff(ctx, "comercial")
	require.True(t, r.IsOk())
	m := r.Value().Meeting()
	assert.Equal(t, "lead-2", m.LeadID)
	assert.Equal(t, "CrossFit Delta", m.LeadName)
	assert.Equal(t, "Reunión con CrossFit Delta", m.Title)
	assert.Equal(t, entity.MeetingVentas, m.MeetingType)

	empty := svc.DraftFromHandoff(ctx, "comercial")
	require.True(t, empty.IsOk())
	assert.Empty(t, empty.Value().Meeting().LeadID)
}

func TestDraftFromHandoff_BuzonCaido(t *testing.T) {
	svc := meetings.NewService(newMemMeetings(), brokenMailbox{}, nil, logger.Nop())

	r := svc.DraftFromHandoff(context.Background(), "comercial")

	assert.False(t, r.IsOk())
	assert.Equal(t, "redis caído", r.Reason())
	assert.False(t, svc.SelectLead(context.Background(), meetings.LeadSelection{LeadID: "x"}).IsOk())
}

func TestMemoryMailbox_PeekNoConsume(t *testing.T) {
	ctx := context.Background()
	mb := meetings.NewMemoryMailbox()

	sel, err := mb.Peek(ctx)
	require.NoError(t, err)
	assert.Nil(t, sel)

	require.NoError(t, mb.Put(ctx, meetings.LeadSelection{LeadID: "1", LeadName: "A"}))
	sel, _ = mb.Peek(ctx)
	require.NotNil(t, sel)
	sel, _ = mb.Take(ctx)
	require.NotNil(t, sel)
	assert.Equal(t, "A", sel.LeadName)
	sel, _ = mb.Take(ctx)
	assert.Nil(t, sel)
}
