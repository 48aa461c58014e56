package leads_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/leads"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

type memLeads struct {
	rows    map[string]entity.Lead
	seq     int
	listErr error
}

func newMemLeads() *memLeads { return &memLeads{rows: map[string]entity.Lead{}} }

func (m *memLeads) List(ctx context.Context) ([]entity.Lead, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []entity.Lead
	for _, l := range m.rows {
		out = append(out, l)
	}
	return out, nil
}

func (m *memLeads) ListByStage(ctx context.Context, stage string) ([]entity.Lead, error) {
	var out []entity.Lead
	for _, l := range m.rows {
		if l.Stage == stage {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memLeads) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	l, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (m *memLeads) Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	m.seq++
	row := *lead
	row.ID = fmt.Sprintf("lead-%d", m.seq)
	m.rows[row.ID] = row
	return &row, nil
}

func (m *memLeads) Update(ctx context.Context, id string, patch entity.LeadPatch) (*entity.Lead, error) {
	l, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	if patch.Stage != nil {
		l.Stage = *patch.Stage
	}
	if patch.Probability != nil {
		l.Probability = *patch.Probability
	}
	if patch.Notes != nil {
		l.Notes = *patch.Notes
	}
	m.rows[id] = l
	return &l, nil
}

func (m *memLeads) Delete(ctx context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return &domain.BackendError{Message: "lead no encontrado"}
	}
	delete(m.rows, id)
	return nil
}

type memInteractions struct{ rows []entity.LeadInteraction }

func (m *memInteractions) ListByLead(ctx context.Context, leadID string) ([]entity.LeadInteraction, error) {
	var out []entity.LeadInteraction
	for _, in := range m.rows {
		if in.LeadID == leadID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (m *memInteractions) Create(ctx context.Context, in *entity.LeadInteraction) (*entity.LeadInteraction, error) {
	row := *in
	row.ID = fmt.Sprintf("int-%d", len(m.rows)+1)
	m.rows = append(m.rows, row)
	return &row, nil
}

func TestCreateLead_EtapaYProbabilidadPorDefecto(t *testing.T) {
	repo := newMemLeads()
	hub := cache.NewHub(1)
	svc := leads.NewService(repo, &memInteractions{}, hub, logger.Nop())

	r := svc.CreateLead(context.Background(), dto.CreateLeadRequest{Name: "  Gimnasio Norte  "})

	require.True(t, r.IsOk())
	assert.Equal(t, "Gimnasio Norte", r.Value().Name)
	assert.Equal(t, entity.StageProspecto, r.Value().Stage)
	assert.Equal(t, 10, r.Value().Probability)
	assert.Equal(t, uint64(1), hub.Version(cache.KeyLeads))
}

func TestCreateLead_Validaciones(t *testing.T) {
	svc := leads.NewService(newMemLeads(), &memInteractions{}, nil, logger.Nop())
	over := 120

	cases := []dto.CreateLeadRequest{
		{Name: ""},
		{Name: "X", Stage: "ganado"},
		{Name: "X", Probability: &over},
	}
	for _, in := range cases {
		r := svc.CreateLead(context.Background(), in)
		assert.ErrorIs(t, r.Err(), domain.ErrInvalidInput)
		assert.NotEmpty(t, result.ToRow(r).Error)
	}
}

func TestUpdateLeadStage(t *testing.T) {
	ctx := context.Background()
	repo := newMemLeads()
	svc := leads.NewService(repo, &memInteractions{}, nil, logger.Nop())
	created := svc.CreateLead(ctx, dto.CreateLeadRequest{Name: "Box Sur"})
	require.True(t, created.IsOk())
	id := created.Value().ID

	r := svc.UpdateLeadStage(ctx, id, entity.StageNegociacion, nil)
	require.True(t, r.IsOk())
	assert.Equal(t, 80, r.Value().Probability)

	custom := 65
	r = svc.UpdateLeadStage(ctx, id, entity.StagePropuesta, &custom)
	require.True(t, r.IsOk())
	assert.Equal(t, entity.StagePropuesta, r.Value().Stage)
	assert.Equal(t, 65, r.Value().Probability)

	missing := svc.UpdateLeadStage(ctx, "lead-x", entity.StageCerrado, nil)
	assert.ErrorIs(t, missing.Err(), domain.ErrNotFound)
}

func TestGetLeads_ErrorEsListaVacia(t *testing.T) {
	repo := newMemLeads()
	repo.listErr = errors.New("503 Service Unavailable")
	svc := leads.NewService(repo, &memInteractions{}, nil, logger.Nop())

	r := svc.GetLeads(context.Background())

	assert.False(t, r.IsOk())
	assert.Equal(t, []entity.Lead{}, result.ToList(r))
}

func TestDeleteLead_MensajeCrudo(t *testing.T) {
	svc := leads.NewService(newMemLeads(), &memInteractions{}, nil, logger.Nop())

	m := result.ToMutation(svc.DeleteLead(context.Background(), "nope"))

	assert.Equal(t, result.Mutation{Success: false, Error: "lead no encontrado"}, m)
}

func TestAddLeadInteraction_SoloAnexa(t *testing.T) {
	ctx := context.Background()
	inter := &memInteractions{}
	svc := leads.NewService(newMemLeads(), inter, nil, logger.Nop())
	when := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	first := svc.AddLeadInteraction(ctx, "lead-1", dto.CreateLeadInteractionRequest{Type: entity.InteractionLlamada, Content: "Primera llamada", OccurredAt: &when})
	second := svc.AddLeadInteraction(ctx, "lead-1", dto.CreateLeadInteractionRequest{Type: entity.InteractionEmail, Content: "Envío de propuesta"})
	bad := svc.AddLeadInteraction(ctx, "lead-1", dto.CreateLeadInteractionRequest{Type: "fax", Content: "x"})

	require.True(t, first.IsOk())
	require.True(t, second.IsOk())
	assert.Equal(t, when, first.Value().OccurredAt)
	assert.False(t, second.Value().OccurredAt.IsZero())
	assert.ErrorIs(t, bad.Err(), domain.ErrInvalidInput)

	history := svc.GetLeadInteractions(ctx, "lead-1")
	require.True(t, history.IsOk())
	assert.Len(t, history.Value(), 2)
}

func TestPipelineSummary(t *testing.T) {
	ls := []entity.Lead{
		{Stage: entity.StageProspecto, Probability: 10, EstimatedValue: decimal.NewFromInt(1000)},
		{Stage: entity.StageNegociacion, Probability: 80, EstimatedValue: decimal.NewFromInt(5000)},
		{Stage: entity.StageCerrado, Probability: 100, EstimatedValue: decimal.NewFromInt(2000)},
		{Stage: entity.StagePerdido, Probability: 0, EstimatedValue: decimal.NewFromInt(3000)},
		{Stage: entity.StagePerdido, Probability: 0, EstimatedValue: decimal.NewFromInt(3000)},
	}

	sum := leads.PipelineSummary(ls)

	assert.Equal(t, 5, sum.TotalLeads)
	assert.Equal(t, 2, sum.OpenLeads)
	require.Len(t, sum.Stages, len(entity.PipelineStages))
	assert.Equal(t, entity.StageProspecto, sum.Stages[0].Stage)
	assert.Equal(t, 2, sum.Stages[6].Count)
	assert.True(t, decimal.NewFromInt(4100).Equal(sum.WeightedValue))
	assert.True(t, decimal.RequireFromString("33.33").Equal(sum.ConversionRate))
}
