package meetings_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/meetings"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

func newDraft() *meetings.Draft {
	return meetings.NewDraft("Comité mensual", "direccion", entity.MeetingEstrategica, time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC))
}

func TestAddObjective_TituloEnBlancoNoAnade(t *testing.T) {
	d := newDraft()

	_, ok := d.AddObjective("   ")
	assert.False(t, ok)

	o, ok := d.AddObjective("  Abrir centro en Sevilla ")
	require.True(t, ok)
	assert.Equal(t, "Abrir centro en Sevilla", o.Title)
	assert.Equal(t, entity.ItemPending, o.Status)
	assert.Len(t, d.Meeting().Objectives, 1)
}

func TestAddObjective_IdsUnicosAunqueSeaSeguido(t *testing.T) {
	d := newDraft()
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		o, ok := d.AddObjective("Mismo título")
		require.True(t, ok)
		require.False(t, seen[o.ID], "id repetido %s", o.ID)
		seen[o.ID] = true
	}
	assert.Len(t, d.Meeting().Objectives, 500)
}

func TestSetObjectiveStatusYRemove(t *testing.T) {
	d := newDraft()
	a, _ := d.AddObjective("A")
	b, _ := d.AddObjective("B")

	assert.True(t, d.SetObjectiveStatus(a.ID, entity.ItemCompleted))
	assert.False(t, d.SetObjectiveStatus(a.ID, "hecho"))
	assert.False(t, d.SetObjectiveStatus("no-existe", entity.ItemCompleted))

	d.RemoveObjective(a.ID)
	got := d.Meeting().Objectives
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
}

func TestAddTask_RequiereTituloResponsableYFecha(t *testing.T) {
	d := newDraft()

	for _, in := range []meetings.TaskInput{
		{Assignee: "Carlos", Deadline: "2026-05-10"},
		{Title: "Presupuesto", Deadline: "2026-05-10"},
		{Title: "Presupuesto", Assignee: "Carlos"},
		{Title: " ", Assignee: "Carlos", Deadline: "2026-05-10"},
	} {
		_, ok := d.AddTask(in)
		assert.False(t, ok)
	}

	task, ok := d.AddTask(meetings.TaskInput{Title: "Presupuesto", Assignee: "Carlos", Deadline: "2026-05-10"})
	require.True(t, ok)
	assert.Equal(t, entity.PriorityMedia, task.Priority)
	assert.Equal(t, entity.ItemPending, task.Status)

	urgent, ok := d.AddTask(meetings.TaskInput{Title: "Licencia", Assignee: "Lucía", Deadline: "2026-05-06", Priority: entity.PriorityCritica})
	require.True(t, ok)
	assert.Equal(t, entity.PriorityCritica, urgent.Priority)

	assert.True(t, d.SetTaskStatus(task.ID, entity.ItemInProgress))
	d.RemoveTask(urgent.ID)
	tasks := d.Meeting().Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, entity.ItemInProgress, tasks[0].Status)
}

func TestMeeting_DevuelveCopia(t *testing.T) {
	d := newDraft()
	d.AddObjective("A")
	snapshot := d.Meeting()

	d.AddObjective("B")
	snapshot.Objectives[0].Title = "cambiado"

	assert.Len(t, snapshot.Objectives, 1)
	assert.Equal(t, "A", d.Meeting().Objectives[0].Title)
}

func TestEditDraft_NoAliasaElOriginal(t *testing.T) {
	m := entity.Meeting{Title: "T", Objectives: []entity.Objective{{ID: "1", Title: "A", Status: entity.ItemPending}}}
	d := meetings.EditDraft(m)

	d.RemoveObjective("1")

	assert.Len(t, m.Objectives, 1)
	assert.Empty(t, d.Meeting().Objectives)
}

func TestAddParticipant(t *testing.T) {
	d := newDraft()
	assert.True(t, d.AddParticipant("Ana"))
	assert.False(t, d.AddParticipant("Ana"))
	assert.False(t, d.AddParticipant(""))
	assert.Equal(t, []string{"Ana"}, d.Meeting().Participants)
}
