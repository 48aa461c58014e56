package meetings

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// TaskInput campos de una tarea nueva. Title, Assignee y Deadline son obligatorios.
type TaskInput struct {
	Title    string `json:"title"`
	Assignee string `json:"assignee"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority,omitempty"`
}

// Draft edita en memoria una reunión y sus objetivos y tareas antes de persistirla de
// una sola vez. Los ids locales son UUID: dos altas seguidas nunca colisionan.
// No es seguro para uso concurrente.
type Draft struct {
	m     entity.Meeting
	newID func() string
}

// NewDraft crea un borrador vacío programado para date.
func NewDraft(title, department, meetingType string, date time.Time) *Draft {
	return &Draft{
		m: entity.Meeting{
			Title:        strings.TrimSpace(title),
			Department:   department,
			MeetingType:  meetingType,
			MeetingDate:  date,
			Participants: []string{},
			Objectives:   []entity.Objective{},
			Tasks:        []entity.Task{},
			Status:       entity.MeetingScheduled,
		},
		newID: uuid.NewString,
	}
}

// EditDraft abre un borrador sobre una reunión existente. Copia los slices.
func EditDraft(m entity.Meeting) *Draft {
	d := &Draft{m: m, newID: uuid.NewString}
	d.m.Participants = append([]string{}, m.Participants...)
	d.m.Objectives = append([]entity.Objective{}, m.Objectives...)
	d.m.Tasks = append([]entity.Task{}, m.Tasks...)
	return d
}

// SetLead asocia el lead de la reunión.
func (d *Draft) SetLead(id, name string) {
	d.m.LeadID = id
	d.m.LeadName = name
}

// SetNotes reemplaza las notas libres.
func (d *Draft) SetNotes(notes string) { d.m.Notes = notes }

// AddParticipant añade un participante no vacío y no repetido.
func (d *Draft) AddParticipant(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, p := range d.m.Participants {
		if p == name {
			return false
		}
	}
	d.m.Participants = append(d.m.Participants, name)
	return true
}

// AddObjective añade un objetivo pendiente si el título no queda vacío tras recortar.
func (d *Draft) AddObjective(title string) (entity.Objective, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entity.Objective{}, false
	}
	o := entity.Objective{ID: d.newID(), Title: title, Status: entity.ItemPending}
	d.m.Objectives = append(d.m.Objectives, o)
	return o, true
}

// SetObjectiveStatus cambia el estado de un objetivo. false si no existe o el estado no es válido.
func (d *Draft) SetObjectiveStatus(id, status string) bool {
	if !entity.IsValidItemStatus(status) {
		return false
	}
	for i := range d.m.Objectives {
		if d.m.Objectives[i].ID == id {
			d.m.Objectives[i].Status = status
			return true
		}
	}
	return false
}

// RemoveObjective quita los objetivos con ese id.
func (d *Draft) RemoveObjective(id string) {
	out := d.m.Objectives[:0]
	for _, o := range d.m.Objectives {
		if o.ID != id {
			out = append(out, o)
		}
	}
	d.m.Objectives = out
}

// AddTask añade una tarea pendiente solo si título, responsable y fecha límite vienen
// informados. Sin prioridad se asume media.
func (d *Draft) AddTask(in TaskInput) (entity.Task, bool) {
	title := strings.TrimSpace(in.Title)
	assignee := strings.TrimSpace(in.Assignee)
	deadline := strings.TrimSpace(in.Deadline)
	if title == "" || assignee == "" || deadline == "" {
		return entity.Task{}, false
	}
	priority := in.Priority
	if !entity.IsValidPriority(priority) {
		priority = entity.PriorityMedia
	}
	t := entity.Task{
		ID:       d.newID(),
		Title:    title,
		Assignee: assignee,
		Deadline: deadline,
		Priority: priority,
		Status:   entity.ItemPending,
	}
	d.m.Tasks = append(d.m.Tasks, t)
	return t, true
}

// SetTaskStatus cambia el estado de una tarea.
func (d *Draft) SetTaskStatus(id, status string) bool {
	if !entity.IsValidItemStatus(status) {
		return false
	}
	for i := range d.m.Tasks {
		if d.m.Tasks[i].ID == id {
			d.m.Tasks[i].Status = status
			return true
		}
	}
	return false
}

// RemoveTask quita las tareas con ese id.
func (d *Draft) RemoveTask(id string) {
	out := d.m.Tasks[:0]
	for _, t := range d.m.Tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	d.m.Tasks = out
}

// Meeting devuelve una copia del documento listo para persistir.
func (d *Draft) Meeting() entity.Meeting {
	m := d.m
	m.Participants = append([]string{}, d.m.Participants...)
	m.Objectives = append([]entity.Objective{}, d.m.Objectives...)
	m.Tasks = append([]entity.Task{}, d.m.Tasks...)
	return m
}
