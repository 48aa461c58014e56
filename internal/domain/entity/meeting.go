package entity

import "time"

// Tipos de reunión.
const (
	MeetingEstrategica = "estrategica"
	MeetingVentas      = "ventas"
)

// Estados de una reunión.
const (
	MeetingScheduled = "scheduled"
	MeetingCompleted = "completed"
	MeetingCancelled = "cancelled"
)

// IsValidMeetingType valida el tipo de reunión.
func IsValidMeetingType(t string) bool {
	return t == MeetingEstrategica || t == MeetingVentas
}

// IsValidItemStatus valida el estado de un objetivo o tarea.
func IsValidItemStatus(s string) bool {
	return s == ItemPending || s == ItemInProgress || s == ItemCompleted
}

// IsValidPriority valida la prioridad de una tarea.
func IsValidPriority(p string) bool {
	switch p {
	case PriorityBaja, PriorityMedia, PriorityAlta, PriorityCritica:
		return true
	}
	return false
}

// Estados de objetivos y tareas de una reunión.
const (
	ItemPending    = "pending"
	ItemInProgress = "in_progress"
	ItemCompleted  = "completed"
)

// Prioridades de tarea.
const (
	PriorityBaja    = "baja"
	PriorityMedia   = "media"
	PriorityAlta    = "alta"
	PriorityCritica = "critica"
)

// Meeting reunión estratégica o comercial (tabla meetings). Objectives y Tasks se
// persisten como documentos JSON junto con la reunión.
type Meeting struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Department   string      `json:"department"`
	MeetingType  string      `json:"meeting_type"`
	MeetingDate  time.Time   `json:"meeting_date"`
	LeadID       string      `json:"lead_id,omitempty"`
	LeadName     string      `json:"lead_name,omitempty"`
	Participants []string    `json:"participants"`
	Objectives   []Objective `json:"objectives"`
	Tasks        []Task      `json:"tasks"`
	Notes        string      `json:"notes,omitempty"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Objective objetivo dentro de una reunión.
type Objective struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// Task tarea asignada en una reunión. Deadline es una fecha ISO (YYYY-MM-DD).
type Task struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Assignee string `json:"assignee"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}
