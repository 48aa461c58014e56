// Package meetings gestiona las reuniones estratégicas y comerciales, el editor de
// objetivos y tareas, y el traspaso del lead seleccionado hacia el editor.
package meetings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/facade"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

// Service funciones de servicio de reuniones.
type Service struct {
	repo    repository.MeetingRepository
	mailbox Mailbox
	inv     cache.Invalidator
	log     *logger.Logger
	now     func() time.Time
}

// NewService construye el servicio. Sin mailbox se usa uno en memoria.
func NewService(repo repository.MeetingRepository, mailbox Mailbox, inv cache.Invalidator, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if mailbox == nil {
		mailbox = NewMemoryMailbox()
	}
	return &Service{repo: repo, mailbox: mailbox, inv: inv, log: log.Named("meetings"), now: time.Now}
}

// Mailbox expone el buzón de traspaso.
func (s *Service) Mailbox() Mailbox { return s.mailbox }

// GetMeetings devuelve las reuniones; department vacío = todos.
func (s *Service) GetMeetings(ctx context.Context, department string) result.Result[[]entity.Meeting] {
	rows, err := s.repo.List(ctx, department)
	return facade.Rows(s.log, "GetMeetings", rows, err)
}

// GetMeetingByID obtiene una reunión.
func (s *Service) GetMeetingByID(ctx context.Context, id string) result.Result[*entity.Meeting] {
	row, err := s.repo.GetByID(ctx, id)
	return facade.One(s.log, "GetMeetingByID", row, err)
}

// SaveMeeting inserta o reemplaza el documento completo. Sin id se asigna uno nuevo.
func (s *Service) SaveMeeting(ctx context.Context, m entity.Meeting) result.Result[*entity.Meeting] {
	if err := validateMeeting(m); err != nil {
		return facade.Invalid[*entity.Meeting](s.log, "SaveMeeting", err)
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = entity.MeetingScheduled
	}
	if m.Participants == nil {
		m.Participants = []string{}
	}
	if m.Objectives == nil {
		m.Objectives = []entity.Objective{}
	}
	if m.Tasks == nil {
		m.Tasks = []entity.Task{}
	}
	row, err := s.repo.Upsert(ctx, &m)
	return facade.Touch(s.inv, cache.KeyMeetings, facade.One(s.log, "SaveMeeting", row, err))
}

// DeleteMeeting borra una reunión.
func (s *Service) DeleteMeeting(ctx context.Context, id string) result.Result[struct{}] {
	err := s.repo.Delete(ctx, id)
	return facade.Touch(s.inv, cache.KeyMeetings, facade.Done(s.log, "DeleteMeeting", err))
}

// SelectLead deja el lead elegido en el buzón (la última selección gana).
func (s *Service) SelectLead(ctx context.Context, sel LeadSelection) result.Result[struct{}] {
	if strings.TrimSpace(sel.LeadID) == "" {
		return facade.Invalid[struct{}](s.log, "SelectLead", fmt.Errorf("%w: lead_id es obligatorio", domain.ErrInvalidInput))
	}
	return facade.Done(s.log, "SelectLead", s.mailbox.Put(ctx, sel))
}

// DraftFromHandoff abre un borrador de reunión de ventas rellenando el lead que haya en
// el buzón y lo consume. Con el buzón vacío el borrador sale sin lead.
func (s *Service) DraftFromHandoff(ctx context.Context, department string) result.Result[*Draft] {
	sel, err := s.mailbox.Take(ctx)
	if err != nil {
		s.log.Failure("DraftFromHandoff", err).Msg("no se pudo leer el buzón")
		return result.Err[*Draft](err)
	}
	title := "Reunión comercial"
	if sel != nil && sel.LeadName != "" {
		title = "Reunión con " + sel.LeadName
	}
	d := NewDraft(title, department, entity.MeetingVentas, s.now())
	if sel != nil {
		d.SetLead(sel.LeadID, sel.LeadName)
	}
	return result.Ok(d)
}

func validateMeeting(m entity.Meeting) error {
	switch {
	case strings.TrimSpace(m.Title) == "":
		return fmt.Errorf("%w: title es obligatorio", domain.ErrInvalidInput)
	case strings.TrimSpace(m.Department) == "":
		return fmt.Errorf("%w: department es obligatorio", domain.ErrInvalidInput)
	case !entity.IsValidMeetingType(m.MeetingType):
		return fmt.Errorf("%w: meeting_type %q", domain.ErrInvalidInput, m.MeetingType)
	}
	for _, t := range m.Tasks {
		if t.Title == "" || t.Assignee == "" || t.Deadline == "" {
			return fmt.Errorf("%w: tarea incompleta", domain.ErrInvalidInput)
		}
	}
	return nil
}
