package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/meetings"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// MeetingHandler maneja reuniones y el buzón de traspaso de leads.
type MeetingHandler struct {
	svc *meetings.Service
}

// NewMeetingHandler construye el handler.
func NewMeetingHandler(svc *meetings.Service) *MeetingHandler {
	return &MeetingHandler{svc: svc}
}

// draftRequest contenido opcional con el que se rellena un borrador.
type draftRequest struct {
	Participants []string             `json:"participants"`
	Objectives   []string             `json:"objectives"`
	Tasks        []meetings.TaskInput `json:"tasks"`
	Notes        string               `json:"notes"`
}

// List godoc
// @Summary      Listar reuniones
// @Tags         meetings
// @Produce      json
// @Param        department  query  string  false  "Departamento"
// @Success      200  {array}  entity.Meeting
// @Router       /api/meetings [get]
func (h *MeetingHandler) List(c *fiber.Ctx) error {
	return sendList(c, h.svc.GetMeetings(c.UserContext(), c.Query("department")))
}

// GetByID godoc
// @Summary      Obtener reunión
// @Tags         meetings
// @Produce      json
// @Param        id   path  string  true  "ID de la reunión"
// @Success      200  {object}  result.Row[entity.Meeting]
// @Failure      404  {object}  result.Row[entity.Meeting]
// @Router       /api/meetings/{id} [get]
func (h *MeetingHandler) GetByID(c *fiber.Ctx) error {
	return sendRow(c, fiber.StatusOK, h.svc.GetMeetingByID(c.UserContext(), c.Params("id")))
}

// Create godoc
// @Summary      Guardar reunión nueva
// @Description  Objetivos y tareas se guardan junto con la reunión.
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Meeting  true  "Reunión"
// @Success      201   {object}  result.Row[entity.Meeting]
// @Failure      400   {object}  result.Row[entity.Meeting]
// @Router       /api/meetings [post]
func (h *MeetingHandler) Create(c *fiber.Ctx) error {
	var m entity.Meeting
	if err := c.BodyParser(&m); err != nil {
		return invalidBody(c)
	}
	m.ID = ""
	return sendRow(c, fiber.StatusCreated, h.svc.SaveMeeting(c.UserContext(), m))
}

// Update godoc
// @Summary      Reemplazar reunión
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la reunión"
// @Param        body  body  entity.Meeting  true  "Reunión completa"
// @Success      200   {object}  result.Row[entity.Meeting]
// @Failure      400   {object}  result.Row[entity.Meeting]
// @Router       /api/meetings/{id} [put]
func (h *MeetingHandler) Update(c *fiber.Ctx) error {
	var m entity.Meeting
	if err := c.BodyParser(&m); err != nil {
		return invalidBody(c)
	}
	m.ID = c.Params("id")
	return sendRow(c, fiber.StatusOK, h.svc.SaveMeeting(c.UserContext(), m))
}

// Delete godoc
// @Summary      Borrar reunión
// @Tags         meetings
// @Produce      json
// @Param        id   path  string  true  "ID de la reunión"
// @Success      200  {object}  result.Mutation
// @Router       /api/meetings/{id} [delete]
func (h *MeetingHandler) Delete(c *fiber.Ctx) error {
	return sendMutation(c, h.svc.DeleteMeeting(c.UserContext(), c.Params("id")))
}

// Draft godoc
// @Summary      Borrador de reunión comercial
// @Description  Consume el lead del buzón de traspaso. No persiste nada.
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        department  query  string        false  "Departamento"  default(ventas)
// @Param        body        body   draftRequest  false  "Contenido inicial"
// @Success      200  {object}  result.Row[entity.Meeting]
// @Failure      500  {object}  result.Row[entity.Meeting]
// @Router       /api/meetings/draft [post]
func (h *MeetingHandler) Draft(c *fiber.Ctx) error {
	var in draftRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	r := h.svc.DraftFromHandoff(c.UserContext(), c.Query("department", "ventas"))
	if !r.IsOk() {
		return sendRow(c, fiber.StatusOK, result.Err[*entity.Meeting](r.Err()))
	}
	d := r.Value()
	for _, p := range in.Participants {
		d.AddParticipant(p)
	}
	for _, o := range in.Objectives {
		d.AddObjective(o)
	}
	for _, t := range in.Tasks {
		d.AddTask(t)
	}
	if in.Notes != "" {
		d.SetNotes(in.Notes)
	}
	m := d.Meeting()
	return sendRow(c, fiber.StatusOK, result.Ok(&m))
}

// SelectLead godoc
// @Summary      Dejar un lead en el buzón de traspaso
// @Tags         handoff
// @Accept       json
// @Produce      json
// @Param        body  body  meetings.LeadSelection  true  "Lead elegido"
// @Success      200   {object}  result.Mutation
// @Failure      400   {object}  result.Mutation
// @Router       /api/handoff/lead [put]
func (h *MeetingHandler) SelectLead(c *fiber.Ctx) error {
	var sel meetings.LeadSelection
	if err := c.BodyParser(&sel); err != nil {
		return invalidBody(c)
	}
	return sendMutation(c, h.svc.SelectLead(c.UserContext(), sel))
}

// PeekLead godoc
// @Summary      Ver el lead del buzón sin consumirlo
// @Tags         handoff
// @Produce      json
// @Success      200  {object}  meetings.LeadSelection
// @Success      204
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/handoff/lead [get]
func (h *MeetingHandler) PeekLead(c *fiber.Ctx) error {
	sel, err := h.svc.Mailbox().Peek(c.UserContext())
	return sendSelection(c, sel, err)
}

// TakeLead godoc
// @Summary      Consumir el lead del buzón
// @Tags         handoff
// @Produce      json
// @Success      200  {object}  meetings.LeadSelection
// @Success      204
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/handoff/lead [delete]
func (h *MeetingHandler) TakeLead(c *fiber.Ctx) error {
	sel, err := h.svc.Mailbox().Take(c.UserContext())
	return sendSelection(c, sel, err)
}

func sendSelection(c *fiber.Ctx, sel *meetings.LeadSelection, err error) error {
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "HANDOFF_FAILED", Message: err.Error()})
	}
	if sel == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(sel)
}
