package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/leads"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// LeadHandler maneja leads y su historial de interacciones.
type LeadHandler struct {
	svc *leads.Service
}

// NewLeadHandler construye el handler.
func NewLeadHandler(svc *leads.Service) *LeadHandler {
	return &LeadHandler{svc: svc}
}

// List godoc
// @Summary      Listar leads
// @Tags         leads
// @Produce      json
// @Param        stage  query  string  false  "Filtrar por etapa"
// @Success      200  {array}  entity.Lead
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	if stage := c.Query("stage"); stage != "" {
		return sendList(c, h.svc.GetLeadsByStage(c.UserContext(), stage))
	}
	return sendList(c, h.svc.GetLeads(c.UserContext()))
}

// Pipeline godoc
// @Summary      Resumen del pipeline comercial
// @Tags         leads
// @Produce      json
// @Success      200  {object}  dto.PipelineSummaryDTO
// @Router       /api/leads/pipeline [get]
func (h *LeadHandler) Pipeline(c *fiber.Ctx) error {
	return c.JSON(leads.PipelineSummary(result.ToList(h.svc.GetLeads(c.UserContext()))))
}

// GetByID godoc
// @Summary      Obtener lead
// @Tags         leads
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      200  {object}  result.Row[entity.Lead]
// @Failure      404  {object}  result.Row[entity.Lead]
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	return sendRow(c, fiber.StatusOK, h.svc.GetLeadByID(c.UserContext(), c.Params("id")))
}

// Create godoc
// @Summary      Crear lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "Lead"
// @Success      201   {object}  result.Row[entity.Lead]
// @Failure      400   {object}  result.Row[entity.Lead]
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusCreated, h.svc.CreateLead(c.UserContext(), in))
}

// Update godoc
// @Summary      Actualizar lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  entity.LeadPatch  true  "Campos a modificar"
// @Success      200   {object}  result.Row[entity.Lead]
// @Failure      404   {object}  result.Row[entity.Lead]
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var patch entity.LeadPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusOK, h.svc.UpdateLead(c.UserContext(), c.Params("id"), patch))
}

// UpdateStage godoc
// @Summary      Mover lead de etapa
// @Description  Sin probability se aplica la probabilidad por defecto de la etapa.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.UpdateLeadStageRequest  true  "Etapa"
// @Success      200   {object}  result.Row[entity.Lead]
// @Failure      400   {object}  result.Row[entity.Lead]
// @Router       /api/leads/{id}/stage [put]
func (h *LeadHandler) UpdateStage(c *fiber.Ctx) error {
	var in dto.UpdateLeadStageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusOK, h.svc.UpdateLeadStage(c.UserContext(), c.Params("id"), in.Stage, in.Probability))
}

// Delete godoc
// @Summary      Borrar lead
// @Tags         leads
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      200  {object}  result.Mutation
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	return sendMutation(c, h.svc.DeleteLead(c.UserContext(), c.Params("id")))
}

// Interactions godoc
// @Summary      Historial de interacciones
// @Tags         leads
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      200  {array}  entity.LeadInteraction
// @Router       /api/leads/{id}/interactions [get]
func (h *LeadHandler) Interactions(c *fiber.Ctx) error {
	return sendList(c, h.svc.GetLeadInteractions(c.UserContext(), c.Params("id")))
}

// AddInteraction godoc
// @Summary      Registrar interacción
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.CreateLeadInteractionRequest  true  "Interacción"
// @Success      201   {object}  result.Row[entity.LeadInteraction]
// @Failure      400   {object}  result.Row[entity.LeadInteraction]
// @Router       /api/leads/{id}/interactions [post]
func (h *LeadHandler) AddInteraction(c *fiber.Ctx) error {
	var in dto.CreateLeadInteractionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusCreated, h.svc.AddLeadInteraction(c.UserContext(), c.Params("id"), in))
}
