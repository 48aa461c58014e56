package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/projects"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// ProjectHandler maneja proyectos de inversión.
type ProjectHandler struct {
	svc *projects.Service
}

// NewProjectHandler construye el handler.
func NewProjectHandler(svc *projects.Service) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List godoc
// @Summary      Listar proyectos
// @Tags         projects
// @Produce      json
// @Success      200  {array}  entity.Project
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	return sendList(c, h.svc.GetProjects(c.UserContext()))
}

// Portfolio godoc
// @Summary      Resumen de la cartera
// @Tags         projects
// @Produce      json
// @Success      200  {object}  dto.PortfolioSummaryDTO
// @Router       /api/projects/portfolio [get]
func (h *ProjectHandler) Portfolio(c *fiber.Ctx) error {
	return c.JSON(projects.PortfolioSummary(result.ToList(h.svc.GetProjects(c.UserContext()))))
}

// GetByID godoc
// @Summary      Obtener proyecto
// @Tags         projects
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  result.Row[entity.Project]
// @Failure      404  {object}  result.Row[entity.Project]
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	return sendRow(c, fiber.StatusOK, h.svc.GetProjectByID(c.UserContext(), c.Params("id")))
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProjectRequest  true  "Proyecto"
// @Success      201   {object}  result.Row[entity.Project]
// @Failure      400   {object}  result.Row[entity.Project]
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusCreated, h.svc.CreateProject(c.UserContext(), in))
}

// Update godoc
// @Summary      Actualizar proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proyecto"
// @Param        body  body  entity.ProjectPatch  true  "Campos a modificar"
// @Success      200   {object}  result.Row[entity.Project]
// @Failure      404   {object}  result.Row[entity.Project]
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var patch entity.ProjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusOK, h.svc.UpdateProject(c.UserContext(), c.Params("id"), patch))
}

// MarkStatus godoc
// @Summary      Cambiar estado del proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proyecto"
// @Param        body  body  dto.StatusRequest  true  "Nuevo estado"
// @Success      200   {object}  result.Mutation
// @Failure      400   {object}  result.Mutation
// @Router       /api/projects/{id}/status [put]
func (h *ProjectHandler) MarkStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendMutation(c, h.svc.MarkProjectStatus(c.UserContext(), c.Params("id"), in.Status))
}

// Delete godoc
// @Summary      Borrar proyecto
// @Tags         projects
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  result.Mutation
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	return sendMutation(c, h.svc.DeleteProject(c.UserContext(), c.Params("id")))
}
