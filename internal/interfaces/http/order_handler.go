package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
)

// OrderHandler maneja pedidos internos de centros y solicitudes de uniformes.
type OrderHandler struct {
	svc *logistics.Service
}

// NewOrderHandler construye el handler.
func NewOrderHandler(svc *logistics.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// List godoc
// @Summary      Listar pedidos internos
// @Tags         orders
// @Produce      json
// @Param        center_id  query  int  false  "Filtrar por centro"
// @Success      200  {array}  entity.Order
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("center_id"); raw != "" {
		centerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(c, "INVALID_CENTER", "center_id inválido")
		}
		return sendList(c, h.svc.GetOrdersByCenter(c.UserContext(), centerID))
	}
	return sendList(c, h.svc.GetOrders(c.UserContext()))
}

// MarkSent godoc
// @Summary      Marcar pedido como enviado
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  result.Mutation
// @Failure      404  {object}  result.Mutation
// @Router       /api/orders/{id}/sent [put]
func (h *OrderHandler) MarkSent(c *fiber.Ctx) error {
	return sendMutation(c, h.svc.MarkOrderSent(c.UserContext(), c.Params("id")))
}

// MarkDelivered godoc
// @Summary      Marcar pedido como entregado
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  result.Mutation
// @Failure      404  {object}  result.Mutation
// @Router       /api/orders/{id}/delivered [put]
func (h *OrderHandler) MarkDelivered(c *fiber.Ctx) error {
	return sendMutation(c, h.svc.MarkOrderDelivered(c.UserContext(), c.Params("id")))
}

// Delete godoc
// @Summary      Borrar pedido interno
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  result.Mutation
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	return sendMutation(c, h.svc.DeleteOrder(c.UserContext(), c.Params("id")))
}

// ListUniforms godoc
// @Summary      Listar solicitudes de uniformes
// @Tags         uniform-requests
// @Produce      json
// @Success      200  {array}  entity.UniformRequest
// @Router       /api/uniform-requests [get]
func (h *OrderHandler) ListUniforms(c *fiber.Ctx) error {
	return sendList(c, h.svc.GetUniformRequests(c.UserContext()))
}

// CreateUniform godoc
// @Summary      Crear solicitud de uniformes
// @Tags         uniform-requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUniformRequestRequest  true  "Solicitud"
// @Success      201   {object}  result.Row[entity.UniformRequest]
// @Failure      400   {object}  result.Row[entity.UniformRequest]
// @Router       /api/uniform-requests [post]
func (h *OrderHandler) CreateUniform(c *fiber.Ctx) error {
	var in dto.CreateUniformRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusCreated, h.svc.CreateUniformRequest(c.UserContext(), in))
}

// UpdateUniformStatus godoc
// @Summary      Cambiar estado de una solicitud de uniformes
// @Tags         uniform-requests
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.StatusRequest  true  "Nuevo estado"
// @Success      200   {object}  result.Mutation
// @Failure      400   {object}  result.Mutation
// @Router       /api/uniform-requests/{id}/status [put]
func (h *OrderHandler) UpdateUniformStatus(c *fiber.Ctx) error {
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendMutation(c, h.svc.UpdateUniformRequestStatus(c.UserContext(), c.Params("id"), in.Status))
}
