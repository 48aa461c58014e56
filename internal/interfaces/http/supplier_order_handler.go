package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/infrastructure/pdf"
)

// SupplierOrderHandler maneja pedidos a proveedor.
type SupplierOrderHandler struct {
	svc *logistics.Service
	pdf *pdf.SupplierOrderPDF
}

// NewSupplierOrderHandler construye el handler.
func NewSupplierOrderHandler(svc *logistics.Service, gen *pdf.SupplierOrderPDF) *SupplierOrderHandler {
	return &SupplierOrderHandler{svc: svc, pdf: gen}
}

// List godoc
// @Summary      Listar pedidos a proveedor
// @Tags         supplier-orders
// @Produce      json
// @Success      200  {array}  entity.SupplierOrder
// @Router       /api/supplier-orders [get]
func (h *SupplierOrderHandler) List(c *fiber.Ctx) error {
	return sendList(c, h.svc.GetSupplierOrders(c.UserContext()))
}

// Stats godoc
// @Summary      Estadísticas de pedidos a proveedor
// @Tags         supplier-orders
// @Produce      json
// @Success      200  {object}  dto.OrderStatsDTO
// @Router       /api/supplier-orders/stats [get]
func (h *SupplierOrderHandler) Stats(c *fiber.Ctx) error {
	orders := result.ToList(h.svc.GetSupplierOrders(c.UserContext()))
	return c.JSON(logistics.OrderStats(orders))
}

// GetByID godoc
// @Summary      Obtener pedido con sus líneas
// @Tags         supplier-orders
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  result.Row[entity.SupplierOrder]
// @Failure      404  {object}  result.Row[entity.SupplierOrder]
// @Router       /api/supplier-orders/{id} [get]
func (h *SupplierOrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	return sendRow(c, fiber.StatusOK, h.svc.GetSupplierOrderByID(c.UserContext(), id))
}

// Items godoc
// @Summary      Líneas de un pedido
// @Tags         supplier-orders
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {array}  entity.SupplierOrderItem
// @Router       /api/supplier-orders/{id}/items [get]
func (h *SupplierOrderHandler) Items(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	return sendList(c, h.svc.GetSupplierOrderItems(c.UserContext(), id))
}

// Create godoc
// @Summary      Crear pedido a proveedor
// @Description  Cabecera y líneas en una sola transacción.
// @Tags         supplier-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierOrderRequest  true  "Pedido"
// @Success      201   {object}  result.Row[entity.SupplierOrder]
// @Failure      400   {object}  result.Row[entity.SupplierOrder]
// @Failure      409   {object}  result.Row[entity.SupplierOrder]
// @Router       /api/supplier-orders [post]
func (h *SupplierOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusCreated, h.svc.CreateSupplierOrder(c.UserContext(), in))
}

// Update godoc
// @Summary      Actualizar cabecera de pedido
// @Tags         supplier-orders
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  entity.SupplierOrderPatch  true  "Campos a modificar"
// @Success      200   {object}  result.Row[entity.SupplierOrder]
// @Failure      404   {object}  result.Row[entity.SupplierOrder]
// @Router       /api/supplier-orders/{id} [put]
func (h *SupplierOrderHandler) Update(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	var patch entity.SupplierOrderPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusOK, h.svc.UpdateSupplierOrder(c.UserContext(), id, patch))
}

// MarkStatus godoc
// @Summary      Cambiar estado del pedido
// @Tags         supplier-orders
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.StatusRequest  true  "Nuevo estado"
// @Success      200   {object}  result.Mutation
// @Failure      400   {object}  result.Mutation
// @Router       /api/supplier-orders/{id}/status [put]
func (h *SupplierOrderHandler) MarkStatus(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendMutation(c, h.svc.MarkSupplierOrderStatus(c.UserContext(), id, in.Status))
}

// MarkPayment godoc
// @Summary      Cambiar estado de pago del pedido
// @Tags         supplier-orders
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.StatusRequest  true  "Nuevo estado de pago"
// @Success      200   {object}  result.Mutation
// @Failure      400   {object}  result.Mutation
// @Router       /api/supplier-orders/{id}/payment [put]
func (h *SupplierOrderHandler) MarkPayment(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.StatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendMutation(c, h.svc.MarkSupplierOrderPayment(c.UserContext(), id, in.Status))
}

// Delete godoc
// @Summary      Borrar pedido
// @Tags         supplier-orders
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  result.Mutation
// @Router       /api/supplier-orders/{id} [delete]
func (h *SupplierOrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	return sendMutation(c, h.svc.DeleteSupplierOrder(c.UserContext(), id))
}

// PDF godoc
// @Summary      Hoja de pedido en PDF
// @Tags         supplier-orders
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del pedido"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/supplier-orders/{id}/pdf [get]
func (h *SupplierOrderHandler) PDF(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	ctx := c.UserContext()
	r := h.svc.GetSupplierOrderByID(ctx, id)
	if !r.IsOk() {
		return c.Status(statusFor(r.Err())).JSON(dto.ErrorResponse{Code: "NOT_AVAILABLE", Message: r.Reason()})
	}
	order := r.Value()
	// proveedor opcional: si falla la lectura el PDF sale con el id
	supplier := h.svc.GetSupplierByID(ctx, order.SupplierID).ValueOr(nil)

	b, err := h.pdf.Generate(order, supplier)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.pdf"`, order.OrderNumber))
	return c.Send(b)
}
