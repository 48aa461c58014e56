package http

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/infrastructure/report"
)

// InventoryHandler maneja las peticiones HTTP para inventory_items.
type InventoryHandler struct {
	svc *logistics.Service
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc *logistics.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// List godoc
// @Summary      Listar inventario
// @Description  Con ?centers=1,2 filtra por centro; una lista vacía devuelve [].
// @Tags         inventory
// @Produce      json
// @Param        centers  query  string  false  "IDs de centro separados por coma"
// @Success      200  {array}   entity.InventoryItem
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	if !c.Context().QueryArgs().Has("centers") {
		return sendList(c, h.svc.GetInventoryItems(c.UserContext()))
	}
	ids, err := parseIDList(c.Query("centers"))
	if err != nil {
		return badRequest(c, "INVALID_CENTERS", "centers debe ser una lista de ids")
	}
	return sendList(c, h.svc.GetInventoryByCenters(c.UserContext(), ids))
}

// LowStock godoc
// @Summary      Artículos a reponer
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  entity.InventoryItem
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	return sendList(c, h.svc.GetLowStockItems(c.UserContext()))
}

// Summary godoc
// @Summary      Resumen de inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryDTO
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	items := result.ToList(h.svc.GetInventoryItems(c.UserContext()))
	return c.JSON(logistics.InventorySummary(items))
}

// GetByID godoc
// @Summary      Obtener artículo
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  result.Row[entity.InventoryItem]
// @Failure      404  {object}  result.Row[entity.InventoryItem]
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	return sendRow(c, fiber.StatusOK, h.svc.GetInventoryItemByID(c.UserContext(), id))
}

// Create godoc
// @Summary      Crear artículo
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "Artículo"
// @Success      201   {object}  result.Row[entity.InventoryItem]
// @Failure      400   {object}  result.Row[entity.InventoryItem]
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusCreated, h.svc.CreateInventoryItem(c.UserContext(), in))
}

// Update godoc
// @Summary      Actualizar artículo
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del artículo"
// @Param        body  body  entity.InventoryItemPatch  true  "Campos a modificar"
// @Success      200   {object}  result.Row[entity.InventoryItem]
// @Failure      400   {object}  result.Row[entity.InventoryItem]
// @Failure      404   {object}  result.Row[entity.InventoryItem]
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	var patch entity.InventoryItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusOK, h.svc.UpdateInventoryItem(c.UserContext(), id, patch))
}

// Delete godoc
// @Summary      Borrar artículo
// @Tags         inventory
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  result.Mutation
// @Failure      409  {object}  result.Mutation
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	return sendMutation(c, h.svc.DeleteInventoryItem(c.UserContext(), id))
}

// Export godoc
// @Summary      Exportar inventario a Excel
// @Tags         inventory
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        centers  query  string  false  "IDs de centro separados por coma"
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/export.xlsx [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	var r result.Result[[]entity.InventoryItem]
	if c.Context().QueryArgs().Has("centers") {
		ids, err := parseIDList(c.Query("centers"))
		if err != nil {
			return badRequest(c, "INVALID_CENTERS", "centers debe ser una lista de ids")
		}
		r = h.svc.GetInventoryByCenters(c.UserContext(), ids)
	} else {
		r = h.svc.GetInventoryItems(c.UserContext())
	}
	if !r.IsOk() {
		return c.Status(statusFor(r.Err())).JSON(dto.ErrorResponse{Code: "LOAD_FAILED", Message: r.Reason()})
	}
	var buf bytes.Buffer
	if _, err := report.NewInventoryWorkbook(r.Value()).WriteTo(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, "inventario.xlsx"))
	return c.Send(buf.Bytes())
}
