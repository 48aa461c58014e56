package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// SupplierHandler maneja proveedores, categorías de producto y alertas de stock.
type SupplierHandler struct {
	svc *logistics.Service
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(svc *logistics.Service) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}  entity.Supplier
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	return sendList(c, h.svc.GetSuppliers(c.UserContext()))
}

// GetByID godoc
// @Summary      Obtener proveedor
// @Tags         suppliers
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  result.Row[entity.Supplier]
// @Failure      404  {object}  result.Row[entity.Supplier]
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	return sendRow(c, fiber.StatusOK, h.svc.GetSupplierByID(c.UserContext(), id))
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Proveedor"
// @Success      201   {object}  result.Row[entity.Supplier]
// @Failure      400   {object}  result.Row[entity.Supplier]
// @Failure      409   {object}  result.Row[entity.Supplier]
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusCreated, h.svc.CreateSupplier(c.UserContext(), in))
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proveedor"
// @Param        body  body  entity.SupplierPatch  true  "Campos a modificar"
// @Success      200   {object}  result.Row[entity.Supplier]
// @Failure      404   {object}  result.Row[entity.Supplier]
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	var patch entity.SupplierPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusOK, h.svc.UpdateSupplier(c.UserContext(), id, patch))
}

// Delete godoc
// @Summary      Borrar proveedor
// @Tags         suppliers
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  result.Mutation
// @Failure      409  {object}  result.Mutation
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	return sendMutation(c, h.svc.DeleteSupplier(c.UserContext(), id))
}

// ListCategories godoc
// @Summary      Listar categorías de producto
// @Tags         categories
// @Produce      json
// @Success      200  {array}  entity.ProductCategory
// @Router       /api/categories [get]
func (h *SupplierHandler) ListCategories(c *fiber.Ctx) error {
	return sendList(c, h.svc.GetProductCategories(c.UserContext()))
}

// CreateCategory godoc
// @Summary      Crear categoría de producto
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductCategoryRequest  true  "Categoría"
// @Success      201   {object}  result.Row[entity.ProductCategory]
// @Failure      409   {object}  result.Row[entity.ProductCategory]
// @Router       /api/categories [post]
func (h *SupplierHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateProductCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusCreated, h.svc.CreateProductCategory(c.UserContext(), in))
}

// ListStockAlerts godoc
// @Summary      Listar alertas de stock
// @Tags         stock-alerts
// @Produce      json
// @Param        unresolved  query  bool  false  "Solo pendientes"
// @Success      200  {array}  entity.StockAlert
// @Router       /api/stock-alerts [get]
func (h *SupplierHandler) ListStockAlerts(c *fiber.Ctx) error {
	return sendList(c, h.svc.GetStockAlerts(c.UserContext(), c.QueryBool("unresolved", false)))
}

// ResolveStockAlert godoc
// @Summary      Marcar alerta como resuelta
// @Tags         stock-alerts
// @Produce      json
// @Param        id   path  int  true  "ID de la alerta"
// @Success      200  {object}  result.Mutation
// @Failure      404  {object}  result.Mutation
// @Router       /api/stock-alerts/{id}/resolve [put]
func (h *SupplierHandler) ResolveStockAlert(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	return sendMutation(c, h.svc.ResolveStockAlert(c.UserContext(), id))
}
