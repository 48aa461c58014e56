package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/state"
)

// StateHandler expone el estado logístico compartido (última lectura buena + banderas)
// y los formularios sueltos que lo modifican.
type StateHandler struct {
	st *state.LogisticsState
}

// NewStateHandler construye el handler.
func NewStateHandler(st *state.LogisticsState) *StateHandler {
	return &StateHandler{st: st}
}

// Logistics godoc
// @Summary      Estado logístico
// @Description  Sin refresh solo recarga las entidades obsoletas; refresh=1 fuerza la recarga.
// @Tags         state
// @Produce      json
// @Param        refresh  query  bool  false  "Forzar recarga"
// @Success      200  {object}  state.LogisticsSnapshot
// @Router       /api/state/logistics [get]
func (h *StateHandler) Logistics(c *fiber.Ctx) error {
	if c.QueryBool("refresh", false) {
		return c.JSON(h.st.LoadAll(c.UserContext()))
	}
	return c.JSON(h.st.RefreshAll(c.UserContext()))
}

// LowStock godoc
// @Summary      Artículos a reponer según el estado cargado
// @Tags         state
// @Produce      json
// @Success      200  {array}  entity.InventoryItem
// @Router       /api/state/logistics/low-stock [get]
func (h *StateHandler) LowStock(c *fiber.Ctx) error {
	h.st.Inventory.Refresh(c.UserContext())
	return c.JSON(h.st.LowStock())
}

// CreateInventoryItem godoc
// @Summary      Alta de artículo desde formulario
// @Description  Los campos numéricos se coercionan; ausentes o no numéricos valen 0.
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "Formulario"
// @Success      201   {object}  result.Row[entity.InventoryItem]
// @Failure      400   {object}  result.Row[entity.InventoryItem]
// @Router       /api/state/logistics/inventory [post]
func (h *StateHandler) CreateInventoryItem(c *fiber.Ctx) error {
	f, err := parseForm(c)
	if err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusCreated, h.st.CreateInventoryItem(c.UserContext(), f))
}

// UpdateInventoryItem godoc
// @Summary      Modificación de artículo desde formulario
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        id    path  int     true  "ID del artículo"
// @Param        body  body  object  true  "Formulario"
// @Success      200   {object}  result.Row[entity.InventoryItem]
// @Failure      404   {object}  result.Row[entity.InventoryItem]
// @Router       /api/state/logistics/inventory/{id} [put]
func (h *StateHandler) UpdateInventoryItem(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	f, err := parseForm(c)
	if err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusOK, h.st.UpdateInventoryItem(c.UserContext(), id, f))
}

// CreateSupplier godoc
// @Summary      Alta de proveedor desde formulario
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "Formulario"
// @Success      201   {object}  result.Row[entity.Supplier]
// @Router       /api/state/logistics/suppliers [post]
func (h *StateHandler) CreateSupplier(c *fiber.Ctx) error {
	f, err := parseForm(c)
	if err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusCreated, h.st.CreateSupplier(c.UserContext(), f))
}

// UpdateSupplier godoc
// @Summary      Modificación de proveedor desde formulario
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        id    path  int     true  "ID del proveedor"
// @Param        body  body  object  true  "Formulario"
// @Success      200   {object}  result.Row[entity.Supplier]
// @Router       /api/state/logistics/suppliers/{id} [put]
func (h *StateHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	f, err := parseForm(c)
	if err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusOK, h.st.UpdateSupplier(c.UserContext(), id, f))
}

// CreateSupplierOrder godoc
// @Summary      Alta de pedido a proveedor desde formulario
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "Formulario"
// @Success      201   {object}  result.Row[entity.SupplierOrder]
// @Router       /api/state/logistics/supplier-orders [post]
func (h *StateHandler) CreateSupplierOrder(c *fiber.Ctx) error {
	f, err := parseForm(c)
	if err != nil {
		return invalidBody(c)
	}
	return sendRow(c, fiber.StatusCreated, h.st.CreateSupplierOrder(c.UserContext(), f))
}

// MarkSupplierOrderStatus godoc
// @Summary      Cambio de estado de pedido con recarga del estado
// @Tags         state
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.StatusRequest  true  "Nuevo estado"
// @Success      200   {object}  result.Mutation
// @Router       /api/state/logistics/supplier-orders/{id}/status [put]
func (h *StateHandler) MarkSupplierOrderStatus(c *fiber.Ctx) error {
	id, ok := intID(c)
	if !ok {
		return invalidID(c)
	}
	f, err := parseForm(c)
	if err != nil {
		return invalidBody(c)
	}
	return sendMutation(c, h.st.MarkSupplierOrderStatus(c.UserContext(), id, f.String("status")))
}

func parseForm(c *fiber.Ctx) (state.Form, error) {
	f := state.Form{}
	if len(c.Body()) == 0 {
		return f, nil
	}
	if err := c.BodyParser(&f); err != nil {
		return nil, err
	}
	return f, nil
}
