package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/leads"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/meetings"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/projects"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/state"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/infrastructure/pdf"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

// RouterDeps dependencias para el router. State y Hub son opcionales.
type RouterDeps struct {
	Logistics *logistics.Service
	Leads     *leads.Service
	Projects  *projects.Service
	Meetings  *meetings.Service
	State     *state.LogisticsState
	Hub       *cache.Hub
	PDF       *pdf.SupplierOrderPDF
	Log       *logger.Logger
}

// Router registra las rutas de la API. Las rutas fijas van antes que /:id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Logistics)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/low-stock", inventoryHandler.LowStock)
	inventory.Get("/summary", inventoryHandler.Summary)
	inventory.Get("/export.xlsx", inventoryHandler.Export)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)

	// Proveedores, categorías y alertas
	supplierHandler := NewSupplierHandler(deps.Logistics)
	suppliers := api.Group("/suppliers")
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	categories := api.Group("/categories")
	categories.Get("/", supplierHandler.ListCategories)
	categories.Post("/", supplierHandler.CreateCategory)

	alerts := api.Group("/stock-alerts")
	alerts.Get("/", supplierHandler.ListStockAlerts)
	alerts.Put("/:id/resolve", supplierHandler.ResolveStockAlert)

	// Pedidos a proveedor
	gen := deps.PDF
	if gen == nil {
		gen = pdf.NewSupplierOrderPDF("")
	}
	supplierOrders := api.Group("/supplier-orders")
	supplierOrderHandler := NewSupplierOrderHandler(deps.Logistics, gen)
	supplierOrders.Get("/", supplierOrderHandler.List)
	supplierOrders.Get("/stats", supplierOrderHandler.Stats)
	supplierOrders.Post("/", supplierOrderHandler.Create)
	supplierOrders.Get("/:id", supplierOrderHandler.GetByID)
	supplierOrders.Put("/:id", supplierOrderHandler.Update)
	supplierOrders.Delete("/:id", supplierOrderHandler.Delete)
	supplierOrders.Put("/:id/status", supplierOrderHandler.MarkStatus)
	supplierOrders.Put("/:id/payment", supplierOrderHandler.MarkPayment)
	supplierOrders.Get("/:id/items", supplierOrderHandler.Items)
	supplierOrders.Get("/:id/pdf", supplierOrderHandler.PDF)

	// Pedidos internos y uniformes
	orderHandler := NewOrderHandler(deps.Logistics)
	orders := api.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Put("/:id/sent", orderHandler.MarkSent)
	orders.Put("/:id/delivered", orderHandler.MarkDelivered)
	orders.Delete("/:id", orderHandler.Delete)

	uniforms := api.Group("/uniform-requests")
	uniforms.Get("/", orderHandler.ListUniforms)
	uniforms.Post("/", orderHandler.CreateUniform)
	uniforms.Put("/:id/status", orderHandler.UpdateUniformStatus)

	// Leads
	leadHandler := NewLeadHandler(deps.Leads)
	leadGroup := api.Group("/leads")
	leadGroup.Get("/", leadHandler.List)
	leadGroup.Get("/pipeline", leadHandler.Pipeline)
	leadGroup.Post("/", leadHandler.Create)
	leadGroup.Get("/:id", leadHandler.GetByID)
	leadGroup.Put("/:id", leadHandler.Update)
	leadGroup.Delete("/:id", leadHandler.Delete)
	leadGroup.Put("/:id/stage", leadHandler.UpdateStage)
	leadGroup.Get("/:id/interactions", leadHandler.Interactions)
	leadGroup.Post("/:id/interactions", leadHandler.AddInteraction)

	// Proyectos
	projectHandler := NewProjectHandler(deps.Projects)
	projectGroup := api.Group("/projects")
	projectGroup.Get("/", projectHandler.List)
	projectGroup.Get("/portfolio", projectHandler.Portfolio)
	projectGroup.Post("/", projectHandler.Create)
	projectGroup.Get("/:id", projectHandler.GetByID)
	projectGroup.Put("/:id", projectHandler.Update)
	projectGroup.Delete("/:id", projectHandler.Delete)
	projectGroup.Put("/:id/status", projectHandler.MarkStatus)

	// Reuniones y buzón de traspaso
	meetingHandler := NewMeetingHandler(deps.Meetings)
	meetingGroup := api.Group("/meetings")
	meetingGroup.Get("/", meetingHandler.List)
	meetingGroup.Post("/draft", meetingHandler.Draft)
	meetingGroup.Post("/", meetingHandler.Create)
	meetingGroup.Get("/:id", meetingHandler.GetByID)
	meetingGroup.Put("/:id", meetingHandler.Update)
	meetingGroup.Delete("/:id", meetingHandler.Delete)

	handoff := api.Group("/handoff")
	handoff.Put("/lead", meetingHandler.SelectLead)
	handoff.Get("/lead", meetingHandler.PeekLead)
	handoff.Delete("/lead", meetingHandler.TakeLead)

	// Estado logístico compartido
	if deps.State != nil {
		stateHandler := NewStateHandler(deps.State)
		st := api.Group("/state/logistics")
		st.Get("/", stateHandler.Logistics)
		st.Get("/low-stock", stateHandler.LowStock)
		st.Post("/inventory", stateHandler.CreateInventoryItem)
		st.Put("/inventory/:id", stateHandler.UpdateInventoryItem)
		st.Post("/suppliers", stateHandler.CreateSupplier)
		st.Put("/suppliers/:id", stateHandler.UpdateSupplier)
		st.Post("/supplier-orders", stateHandler.CreateSupplierOrder)
		st.Put("/supplier-orders/:id/status", stateHandler.MarkSupplierOrderStatus)
	}

	// Invalidaciones por SSE
	if deps.Hub != nil {
		log := deps.Log
		if log == nil {
			log = logger.Nop()
		}
		api.Get("/events", NewEventsHandler(deps.Hub, log).Stream)
	}
}
