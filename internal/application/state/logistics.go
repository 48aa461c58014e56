package state

import (
	"context"

	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// Mensajes fijos de fallo de carga.
const (
	MsgInventoryLoad      = "Error al cargar el inventario"
	MsgSuppliersLoad      = "Error al cargar los proveedores"
	MsgSupplierOrdersLoad = "Error al cargar los pedidos"
)

// LogisticsState estado derivado del dominio logístico. Cada entidad tiene su propio
// slot; el fallo de una no afecta a las demás.
type LogisticsState struct {
	svc *logistics.Service

	Inventory      *Store[entity.InventoryItem]
	Suppliers      *Store[entity.Supplier]
	SupplierOrders *Store[entity.SupplierOrder]

	release []func()
}

// LogisticsSnapshot foto completa con los agregados recalculados.
type LogisticsSnapshot struct {
	Inventory      Snapshot[entity.InventoryItem] `json:"inventory"`
	Suppliers      Snapshot[entity.Supplier]      `json:"suppliers"`
	SupplierOrders Snapshot[entity.SupplierOrder] `json:"supplier_orders"`
	OrderStats     dto.OrderStatsDTO              `json:"order_stats"`
	Summary        dto.InventorySummaryDTO        `json:"inventory_summary"`
}

// NewLogisticsState engancha los stores compartidos del registro. Close los suelta.
func NewLogisticsState(reg *Registry, svc *logistics.Service) *LogisticsState {
	s := &LogisticsState{svc: svc}
	var rel func()
	s.Inventory, rel = Acquire[entity.InventoryItem](reg, cache.KeyInventoryItems, svc.GetInventoryItems, MsgInventoryLoad)
	s.release = append(s.release, rel)
	s.Suppliers, rel = Acquire[entity.Supplier](reg, cache.KeySuppliers, svc.GetSuppliers, MsgSuppliersLoad)
	s.release = append(s.release, rel)
	s.SupplierOrders, rel = Acquire[entity.SupplierOrder](reg, cache.KeySupplierOrders, svc.GetSupplierOrders, MsgSupplierOrdersLoad)
	s.release = append(s.release, rel)
	return s
}

// Close suelta los stores compartidos.
func (s *LogisticsState) Close() {
	for _, rel := range s.release {
		rel()
	}
}

// LoadAll carga las tres entidades en paralelo.
func (s *LogisticsState) LoadAll(ctx context.Context) LogisticsSnapshot {
	var g errgroup.Group
	g.Go(func() error { s.Inventory.Load(ctx); return nil })
	g.Go(func() error { s.Suppliers.Load(ctx); return nil })
	g.Go(func() error { s.SupplierOrders.Load(ctx); return nil })
	_ = g.Wait()
	return s.Snapshot()
}

// RefreshAll recarga solo las entidades obsoletas.
func (s *LogisticsState) RefreshAll(ctx context.Context) LogisticsSnapshot {
	var g errgroup.Group
	g.Go(func() error { s.Inventory.Refresh(ctx); return nil })
	g.Go(func() error { s.Suppliers.Refresh(ctx); return nil })
	g.Go(func() error { s.SupplierOrders.Refresh(ctx); return nil })
	_ = g.Wait()
	return s.Snapshot()
}

// Snapshot foto actual sin recargar.
func (s *LogisticsState) Snapshot() LogisticsSnapshot {
	inv := s.Inventory.Snapshot()
	orders := s.SupplierOrders.Snapshot()
	return LogisticsSnapshot{
		Inventory:      inv,
		Suppliers:      s.Suppliers.Snapshot(),
		SupplierOrders: orders,
		OrderStats:     logistics.OrderStats(orders.Data),
		Summary:        logistics.InventorySummary(inv.Data),
	}
}

// OrderStats agregados de pedidos sobre los datos actuales; se recalcula en cada llamada.
func (s *LogisticsState) OrderStats() dto.OrderStatsDTO {
	return logistics.OrderStats(s.SupplierOrders.Snapshot().Data)
}

// LowStock artículos a reponer según los datos actuales.
func (s *LogisticsState) LowStock() []entity.InventoryItem {
	return logistics.LowStock(s.Inventory.Snapshot().Data)
}

// CreateInventoryItem coerciona el formulario, crea y recarga el inventario pase lo que pase.
func (s *LogisticsState) CreateInventoryItem(ctx context.Context, f Form) result.Result[*entity.InventoryItem] {
	r := s.svc.CreateInventoryItem(ctx, dto.CreateInventoryItemRequest{
		NombreItem:    f.String("nombre_item"),
		Categoria:     f.String("categoria"),
		Talla:         f.String("talla"),
		Color:         f.String("color"),
		Quantity:      f.Int("quantity"),
		MinStock:      f.Int("min_stock"),
		MaxStock:      f.Int("max_stock"),
		PurchasePrice: f.Money("purchase_price"),
		SalePrice:     f.Money("sale_price"),
		CenterID:      f.Int64("center_id"),
		SupplierID:    f.OptionalID("supplier_id"),
		Location:      f.String("location"),
	})
	s.Inventory.Load(ctx)
	return r
}

// UpdateInventoryItem aplica solo las claves presentes en el formulario y recarga.
func (s *LogisticsState) UpdateInventoryItem(ctx context.Context, id int64, f Form) result.Result[*entity.InventoryItem] {
	var p entity.InventoryItemPatch
	if f.Has("nombre_item") {
		v := f.String("nombre_item")
		p.NombreItem = &v
	}
	if f.Has("categoria") {
		v := f.String("categoria")
		p.Categoria = &v
	}
	if f.Has("talla") {
		v := f.String("talla")
		p.Talla = &v
	}
	if f.Has("color") {
		v := f.String("color")
		p.Color = &v
	}
	if f.Has("quantity") {
		v := f.Int("quantity")
		p.Quantity = &v
	}
	if f.Has("min_stock") {
		v := f.Int("min_stock")
		p.MinStock = &v
	}
	if f.Has("max_stock") {
		v := f.Int("max_stock")
		p.MaxStock = &v
	}
	if f.Has("purchase_price") {
		v := f.Money("purchase_price")
		p.PurchasePrice = &v
	}
	if f.Has("sale_price") {
		v := f.Money("sale_price")
		p.SalePrice = &v
	}
	if f.Has("center_id") {
		v := f.Int64("center_id")
		p.CenterID = &v
	}
	if f.Has("supplier_id") {
		p.SupplierID = f.OptionalID("supplier_id")
	}
	if f.Has("location") {
		v := f.String("location")
		p.Location = &v
	}
	r := s.svc.UpdateInventoryItem(ctx, id, p)
	s.Inventory.Load(ctx)
	return r
}

// CreateSupplier coerciona, crea y recarga proveedores.
func (s *LogisticsState) CreateSupplier(ctx context.Context, f Form) result.Result[*entity.Supplier] {
	r := s.svc.CreateSupplier(ctx, dto.CreateSupplierRequest{
		Name:          f.String("name"),
		ContactPerson: f.String("contact_person"),
		Email:         f.String("email"),
		Phone:         f.String("phone"),
		Address:       f.String("address"),
		TaxID:         f.String("tax_id"),
		Categories:    f.Strings("categories"),
		Rating:        f.Money("rating"),
	})
	s.Suppliers.Load(ctx)
	return r
}

// UpdateSupplier aplica las claves presentes y recarga proveedores.
func (s *LogisticsState) UpdateSupplier(ctx context.Context, id int64, f Form) result.Result[*entity.Supplier] {
	var p entity.SupplierPatch
	for key, dst := range map[string]**string{
		"name":           &p.Name,
		"contact_person": &p.ContactPerson,
		"email":          &p.Email,
		"phone":          &p.Phone,
		"address":        &p.Address,
		"tax_id":         &p.TaxID,
	} {
		if f.Has(key) {
			v := f.String(key)
			*dst = &v
		}
	}
	if f.Has("categories") {
		p.Categories = f.Strings("categories")
	}
	if f.Has("rating") {
		v := f.Money("rating")
		p.Rating = &v
	}
	if f.Has("active") {
		v := cast.ToBool(f["active"])
		p.Active = &v
	}
	r := s.svc.UpdateSupplier(ctx, id, p)
	s.Suppliers.Load(ctx)
	return r
}

// CreateSupplierOrder coerciona cabecera y líneas, crea y recarga pedidos.
func (s *LogisticsState) CreateSupplierOrder(ctx context.Context, f Form) result.Result[*entity.SupplierOrder] {
	in := dto.CreateSupplierOrderRequest{
		OrderNumber:      f.String("order_number"),
		SupplierID:       f.Int64("supplier_id"),
		CenterID:         f.OptionalID("center_id"),
		TotalAmount:      f.Money("total_amount"),
		ExpectedDelivery: f.Time("expected_delivery"),
		Notes:            f.String("notes"),
	}
	for _, line := range f.Forms("items") {
		in.Items = append(in.Items, dto.SupplierOrderItemRequest{
			InventoryItemID: line.OptionalID("inventory_item_id"),
			ItemName:        line.String("item_name"),
			Quantity:        line.Int("quantity"),
			UnitPrice:       line.Money("unit_price"),
		})
	}
	r := s.svc.CreateSupplierOrder(ctx, in)
	s.SupplierOrders.Load(ctx)
	return r
}

// MarkSupplierOrderStatus cambia el estado y recarga pedidos.
func (s *LogisticsState) MarkSupplierOrderStatus(ctx context.Context, id int64, status string) result.Result[struct{}] {
	r := s.svc.MarkSupplierOrderStatus(ctx, id, status)
	s.SupplierOrders.Load(ctx)
	return r
}
