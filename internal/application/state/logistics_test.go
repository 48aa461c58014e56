package state_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/state"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

type fakeItems struct {
	mu        sync.Mutex
	rows      []entity.InventoryItem
	lists     int
	listErr   error
	createErr error
}

func (f *fakeItems) List(ctx context.Context) ([]entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]entity.InventoryItem(nil), f.rows...), nil
}

func (f *fakeItems) ListByCenters(ctx context.Context, ids []int64) ([]entity.InventoryItem, error) {
	return nil, nil
}

func (f *fakeItems) GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	return nil, nil
}

func (f *fakeItems) Create(ctx context.Context, it *entity.InventoryItem) (*entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	row := *it
	row.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, row)
	return &row, nil
}

func (f *fakeItems) Update(ctx context.Context, id int64, p entity.InventoryItemPatch) (*entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			if p.Quantity != nil {
				f.rows[i].Quantity = *p.Quantity
			}
			if p.MinStock != nil {
				f.rows[i].MinStock = *p.MinStock
			}
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeItems) Delete(ctx context.Context, id int64) error { return nil }

type fakeSuppliers struct {
	rows    []entity.Supplier
	listErr error
}

func (f *fakeSuppliers) List(ctx context.Context) ([]entity.Supplier, error) {
	return f.rows, f.listErr
}

func (f *fakeSuppliers) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	return nil, nil
}

func (f *fakeSuppliers) Create(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error) {
	row := *s
	row.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, row)
	return &row, nil
}

func (f *fakeSuppliers) Update(ctx context.Context, id int64, p entity.SupplierPatch) (*entity.Supplier, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			if p.Name != nil {
				f.rows[i].Name = *p.Name
			}
			if p.Active != nil {
				f.rows[i].Active = *p.Active
			}
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeSuppliers) Delete(ctx context.Context, id int64) error { return nil }

type fakeOrders struct {
	rows []entity.SupplierOrder
}

func (f *fakeOrders) List(ctx context.Context) ([]entity.SupplierOrder, error) { return f.rows, nil }

func (f *fakeOrders) GetByID(ctx context.Context, id int64) (*entity.SupplierOrder, error) {
	return nil, nil
}

func (f *fakeOrders) Create(ctx context.Context, o *entity.SupplierOrder) (*entity.SupplierOrder, error) {
	row := *o
	row.ID = int64(len(f.rows) + 1)
	row.Items = nil
	f.rows = append(f.rows, row)
	return &row, nil
}

func (f *fakeOrders) Update(ctx context.Context, id int64, p entity.SupplierOrderPatch) (*entity.SupplierOrder, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			if p.Status != nil {
				f.rows[i].Status = *p.Status
			}
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeOrders) ListItems(ctx context.Context, id int64) ([]entity.SupplierOrderItem, error) {
	return nil, nil
}

func (f *fakeOrders) CreateItems(ctx context.Context, id int64, items []entity.SupplierOrderItem) ([]entity.SupplierOrderItem, error) {
	return items, nil
}

func (f *fakeOrders) RunSupplierOrder(ctx context.Context, fn func(repository.SupplierOrderRepository) error) error {
	return fn(f)
}

type fixture struct {
	items     *fakeItems
	suppliers *fakeSuppliers
	orders    *fakeOrders
	hub       *cache.Hub
	reg       *state.Registry
	svc       *logistics.Service
}

func newFixture() *fixture {
	f := &fixture{
		items:     &fakeItems{},
		suppliers: &fakeSuppliers{},
		orders:    &fakeOrders{},
		hub:       cache.NewHub(4),
	}
	f.reg = state.NewRegistry(f.hub, logger.Nop())
	f.svc = logistics.NewService(logistics.Repositories{
		Items:          f.items,
		Suppliers:      f.suppliers,
		SupplierOrders: f.orders,
		Tx:             f.orders,
	}, f.hub, logger.Nop())
	return f
}

func TestLogisticsState_SlotsIndependientes(t *testing.T) {
	f := newFixture()
	f.items.rows = []entity.InventoryItem{{ID: 1, NombreItem: "Polo", Quantity: 1, MinStock: 3}}
	f.suppliers.listErr = errors.New("relation \"suppliers\" does not exist")
	ls := state.NewLogisticsState(f.reg, f.svc)
	defer ls.Close()

	snap := ls.LoadAll(context.Background())

	assert.Len(t, snap.Inventory.Data, 1)
	assert.Empty(t, snap.Inventory.Error)
	assert.Equal(t, state.MsgSuppliersLoad, snap.Suppliers.Error)
	assert.Empty(t, snap.Suppliers.Data)
	assert.Empty(t, snap.SupplierOrders.Error)
	assert.Equal(t, 1, snap.Summary.LowStock)
	assert.Len(t, ls.LowStock(), 1)
}

func TestLogisticsState_CreaConCoercionYRecarga(t *testing.T) {
	f := newFixture()
	ls := state.NewLogisticsState(f.reg, f.svc)
	defer ls.Close()
	ctx := context.Background()
	ls.LoadAll(ctx)

	r := ls.CreateInventoryItem(ctx, state.Form{
		"nombre_item":    "Polo Azul",
		"quantity":       "10",
		"min_stock":      "abc",
		"center_id":      "9",
		"purchase_price": "4,20",
	})

	require.True(t, r.IsOk(), r.Reason())
	assert.Equal(t, 10, r.Value().Quantity)
	assert.Equal(t, 0, r.Value().MinStock)
	assert.Equal(t, int64(9), r.Value().CenterID)
	assert.True(t, decimal.RequireFromString("4.2").Equal(r.Value().PurchasePrice))

	snap := ls.Inventory.Snapshot()
	assert.Len(t, snap.Data, 1)
	assert.False(t, snap.Stale)
	assert.Equal(t, uint64(1), snap.Version)
}

func TestLogisticsState_RecargaAunqueFalleLaMutacion(t *testing.T) {
	f := newFixture()
	f.items.createErr = &domain.BackendError{Message: "new row violates check constraint"}
	ls := state.NewLogisticsState(f.reg, f.svc)
	defer ls.Close()
	ctx := context.Background()
	ls.Inventory.Load(ctx)
	before := f.items.lists

	r := ls.CreateInventoryItem(ctx, state.Form{"nombre_item": "X"})

	assert.Equal(t, "new row violates check constraint", r.Reason())
	assert.Equal(t, before+1, f.items.lists)
}

func TestLogisticsState_UpdateSoloClavesPresentes(t *testing.T) {
	f := newFixture()
	f.items.rows = []entity.InventoryItem{{ID: 1, NombreItem: "Polo", Quantity: 5, MinStock: 2}}
	ls := state.NewLogisticsState(f.reg, f.svc)
	defer ls.Close()

	r := ls.UpdateInventoryItem(context.Background(), 1, state.Form{"quantity": "no-numero"})

	require.True(t, r.IsOk())
	assert.Equal(t, 0, r.Value().Quantity)
	assert.Equal(t, 2, r.Value().MinStock)
	assert.Equal(t, 0, ls.Inventory.Snapshot().Data[0].Quantity)
}

func TestLogisticsState_ProveedoresYPedidos(t *testing.T) {
	f := newFixture()
	ls := state.NewLogisticsState(f.reg, f.svc)
	defer ls.Close()
	ctx := context.Background()

	s := ls.CreateSupplier(ctx, state.Form{"name": "Deportes Iberia", "categories": "ropa,material", "rating": "4.5"})
	require.True(t, s.IsOk())
	assert.Equal(t, []string{"ropa", "material"}, s.Value().Categories)
	assert.True(t, s.Value().Active)

	u := ls.UpdateSupplier(ctx, s.Value().ID, state.Form{"active": "false"})
	require.True(t, u.IsOk())
	assert.False(t, u.Value().Active)
	assert.Len(t, ls.Suppliers.Snapshot().Data, 1)

	o := ls.CreateSupplierOrder(ctx, state.Form{
		"supplier_id": s.Value().ID,
		"items": []any{
			map[string]any{"item_name": "Polo", "quantity": "3", "unit_price": "10"},
		},
	})
	require.True(t, o.IsOk(), o.Reason())
	assert.True(t, decimal.NewFromInt(30).Equal(o.Value().TotalAmount))

	m := ls.MarkSupplierOrderStatus(ctx, o.Value().ID, entity.SupplierOrderSent)
	require.True(t, m.IsOk())

	stats := ls.OrderStats()
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.InTransit)
}

func TestLogisticsState_CompartenStores(t *testing.T) {
	f := newFixture()
	a := state.NewLogisticsState(f.reg, f.svc)
	b := state.NewLogisticsState(f.reg, f.svc)

	assert.Same(t, a.Inventory, b.Inventory)
	assert.Equal(t, 2, f.reg.Refs(cache.KeyInventoryItems))

	a.Close()
	b.Close()
	assert.Equal(t, 0, f.reg.Refs(cache.KeyInventoryItems))
}
