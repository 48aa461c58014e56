package logistics_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
)

// mockItems doble de InventoryItemRepository con expectativas.
type mockItems struct{ mock.Mock }

func (m *mockItems) List(ctx context.Context) ([]entity.InventoryItem, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]entity.InventoryItem)
	return rows, args.Error(1)
}

func (m *mockItems) ListByCenters(ctx context.Context, centerIDs []int64) ([]entity.InventoryItem, error) {
	args := m.Called(ctx, centerIDs)
	rows, _ := args.Get(0).([]entity.InventoryItem)
	return rows, args.Error(1)
}

func (m *mockItems) GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*entity.InventoryItem)
	return row, args.Error(1)
}

func (m *mockItems) Create(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	args := m.Called(ctx, item)
	row, _ := args.Get(0).(*entity.InventoryItem)
	return row, args.Error(1)
}

func (m *mockItems) Update(ctx context.Context, id int64, patch entity.InventoryItemPatch) (*entity.InventoryItem, error) {
	args := m.Called(ctx, id, patch)
	row, _ := args.Get(0).(*entity.InventoryItem)
	return row, args.Error(1)
}

func (m *mockItems) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// mockOrders doble de OrderRepository.
type mockOrders struct{ mock.Mock }

func (m *mockOrders) List(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]entity.Order)
	return rows, args.Error(1)
}

func (m *mockOrders) ListByCenter(ctx context.Context, centerID int64) ([]entity.Order, error) {
	args := m.Called(ctx, centerID)
	rows, _ := args.Get(0).([]entity.Order)
	return rows, args.Error(1)
}

func (m *mockOrders) MarkStatus(ctx context.Context, id, status string, at time.Time) error {
	return m.Called(ctx, id, status, at).Error(0)
}

func (m *mockOrders) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// memItems inventario en memoria que imita al backend (asigna id y timestamps).
type memItems struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]entity.InventoryItem
}

func newMemItems() *memItems {
	return &memItems{nextID: 49, rows: map[int64]entity.InventoryItem{}}
}

func (r *memItems) List(ctx context.Context) ([]entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.InventoryItem
	for _, it := range r.rows {
		out = append(out, it)
	}
	return out, nil
}

func (r *memItems) ListByCenters(ctx context.Context, centerIDs []int64) ([]entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.InventoryItem
	for _, it := range r.rows {
		for _, c := range centerIDs {
			if it.CenterID == c {
				out = append(out, it)
				break
			}
		}
	}
	return out, nil
}

func (r *memItems) GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *memItems) Create(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	row := *item
	row.ID = r.nextID
	row.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	row.UpdatedAt = row.CreatedAt
	r.rows[row.ID] = row
	return &row, nil
}

func (r *memItems) Update(ctx context.Context, id int64, patch entity.InventoryItemPatch) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	if patch.NombreItem != nil {
		it.NombreItem = *patch.NombreItem
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.MinStock != nil {
		it.MinStock = *patch.MinStock
	}
	r.rows[id] = it
	return &it, nil
}

func (r *memItems) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

// memCenterOrders pedidos internos en memoria; cuenta escrituras efectivas.
type memCenterOrders struct {
	mu     sync.Mutex
	rows   map[string]entity.Order
	writes int
}

func (r *memCenterOrders) List(ctx context.Context) ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Order
	for _, o := range r.rows {
		out = append(out, o)
	}
	return out, nil
}

func (r *memCenterOrders) ListByCenter(ctx context.Context, centerID int64) ([]entity.Order, error) {
	return nil, nil
}

// MarkStatus conserva la primera marca de tiempo, como el UPDATE con COALESCE del backend.
func (r *memCenterOrders) MarkStatus(ctx context.Context, id, status string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := r.rows[id]
	o.Status = status
	switch status {
	case entity.OrderSent:
		if o.SentAt == nil {
			o.SentAt = &at
		}
	case entity.OrderDelivered:
		if o.DeliveredAt == nil {
			o.DeliveredAt = &at
		}
	}
	r.rows[id] = o
	r.writes++
	return nil
}

func (r *memCenterOrders) Delete(ctx context.Context, id string) error { return nil }

// memSupplierOrders pedidos a proveedor en memoria.
type memSupplierOrders struct {
	nextID     int64
	nextItemID int64
	rows       map[int64]entity.SupplierOrder
	failItems  error
}

func newMemSupplierOrders() *memSupplierOrders {
	return &memSupplierOrders{rows: map[int64]entity.SupplierOrder{}}
}

func (r *memSupplierOrders) List(ctx context.Context) ([]entity.SupplierOrder, error) {
	var out []entity.SupplierOrder
	for _, o := range r.rows {
		out = append(out, o)
	}
	return out, nil
}

func (r *memSupplierOrders) GetByID(ctx context.Context, id int64) (*entity.SupplierOrder, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *memSupplierOrders) Create(ctx context.Context, order *entity.SupplierOrder) (*entity.SupplierOrder, error) {
	r.nextID++
	row := *order
	row.ID = r.nextID
	row.Items = nil
	r.rows[row.ID] = row
	return &row, nil
}

func (r *memSupplierOrders) Update(ctx context.Context, id int64, patch entity.SupplierOrderPatch) (*entity.SupplierOrder, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		o.PaymentStatus = *patch.PaymentStatus
	}
	if patch.TotalAmount != nil {
		o.TotalAmount = *patch.TotalAmount
	}
	r.rows[id] = o
	return &o, nil
}

func (r *memSupplierOrders) Delete(ctx context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

func (r *memSupplierOrders) ListItems(ctx context.Context, orderID int64) ([]entity.SupplierOrderItem, error) {
	return r.rows[orderID].Items, nil
}

func (r *memSupplierOrders) CreateItems(ctx context.Context, orderID int64, items []entity.SupplierOrderItem) ([]entity.SupplierOrderItem, error) {
	if r.failItems != nil {
		return nil, r.failItems
	}
	out := make([]entity.SupplierOrderItem, 0, len(items))
	for _, it := range items {
		r.nextItemID++
		it.ID = r.nextItemID
		it.OrderID = orderID
		out = append(out, it)
	}
	o := r.rows[orderID]
	o.Items = out
	r.rows[orderID] = o
	return out, nil
}

// memTx ejecuta fn sobre una copia y solo la publica si no hubo error.
type memTx struct{ repo *memSupplierOrders }

func (t memTx) RunSupplierOrder(ctx context.Context, fn func(orders repository.SupplierOrderRepository) error) error {
	snapshot := make(map[int64]entity.SupplierOrder, len(t.repo.rows))
	for k, v := range t.repo.rows {
		snapshot[k] = v
	}
	if err := fn(t.repo); err != nil {
		t.repo.rows = snapshot
		return err
	}
	return nil
}
