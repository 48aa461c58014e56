package repository

import (
	"context"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// SupplierOrderRepository define el puerto de persistencia para supplier_orders y
// supplier_order_items.
type SupplierOrderRepository interface {
	List(ctx context.Context) ([]entity.SupplierOrder, error)
	GetByID(ctx context.Context, id int64) (*entity.SupplierOrder, error)
	Create(ctx context.Context, order *entity.SupplierOrder) (*entity.SupplierOrder, error)
	Update(ctx context.Context, id int64, patch entity.SupplierOrderPatch) (*entity.SupplierOrder, error)
	Delete(ctx context.Context, id int64) error
	ListItems(ctx context.Context, orderID int64) ([]entity.SupplierOrderItem, error)
	CreateItems(ctx context.Context, orderID int64, items []entity.SupplierOrderItem) ([]entity.SupplierOrderItem, error)
}

// SupplierOrderTxRunner crea un pedido y sus líneas en una sola transacción.
type SupplierOrderTxRunner interface {
	RunSupplierOrder(ctx context.Context, fn func(orders SupplierOrderRepository) error) error
}
