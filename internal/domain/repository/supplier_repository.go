package repository

import (
	"context"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para suppliers.
type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) (*entity.Supplier, error)
	Update(ctx context.Context, id int64, patch entity.SupplierPatch) (*entity.Supplier, error)
	Delete(ctx context.Context, id int64) error
}

// ProductCategoryRepository define el puerto de persistencia para product_categories.
type ProductCategoryRepository interface {
	List(ctx context.Context) ([]entity.ProductCategory, error)
	Create(ctx context.Context, category *entity.ProductCategory) (*entity.ProductCategory, error)
}

// StockAlertRepository define el puerto de persistencia para stock_alerts.
type StockAlertRepository interface {
	List(ctx context.Context, unresolvedOnly bool) ([]entity.StockAlert, error)
	Resolve(ctx context.Context, id int64) error
}
