package logistics

import (
	"context"
	"fmt"
	"strings"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/facade"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// GetSuppliers devuelve todos los proveedores.
func (s *Service) GetSuppliers(ctx context.Context) result.Result[[]entity.Supplier] {
	rows, err := s.repos.Suppliers.List(ctx)
	return facade.Rows(s.log, "GetSuppliers", rows, err)
}

// GetSupplierByID obtiene un proveedor.
func (s *Service) GetSupplierByID(ctx context.Context, id int64) result.Result[*entity.Supplier] {
	row, err := s.repos.Suppliers.GetByID(ctx, id)
	return facade.One(s.log, "GetSupplierByID", row, err)
}

// CreateSupplier da de alta un proveedor activo.
func (s *Service) CreateSupplier(ctx context.Context, in dto.CreateSupplierRequest) result.Result[*entity.Supplier] {
	if strings.TrimSpace(in.Name) == "" {
		return facade.Invalid[*entity.Supplier](s.log, "CreateSupplier", fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput))
	}
	categories := in.Categories
	if categories == nil {
		categories = []string{}
	}
	supplier := &entity.Supplier{
		Name:          strings.TrimSpace(in.Name),
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		TaxID:         in.TaxID,
		Categories:    categories,
		Rating:        in.Rating,
		Active:        true,
	}
	row, err := s.repos.Suppliers.Create(ctx, supplier)
	return facade.Touch(s.inv, cache.KeySuppliers, facade.One(s.log, "CreateSupplier", row, err))
}

// UpdateSupplier aplica los campos presentes en el patch.
func (s *Service) UpdateSupplier(ctx context.Context, id int64, patch entity.SupplierPatch) result.Result[*entity.Supplier] {
	if patch.IsEmpty() {
		return facade.Invalid[*entity.Supplier](s.log, "UpdateSupplier", fmt.Errorf("%w: nada que actualizar", domain.ErrInvalidInput))
	}
	row, err := s.repos.Suppliers.Update(ctx, id, patch)
	return facade.Touch(s.inv, cache.KeySuppliers, facade.One(s.log, "UpdateSupplier", row, err))
}

// DeleteSupplier borra físicamente un proveedor.
func (s *Service) DeleteSupplier(ctx context.Context, id int64) result.Result[struct{}] {
	err := s.repos.Suppliers.Delete(ctx, id)
	return facade.Touch(s.inv, cache.KeySuppliers, facade.Done(s.log, "DeleteSupplier", err))
}

// GetProductCategories devuelve las categorías de producto.
func (s *Service) GetProductCategories(ctx context.Context) result.Result[[]entity.ProductCategory] {
	rows, err := s.repos.Categories.List(ctx)
	return facade.Rows(s.log, "GetProductCategories", rows, err)
}

// CreateProductCategory crea una categoría.
func (s *Service) CreateProductCategory(ctx context.Context, in dto.CreateProductCategoryRequest) result.Result[*entity.ProductCategory] {
	if strings.TrimSpace(in.Name) == "" {
		return facade.Invalid[*entity.ProductCategory](s.log, "CreateProductCategory", fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput))
	}
	row, err := s.repos.Categories.Create(ctx, &entity.ProductCategory{Name: strings.TrimSpace(in.Name), Description: in.Description})
	return facade.Touch(s.inv, cache.KeyProductCategories, facade.One(s.log, "CreateProductCategory", row, err))
}

// GetStockAlerts devuelve las alertas de stock, opcionalmente solo las abiertas.
func (s *Service) GetStockAlerts(ctx context.Context, unresolvedOnly bool) result.Result[[]entity.StockAlert] {
	rows, err := s.repos.Alerts.List(ctx, unresolvedOnly)
	return facade.Rows(s.log, "GetStockAlerts", rows, err)
}

// ResolveStockAlert marca una alerta como resuelta.
func (s *Service) ResolveStockAlert(ctx context.Context, id int64) result.Result[struct{}] {
	err := s.repos.Alerts.Resolve(ctx, id)
	return facade.Touch(s.inv, cache.KeyStockAlerts, facade.Done(s.log, "ResolveStockAlert", err))
}
