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

// GetInventoryItems devuelve todo el inventario ordenado por centro.
func (s *Service) GetInventoryItems(ctx context.Context) result.Result[[]entity.InventoryItem] {
	rows, err := s.repos.Items.List(ctx)
	return facade.Rows(s.log, "GetInventoryItems", rows, err)
}

// GetInventoryByCenters filtra por la lista de centros tal cual llega. Una lista vacía
// devuelve [] sin consultar el backend.
func (s *Service) GetInventoryByCenters(ctx context.Context, centerIDs []int64) result.Result[[]entity.InventoryItem] {
	if len(centerIDs) == 0 {
		return result.Ok([]entity.InventoryItem{})
	}
	rows, err := s.repos.Items.ListByCenters(ctx, centerIDs)
	return facade.Rows(s.log, "GetInventoryByCenters", rows, err)
}

// GetInventoryItemByID obtiene un artículo; ErrNotFound si no existe.
func (s *Service) GetInventoryItemByID(ctx context.Context, id int64) result.Result[*entity.InventoryItem] {
	row, err := s.repos.Items.GetByID(ctx, id)
	return facade.One(s.log, "GetInventoryItemByID", row, err)
}

// GetLowStockItems artículos en o por debajo del mínimo, o sin unidades.
func (s *Service) GetLowStockItems(ctx context.Context) result.Result[[]entity.InventoryItem] {
	r := s.GetInventoryItems(ctx)
	if !r.IsOk() {
		return r
	}
	return result.Ok(LowStock(r.Value()))
}

// CreateInventoryItem inserta un artículo y devuelve la fila persistida.
func (s *Service) CreateInventoryItem(ctx context.Context, in dto.CreateInventoryItemRequest) result.Result[*entity.InventoryItem] {
	if err := validateInventoryInput(in.NombreItem, in.Quantity, in.MinStock, in.MaxStock); err != nil {
		return facade.Invalid[*entity.InventoryItem](s.log, "CreateInventoryItem", err)
	}
	item := &entity.InventoryItem{
		NombreItem:    strings.TrimSpace(in.NombreItem),
		Categoria:     in.Categoria,
		Talla:         in.Talla,
		Color:         in.Color,
		Quantity:      in.Quantity,
		MinStock:      in.MinStock,
		MaxStock:      in.MaxStock,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		CenterID:      in.CenterID,
		SupplierID:    in.SupplierID,
		Location:      in.Location,
	}
	row, err := s.repos.Items.Create(ctx, item)
	return facade.Touch(s.inv, cache.KeyInventoryItems, facade.One(s.log, "CreateInventoryItem", row, err))
}

// UpdateInventoryItem aplica solo los campos presentes en el patch.
func (s *Service) UpdateInventoryItem(ctx context.Context, id int64, patch entity.InventoryItemPatch) result.Result[*entity.InventoryItem] {
	if patch.IsEmpty() {
		return facade.Invalid[*entity.InventoryItem](s.log, "UpdateInventoryItem", fmt.Errorf("%w: nada que actualizar", domain.ErrInvalidInput))
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return facade.Invalid[*entity.InventoryItem](s.log, "UpdateInventoryItem", fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput))
	}
	if negative(patch.MinStock) || negative(patch.MaxStock) {
		return facade.Invalid[*entity.InventoryItem](s.log, "UpdateInventoryItem", fmt.Errorf("%w: los umbrales de stock no pueden ser negativos", domain.ErrInvalidInput))
	}
	if patch.NombreItem != nil && strings.TrimSpace(*patch.NombreItem) == "" {
		return facade.Invalid[*entity.InventoryItem](s.log, "UpdateInventoryItem", fmt.Errorf("%w: nombre_item es obligatorio", domain.ErrInvalidInput))
	}
	row, err := s.repos.Items.Update(ctx, id, patch)
	return facade.Touch(s.inv, cache.KeyInventoryItems, facade.One(s.log, "UpdateInventoryItem", row, err))
}

// DeleteInventoryItem borra un artículo.
func (s *Service) DeleteInventoryItem(ctx context.Context, id int64) result.Result[struct{}] {
	err := s.repos.Items.Delete(ctx, id)
	return facade.Touch(s.inv, cache.KeyInventoryItems, facade.Done(s.log, "DeleteInventoryItem", err))
}

func validateInventoryInput(name string, quantity, minStock, maxStock int) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: nombre_item es obligatorio", domain.ErrInvalidInput)
	case quantity < 0:
		return fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	case minStock < 0 || maxStock < 0:
		return fmt.Errorf("%w: los umbrales de stock no pueden ser negativos", domain.ErrInvalidInput)
	}
	return nil
}

func negative(n *int) bool { return n != nil && *n < 0 }
