package repository

import (
	"context"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// InventoryItemRepository define el puerto de persistencia para inventory_items.
// Las lecturas devuelven un slice nil cuando el backend no trae payload.
type InventoryItemRepository interface {
	// List devuelve todos los artículos ordenados por centro.
	List(ctx context.Context) ([]entity.InventoryItem, error)
	// ListByCenters filtra con IN sobre center_id, con la lista tal cual se recibe.
	ListByCenters(ctx context.Context, centerIDs []int64) ([]entity.InventoryItem, error)
	GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error)
	// Create inserta y devuelve la fila persistida.
	Create(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error)
	Update(ctx context.Context, id int64, patch entity.InventoryItemPatch) (*entity.InventoryItem, error)
	Delete(ctx context.Context, id int64) error
}
