package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const inventoryItemCols = `id, nombre_item, COALESCE(categoria, ''), COALESCE(talla, ''), COALESCE(color, ''),
	quantity, COALESCE(min_stock, 0), COALESCE(max_stock, 0), COALESCE(purchase_price, 0), COALESCE(sale_price, 0),
	center_id, supplier_id, COALESCE(location, ''), created_at, updated_at`

// InventoryItemRepo implementación de InventoryItemRepository sobre inventory_items.
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el repositorio. Pasar pool o tx.
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

func scanInventoryItem(row pgx.Row) (entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(&it.ID, &it.NombreItem, &it.Categoria, &it.Talla, &it.Color,
		&it.Quantity, &it.MinStock, &it.MaxStock, &it.PurchasePrice, &it.SalePrice,
		&it.CenterID, &it.SupplierID, &it.Location, &it.CreatedAt, &it.UpdatedAt)
	return it, err
}

func (r *InventoryItemRepo) list(ctx context.Context, op, query string, args ...any) ([]entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, backendErr(op, err)
	}
	defer rows.Close()
	var list []entity.InventoryItem
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, backendErr("scan inventory_item", err)
		}
		list = append(list, it)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr(op, err)
	}
	return list, nil
}

// List devuelve todo el inventario ordenado por centro y nombre.
func (r *InventoryItemRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	return r.list(ctx, "list inventory_items",
		`SELECT `+inventoryItemCols+` FROM inventory_items ORDER BY center_id, nombre_item`)
}

// ListByCenters filtra con center_id = ANY($1); la lista viaja tal cual como array.
func (r *InventoryItemRepo) ListByCenters(ctx context.Context, centerIDs []int64) ([]entity.InventoryItem, error) {
	return r.list(ctx, "list inventory_items by centers",
		`SELECT `+inventoryItemCols+` FROM inventory_items WHERE center_id = ANY($1) ORDER BY center_id, nombre_item`,
		centerIDs)
}

// GetByID obtiene un artículo; (nil, nil) si no existe.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	it, err := scanInventoryItem(r.q.QueryRow(ctx,
		`SELECT `+inventoryItemCols+` FROM inventory_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, backendErr("get inventory_item", err)
	}
	return &it, nil
}

// Create inserta y devuelve la fila con id y timestamps del backend.
func (r *InventoryItemRepo) Create(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	query := `
		INSERT INTO inventory_items (nombre_item, categoria, talla, color, quantity, min_stock, max_stock,
			purchase_price, sale_price, center_id, supplier_id, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + inventoryItemCols
	it, err := scanInventoryItem(r.q.QueryRow(ctx, query,
		item.NombreItem, item.Categoria, item.Talla, item.Color, item.Quantity, item.MinStock, item.MaxStock,
		item.PurchasePrice, item.SalePrice, item.CenterID, item.SupplierID, item.Location,
	))
	if err != nil {
		return nil, backendErr("insert inventory_item", err)
	}
	return &it, nil
}

// Update escribe solo los campos presentes.
func (r *InventoryItemRepo) Update(ctx context.Context, id int64, p entity.InventoryItemPatch) (*entity.InventoryItem, error) {
	var s setClause
	setIf(&s, "nombre_item", p.NombreItem)
	setIf(&s, "categoria", p.Categoria)
	setIf(&s, "talla", p.Talla)
	setIf(&s, "color", p.Color)
	setIf(&s, "quantity", p.Quantity)
	setIf(&s, "min_stock", p.MinStock)
	setIf(&s, "max_stock", p.MaxStock)
	setIf(&s, "purchase_price", p.PurchasePrice)
	setIf(&s, "sale_price", p.SalePrice)
	setIf(&s, "center_id", p.CenterID)
	setIf(&s, "supplier_id", p.SupplierID)
	setIf(&s, "location", p.Location)
	if s.empty() {
		return r.GetByID(ctx, id)
	}
	query, args := s.update("inventory_items", id, true, inventoryItemCols)
	it, err := scanInventoryItem(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound("inventory_item")
		}
		return nil, backendErr("update inventory_item", err)
	}
	return &it, nil
}

// Delete borra el artículo. Borrar un id inexistente no es error.
func (r *InventoryItemRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id); err != nil {
		return backendErr("delete inventory_item", err)
	}
	return nil
}
