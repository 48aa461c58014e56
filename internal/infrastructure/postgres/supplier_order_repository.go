package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
)

var _ repository.SupplierOrderRepository = (*SupplierOrderRepo)(nil)

const supplierOrderCols = `id, order_number, supplier_id, center_id, status, payment_status,
	COALESCE(total_amount, 0), order_date, expected_delivery, COALESCE(notes, ''), created_at, updated_at`

const supplierOrderItemCols = `id, order_id, inventory_item_id, item_name, quantity, unit_price`

// SupplierOrderRepo implementación de SupplierOrderRepository (cabeceras y líneas).
type SupplierOrderRepo struct {
	q Querier
}

// NewSupplierOrderRepository construye el repositorio. Pasar pool o tx.
func NewSupplierOrderRepository(q Querier) *SupplierOrderRepo {
	return &SupplierOrderRepo{q: q}
}

func scanSupplierOrder(row pgx.Row) (entity.SupplierOrder, error) {
	var o entity.SupplierOrder
	err := row.Scan(&o.ID, &o.OrderNumber, &o.SupplierID, &o.CenterID, &o.Status, &o.PaymentStatus,
		&o.TotalAmount, &o.OrderDate, &o.ExpectedDelivery, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func scanSupplierOrderItem(row pgx.Row) (entity.SupplierOrderItem, error) {
	var it entity.SupplierOrderItem
	err := row.Scan(&it.ID, &it.OrderID, &it.InventoryItemID, &it.ItemName, &it.Quantity, &it.UnitPrice)
	return it, err
}

// List devuelve las cabeceras, las más recientes primero.
func (r *SupplierOrderRepo) List(ctx context.Context) ([]entity.SupplierOrder, error) {
	rows, err := r.q.Query(ctx, `SELECT `+supplierOrderCols+` FROM supplier_orders ORDER BY order_date DESC, id DESC`)
	if err != nil {
		return nil, backendErr("list supplier_orders", err)
	}
	defer rows.Close()
	var list []entity.SupplierOrder
	for rows.Next() {
		o, err := scanSupplierOrder(rows)
		if err != nil {
			return nil, backendErr("scan supplier_order", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("list supplier_orders", err)
	}
	return list, nil
}

// GetByID obtiene el pedido con sus líneas; (nil, nil) si no existe.
func (r *SupplierOrderRepo) GetByID(ctx context.Context, id int64) (*entity.SupplierOrder, error) {
	o, err := scanSupplierOrder(r.q.QueryRow(ctx, `SELECT `+supplierOrderCols+` FROM supplier_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, backendErr("get supplier_order", err)
	}
	items, err := r.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// Create inserta la cabecera (sin líneas).
func (r *SupplierOrderRepo) Create(ctx context.Context, in *entity.SupplierOrder) (*entity.SupplierOrder, error) {
	query := `
		INSERT INTO supplier_orders (order_number, supplier_id, center_id, status, payment_status,
			total_amount, order_date, expected_delivery, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + supplierOrderCols
	o, err := scanSupplierOrder(r.q.QueryRow(ctx, query,
		in.OrderNumber, in.SupplierID, in.CenterID, in.Status, in.PaymentStatus,
		in.TotalAmount, in.OrderDate, in.ExpectedDelivery, in.Notes))
	if err != nil {
		return nil, backendErr("insert supplier_order", err)
	}
	return &o, nil
}

// Update escribe los campos presentes de la cabecera.
func (r *SupplierOrderRepo) Update(ctx context.Context, id int64, p entity.SupplierOrderPatch) (*entity.SupplierOrder, error) {
	var s setClause
	setIf(&s, "supplier_id", p.SupplierID)
	setIf(&s, "center_id", p.CenterID)
	setIf(&s, "status", p.Status)
	setIf(&s, "payment_status", p.PaymentStatus)
	setIf(&s, "total_amount", p.TotalAmount)
	setIf(&s, "expected_delivery", p.ExpectedDelivery)
	setIf(&s, "notes", p.Notes)
	if s.empty() {
		return r.GetByID(ctx, id)
	}
	query, args := s.update("supplier_orders", id, true, supplierOrderCols)
	o, err := scanSupplierOrder(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound("supplier_order")
		}
		return nil, backendErr("update supplier_order", err)
	}
	return &o, nil
}

// Delete borra el pedido.
func (r *SupplierOrderRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM supplier_orders WHERE id = $1`, id); err != nil {
		return backendErr("delete supplier_order", err)
	}
	return nil
}

// ListItems devuelve las líneas del pedido en orden de alta.
func (r *SupplierOrderRepo) ListItems(ctx context.Context, orderID int64) ([]entity.SupplierOrderItem, error) {
	rows, err := r.q.Query(ctx, `SELECT `+supplierOrderItemCols+` FROM supplier_order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, backendErr("list supplier_order_items", err)
	}
	defer rows.Close()
	var list []entity.SupplierOrderItem
	for rows.Next() {
		it, err := scanSupplierOrderItem(rows)
		if err != nil {
			return nil, backendErr("scan supplier_order_item", err)
		}
		list = append(list, it)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("list supplier_order_items", err)
	}
	return list, nil
}

// CreateItems inserta las líneas en un solo batch y devuelve las filas persistidas.
func (r *SupplierOrderRepo) CreateItems(ctx context.Context, orderID int64, items []entity.SupplierOrderItem) ([]entity.SupplierOrderItem, error) {
	if len(items) == 0 {
		return []entity.SupplierOrderItem{}, nil
	}
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
			INSERT INTO supplier_order_items (order_id, inventory_item_id, item_name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+supplierOrderItemCols,
			orderID, it.InventoryItemID, it.ItemName, it.Quantity, it.UnitPrice)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()

	out := make([]entity.SupplierOrderItem, 0, len(items))
	for range items {
		it, err := scanSupplierOrderItem(br.QueryRow())
		if err != nil {
			return nil, backendErr("insert supplier_order_item", err)
		}
		out = append(out, it)
	}
	return out, nil
}
