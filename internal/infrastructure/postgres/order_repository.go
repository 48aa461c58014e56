package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
)

var (
	_ repository.OrderRepository          = (*OrderRepo)(nil)
	_ repository.UniformRequestRepository = (*UniformRequestRepo)(nil)
)

const orderCols = `id, center_id, COALESCE(requested_by, ''), status, COALESCE(items, '[]'::jsonb),
	COALESCE(total_amount, 0), COALESCE(notes, ''), sent_at, delivered_at, created_at, updated_at`

// OrderRepo implementación de OrderRepository sobre orders.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el repositorio.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

func (r *OrderRepo) list(ctx context.Context, op, query string, args ...any) ([]entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, backendErr(op, err)
	}
	defer rows.Close()
	var list []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CenterID, &o.RequestedBy, &o.Status, &o.Items,
			&o.TotalAmount, &o.Notes, &o.SentAt, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, backendErr("scan order", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr(op, err)
	}
	return list, nil
}

// List devuelve los pedidos internos, los más recientes primero.
func (r *OrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	return r.list(ctx, "list orders", `SELECT `+orderCols+` FROM orders ORDER BY created_at DESC`)
}

// ListByCenter devuelve los pedidos de un centro.
func (r *OrderRepo) ListByCenter(ctx context.Context, centerID int64) ([]entity.Order, error) {
	return r.list(ctx, "list orders by center",
		`SELECT `+orderCols+` FROM orders WHERE center_id = $1 ORDER BY created_at DESC`, centerID)
}

// MarkStatus fija el estado. sent_at / delivered_at solo se escriben la primera vez, así
// que repetir la marca deja la fila igual.
func (r *OrderRepo) MarkStatus(ctx context.Context, id, status string, at time.Time) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE orders SET
			status = $2::text,
			sent_at = CASE WHEN $2::text = 'sent' THEN COALESCE(sent_at, $3) ELSE sent_at END,
			delivered_at = CASE WHEN $2::text = 'delivered' THEN COALESCE(delivered_at, $3) ELSE delivered_at END,
			updated_at = now()
		WHERE id = $1`, id, status, at)
	if err != nil {
		return backendErr("mark order "+status, err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("order")
	}
	return nil
}

// Delete borra un pedido interno.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return backendErr("delete order", err)
	}
	return nil
}

const uniformRequestCols = `id, employee_name, center_id, COALESCE(items, '[]'::jsonb), status,
	COALESCE(notes, ''), created_at, updated_at`

// UniformRequestRepo implementación de UniformRequestRepository.
type UniformRequestRepo struct {
	q Querier
}

// NewUniformRequestRepository construye el repositorio.
func NewUniformRequestRepository(q Querier) *UniformRequestRepo {
	return &UniformRequestRepo{q: q}
}

func scanUniformRequest(row pgx.Row) (entity.UniformRequest, error) {
	var u entity.UniformRequest
	err := row.Scan(&u.ID, &u.EmployeeName, &u.CenterID, &u.Items, &u.Status, &u.Notes, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// List devuelve las solicitudes, las más recientes primero.
func (r *UniformRequestRepo) List(ctx context.Context) ([]entity.UniformRequest, error) {
	rows, err := r.q.Query(ctx, `SELECT `+uniformRequestCols+` FROM uniform_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, backendErr("list uniform_requests", err)
	}
	defer rows.Close()
	var list []entity.UniformRequest
	for rows.Next() {
		u, err := scanUniformRequest(rows)
		if err != nil {
			return nil, backendErr("scan uniform_request", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("list uniform_requests", err)
	}
	return list, nil
}

// Create inserta la solicitud con un id nuevo.
func (r *UniformRequestRepo) Create(ctx context.Context, in *entity.UniformRequest) (*entity.UniformRequest, error) {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	u, err := scanUniformRequest(r.q.QueryRow(ctx, `
		INSERT INTO uniform_requests (id, employee_name, center_id, items, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+uniformRequestCols,
		id, in.EmployeeName, in.CenterID, in.Items, in.Status, in.Notes))
	if err != nil {
		return nil, backendErr("insert uniform_request", err)
	}
	return &u, nil
}

// UpdateStatus cambia el estado de la solicitud.
func (r *UniformRequestRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE uniform_requests SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return backendErr("update uniform_request status", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound("uniform_request")
	}
	return nil
}
