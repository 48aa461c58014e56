package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
)

var (
	_ repository.SupplierRepository        = (*SupplierRepo)(nil)
	_ repository.ProductCategoryRepository = (*ProductCategoryRepo)(nil)
	_ repository.StockAlertRepository      = (*StockAlertRepo)(nil)
)

const supplierCols = `id, name, COALESCE(contact_person, ''), COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(address, ''), COALESCE(tax_id, ''), COALESCE(categories, '{}'), COALESCE(rating, 0), active,
	created_at, updated_at`

// SupplierRepo implementación de SupplierRepository sobre suppliers.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el repositorio.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func scanSupplier(row pgx.Row) (entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone,
		&s.Address, &s.TaxID, &s.Categories, &s.Rating, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// List devuelve los proveedores por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT `+supplierCols+` FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, backendErr("list suppliers", err)
	}
	defer rows.Close()
	var list []entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, backendErr("scan supplier", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("list suppliers", err)
	}
	return list, nil
}

// GetByID obtiene un proveedor; (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierCols+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, backendErr("get supplier", err)
	}
	return &s, nil
}

// Create inserta el proveedor.
func (r *SupplierRepo) Create(ctx context.Context, in *entity.Supplier) (*entity.Supplier, error) {
	query := `
		INSERT INTO suppliers (name, contact_person, email, phone, address, tax_id, categories, rating, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + supplierCols
	s, err := scanSupplier(r.q.QueryRow(ctx, query,
		in.Name, in.ContactPerson, in.Email, in.Phone, in.Address, in.TaxID, in.Categories, in.Rating, in.Active))
	if err != nil {
		return nil, backendErr("insert supplier", err)
	}
	return &s, nil
}

// Update escribe los campos presentes.
func (r *SupplierRepo) Update(ctx context.Context, id int64, p entity.SupplierPatch) (*entity.Supplier, error) {
	var s setClause
	setIf(&s, "name", p.Name)
	setIf(&s, "contact_person", p.ContactPerson)
	setIf(&s, "email", p.Email)
	setIf(&s, "phone", p.Phone)
	setIf(&s, "address", p.Address)
	setIf(&s, "tax_id", p.TaxID)
	if p.Categories != nil {
		s.add("categories", p.Categories)
	}
	setIf(&s, "rating", p.Rating)
	setIf(&s, "active", p.Active)
	if s.empty() {
		return r.GetByID(ctx, id)
	}
	query, args := s.update("suppliers", id, true, supplierCols)
	sup, err := scanSupplier(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound("supplier")
		}
		return nil, backendErr("update supplier", err)
	}
	return &sup, nil
}

// Delete borra físicamente el proveedor.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id); err != nil {
		return backendErr("delete supplier", err)
	}
	return nil
}

// ProductCategoryRepo implementación de ProductCategoryRepository.
type ProductCategoryRepo struct {
	q Querier
}

// NewProductCategoryRepository construye el repositorio.
func NewProductCategoryRepository(q Querier) *ProductCategoryRepo {
	return &ProductCategoryRepo{q: q}
}

// List devuelve las categorías por nombre.
func (r *ProductCategoryRepo) List(ctx context.Context) ([]entity.ProductCategory, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, COALESCE(description, '') FROM product_categories ORDER BY name`)
	if err != nil {
		return nil, backendErr("list product_categories", err)
	}
	defer rows.Close()
	var list []entity.ProductCategory
	for rows.Next() {
		var c entity.ProductCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, backendErr("scan product_category", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("list product_categories", err)
	}
	return list, nil
}

// Create inserta una categoría.
func (r *ProductCategoryRepo) Create(ctx context.Context, in *entity.ProductCategory) (*entity.ProductCategory, error) {
	var c entity.ProductCategory
	err := r.q.QueryRow(ctx,
		`INSERT INTO product_categories (name, description) VALUES ($1, $2)
		 RETURNING id, name, COALESCE(description, '')`,
		in.Name, in.Description,
	).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return nil, backendErr("insert product_category", err)
	}
	return &c, nil
}

// StockAlertRepo implementación de StockAlertRepository.
type StockAlertRepo struct {
	q Querier
}

// NewStockAlertRepository construye el repositorio.
func NewStockAlertRepository(q Querier) *StockAlertRepo {
	return &StockAlertRepo{q: q}
}

// List devuelve las alertas más recientes primero.
func (r *StockAlertRepo) List(ctx context.Context, unresolvedOnly bool) ([]entity.StockAlert, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, inventory_item_id, center_id, alert_type, COALESCE(message, ''), resolved, created_at, resolved_at
		FROM stock_alerts
		WHERE NOT $1 OR NOT resolved
		ORDER BY created_at DESC`, unresolvedOnly)
	if err != nil {
		return nil, backendErr("list stock_alerts", err)
	}
	defer rows.Close()
	var list []entity.StockAlert
	for rows.Next() {
		var a entity.StockAlert
		if err := rows.Scan(&a.ID, &a.InventoryItemID, &a.CenterID, &a.AlertType, &a.Message,
			&a.Resolved, &a.CreatedAt, &a.ResolvedAt); err != nil {
			return nil, backendErr("scan stock_alert", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, backendErr("list stock_alerts", err)
	}
	return list, nil
}

// Resolve marca la alerta como resuelta conservando la primera fecha de resolución.
func (r *StockAlertRepo) Resolve(ctx context.Context, id int64) error {
	var got int64
	err := r.q.QueryRow(ctx,
		`UPDATE stock_alerts SET resolved = true, resolved_at = COALESCE(resolved_at, now()) WHERE id = $1 RETURNING id`,
		id).Scan(&got)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errNotFound("stock_alert")
		}
		return backendErr("resolve stock_alert", err)
	}
	return nil
}
