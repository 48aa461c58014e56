package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx: los repositorios funcionan igual
// dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// backendErr conserva el mensaje de PostgreSQL tal cual (lo que ve el usuario) y el
// SQLSTATE para poder preguntar con errors.Is por duplicados o claves foráneas.
func backendErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &domain.BackendError{Op: op, Code: pgErr.Code, Message: pgErr.Message, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// errNotFound marca una mutación que no encontró la fila.
func errNotFound(what string) error {
	return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
}

// setClause construye el SET de un UPDATE con solo los campos informados.
type setClause struct {
	cols []string
	args []any
}

func (s *setClause) add(col string, v any) {
	s.args = append(s.args, v)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(s.args)))
}

// setIf añade la columna si el puntero no es nil.
func setIf[T any](s *setClause, col string, v *T) {
	if v != nil {
		s.add(col, *v)
	}
}

func (s *setClause) empty() bool { return len(s.cols) == 0 }

// update devuelve "UPDATE table SET ... WHERE id = $n RETURNING returning". touch añade
// updated_at = now().
func (s *setClause) update(table string, id any, touch bool, returning string) (string, []any) {
	cols := s.cols
	if touch {
		cols = append(cols[:len(cols):len(cols)], "updated_at = now()")
	}
	args := append(s.args[:len(s.args):len(s.args)], id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(cols, ", "), len(args), returning)
	return q, args
}
