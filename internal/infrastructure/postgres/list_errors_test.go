package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
)

// brokenRows corta la iteración con un error del servidor.
type brokenRows struct {
	pgx.Rows
	err error
}

func (r *brokenRows) Next() bool { return false }
func (r *brokenRows) Err() error { return r.err }
func (r *brokenRows) Close()     {}

// brokenQuerier devuelve siempre filas que fallan al iterar.
type brokenQuerier struct {
	Querier
	err error
}

func (q *brokenQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return &brokenRows{err: q.err}, nil
}

func TestListados_ErrorDeIteracionConservaOpYCodigo(t *testing.T) {
	ctx := context.Background()
	pgErr := &pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout"}
	q := &brokenQuerier{err: pgErr}

	cases := map[string]func() error{
		"list lead_interactions": func() error {
			_, err := NewLeadInteractionRepository(q).ListByLead(ctx, "L1")
			return err
		},
		"list uniform_requests": func() error {
			_, err := NewUniformRequestRepository(q).List(ctx)
			return err
		},
		"list product_categories": func() error {
			_, err := NewProductCategoryRepository(q).List(ctx)
			return err
		},
		"list stock_alerts": func() error {
			_, err := NewStockAlertRepository(q).List(ctx, true)
			return err
		},
	}
	for op, run := range cases {
		t.Run(op, func(t *testing.T) {
			err := run()

			var be *domain.BackendError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, op, be.Op)
			assert.Equal(t, "57014", be.Code)
			assert.Equal(t, pgErr.Message, domain.Reason(err))
		})
	}
}
