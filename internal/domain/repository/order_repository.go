package repository

import (
	"context"
	"time"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para orders (pedidos internos).
type OrderRepository interface {
	List(ctx context.Context) ([]entity.Order, error)
	ListByCenter(ctx context.Context, centerID int64) ([]entity.Order, error)
	// MarkStatus fija el estado y la marca de tiempo asociada (sent_at / delivered_at).
	MarkStatus(ctx context.Context, id, status string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

// UniformRequestRepository define el puerto de persistencia para uniform_requests.
type UniformRequestRepository interface {
	List(ctx context.Context) ([]entity.UniformRequest, error)
	Create(ctx context.Context, req *entity.UniformRequest) (*entity.UniformRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
