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

// GetOrders devuelve los pedidos internos de todos los centros.
func (s *Service) GetOrders(ctx context.Context) result.Result[[]entity.Order] {
	rows, err := s.repos.Orders.List(ctx)
	return facade.Rows(s.log, "GetOrders", rows, err)
}

// GetOrdersByCenter devuelve los pedidos internos de un centro.
func (s *Service) GetOrdersByCenter(ctx context.Context, centerID int64) result.Result[[]entity.Order] {
	rows, err := s.repos.Orders.ListByCenter(ctx, centerID)
	return facade.Rows(s.log, "GetOrdersByCenter", rows, err)
}

// MarkOrderSent marca el pedido como enviado. Volver a marcarlo no genera efectos extra.
func (s *Service) MarkOrderSent(ctx context.Context, id string) result.Result[struct{}] {
	err := s.repos.Orders.MarkStatus(ctx, id, entity.OrderSent, s.now())
	return facade.Touch(s.inv, cache.KeyOrders, facade.Done(s.log, "MarkOrderSent", err))
}

// MarkOrderDelivered marca el pedido como entregado.
func (s *Service) MarkOrderDelivered(ctx context.Context, id string) result.Result[struct{}] {
	err := s.repos.Orders.MarkStatus(ctx, id, entity.OrderDelivered, s.now())
	return facade.Touch(s.inv, cache.KeyOrders, facade.Done(s.log, "MarkOrderDelivered", err))
}

// DeleteOrder borra un pedido interno.
func (s *Service) DeleteOrder(ctx context.Context, id string) result.Result[struct{}] {
	err := s.repos.Orders.Delete(ctx, id)
	return facade.Touch(s.inv, cache.KeyOrders, facade.Done(s.log, "DeleteOrder", err))
}

// GetUniformRequests devuelve las solicitudes de uniformes.
func (s *Service) GetUniformRequests(ctx context.Context) result.Result[[]entity.UniformRequest] {
	rows, err := s.repos.Uniforms.List(ctx)
	return facade.Rows(s.log, "GetUniformRequests", rows, err)
}

// CreateUniformRequest registra una solicitud pendiente.
func (s *Service) CreateUniformRequest(ctx context.Context, in dto.CreateUniformRequestRequest) result.Result[*entity.UniformRequest] {
	if strings.TrimSpace(in.EmployeeName) == "" || in.CenterID <= 0 {
		return facade.Invalid[*entity.UniformRequest](s.log, "CreateUniformRequest", fmt.Errorf("%w: employee_name y center_id son obligatorios", domain.ErrInvalidInput))
	}
	items := in.Items
	if len(items) == 0 {
		items = []byte("[]")
	}
	req := &entity.UniformRequest{
		EmployeeName: strings.TrimSpace(in.EmployeeName),
		CenterID:     in.CenterID,
		Items:        items,
		Status:       entity.UniformPending,
		Notes:        in.Notes,
	}
	row, err := s.repos.Uniforms.Create(ctx, req)
	return facade.Touch(s.inv, cache.KeyUniformRequests, facade.One(s.log, "CreateUniformRequest", row, err))
}

// UpdateUniformRequestStatus cambia el estado de una solicitud.
func (s *Service) UpdateUniformRequestStatus(ctx context.Context, id, status string) result.Result[struct{}] {
	if !entity.IsValidUniformStatus(status) {
		return facade.Invalid[struct{}](s.log, "UpdateUniformRequestStatus", fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status))
	}
	err := s.repos.Uniforms.UpdateStatus(ctx, id, status)
	return facade.Touch(s.inv, cache.KeyUniformRequests, facade.Done(s.log, "UpdateUniformRequestStatus", err))
}
