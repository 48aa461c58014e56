package logistics

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/facade"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/result"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
)

// GetSupplierOrders devuelve los pedidos a proveedor (sin líneas).
func (s *Service) GetSupplierOrders(ctx context.Context) result.Result[[]entity.SupplierOrder] {
	rows, err := s.repos.SupplierOrders.List(ctx)
	return facade.Rows(s.log, "GetSupplierOrders", rows, err)
}

// GetSupplierOrderByID obtiene un pedido con sus líneas.
func (s *Service) GetSupplierOrderByID(ctx context.Context, id int64) result.Result[*entity.SupplierOrder] {
	row, err := s.repos.SupplierOrders.GetByID(ctx, id)
	return facade.One(s.log, "GetSupplierOrderByID", row, err)
}

// GetSupplierOrderItems devuelve las líneas de un pedido.
func (s *Service) GetSupplierOrderItems(ctx context.Context, orderID int64) result.Result[[]entity.SupplierOrderItem] {
	rows, err := s.repos.SupplierOrders.ListItems(ctx, orderID)
	return facade.Rows(s.log, "GetSupplierOrderItems", rows, err)
}

// CreateSupplierOrder crea la cabecera y sus líneas en una transacción. El pedido nace en
// borrador con pago pendiente. Si no se informa total y hay líneas, el total es la suma
// de subtotales.
func (s *Service) CreateSupplierOrder(ctx context.Context, in dto.CreateSupplierOrderRequest) result.Result[*entity.SupplierOrder] {
	if err := validateSupplierOrder(in); err != nil {
		return facade.Invalid[*entity.SupplierOrder](s.log, "CreateSupplierOrder", err)
	}

	now := s.now()
	order := &entity.SupplierOrder{
		OrderNumber:      strings.TrimSpace(in.OrderNumber),
		SupplierID:       in.SupplierID,
		CenterID:         in.CenterID,
		Status:           entity.SupplierOrderDraft,
		PaymentStatus:    entity.PaymentPending,
		TotalAmount:      in.TotalAmount,
		OrderDate:        now,
		ExpectedDelivery: in.ExpectedDelivery,
		Notes:            in.Notes,
	}
	if order.OrderNumber == "" {
		order.OrderNumber = NewOrderNumber(now.Year())
	}
	for _, it := range in.Items {
		order.Items = append(order.Items, entity.SupplierOrderItem{
			InventoryItemID: it.InventoryItemID,
			ItemName:        strings.TrimSpace(it.ItemName),
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
		})
	}
	if order.TotalAmount.IsZero() && len(order.Items) > 0 {
		order.TotalAmount = order.ItemsTotal()
	}

	var created *entity.SupplierOrder
	err := s.repos.Tx.RunSupplierOrder(ctx, func(orders repository.SupplierOrderRepository) error {
		row, err := orders.Create(ctx, order)
		if err != nil {
			return err
		}
		if len(order.Items) > 0 {
			items, err := orders.CreateItems(ctx, row.ID, order.Items)
			if err != nil {
				return err
			}
			row.Items = items
		}
		created = row
		return nil
	})
	return facade.Touch(s.inv, cache.KeySupplierOrders, facade.One(s.log, "CreateSupplierOrder", created, err))
}

// UpdateSupplierOrder modifica la cabecera. El total se respeta tal cual llega.
func (s *Service) UpdateSupplierOrder(ctx context.Context, id int64, patch entity.SupplierOrderPatch) result.Result[*entity.SupplierOrder] {
	if patch.IsEmpty() {
		return facade.Invalid[*entity.SupplierOrder](s.log, "UpdateSupplierOrder", fmt.Errorf("%w: nada que actualizar", domain.ErrInvalidInput))
	}
	if patch.Status != nil && !entity.IsValidSupplierOrderStatus(*patch.Status) {
		return facade.Invalid[*entity.SupplierOrder](s.log, "UpdateSupplierOrder", fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, *patch.Status))
	}
	if patch.PaymentStatus != nil && !entity.IsValidPaymentStatus(*patch.PaymentStatus) {
		return facade.Invalid[*entity.SupplierOrder](s.log, "UpdateSupplierOrder", fmt.Errorf("%w: estado de pago %q", domain.ErrInvalidInput, *patch.PaymentStatus))
	}
	row, err := s.repos.SupplierOrders.Update(ctx, id, patch)
	return facade.Touch(s.inv, cache.KeySupplierOrders, facade.One(s.log, "UpdateSupplierOrder", row, err))
}

// MarkSupplierOrderStatus fija el estado del pedido. Repetirlo deja el mismo estado.
func (s *Service) MarkSupplierOrderStatus(ctx context.Context, id int64, status string) result.Result[struct{}] {
	if !entity.IsValidSupplierOrderStatus(status) {
		return facade.Invalid[struct{}](s.log, "MarkSupplierOrderStatus", fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status))
	}
	_, err := s.repos.SupplierOrders.Update(ctx, id, entity.SupplierOrderPatch{Status: &status})
	return facade.Touch(s.inv, cache.KeySupplierOrders, facade.Done(s.log, "MarkSupplierOrderStatus", err))
}

// MarkSupplierOrderPayment fija el estado de pago del pedido.
func (s *Service) MarkSupplierOrderPayment(ctx context.Context, id int64, paymentStatus string) result.Result[struct{}] {
	if !entity.IsValidPaymentStatus(paymentStatus) {
		return facade.Invalid[struct{}](s.log, "MarkSupplierOrderPayment", fmt.Errorf("%w: estado de pago %q", domain.ErrInvalidInput, paymentStatus))
	}
	_, err := s.repos.SupplierOrders.Update(ctx, id, entity.SupplierOrderPatch{PaymentStatus: &paymentStatus})
	return facade.Touch(s.inv, cache.KeySupplierOrders, facade.Done(s.log, "MarkSupplierOrderPayment", err))
}

// DeleteSupplierOrder borra el pedido (las líneas caen por cascada en el backend).
func (s *Service) DeleteSupplierOrder(ctx context.Context, id int64) result.Result[struct{}] {
	err := s.repos.SupplierOrders.Delete(ctx, id)
	return facade.Touch(s.inv, cache.KeySupplierOrders, facade.Done(s.log, "DeleteSupplierOrder", err))
}

// NewOrderNumber genera un número de pedido legible: PO-<año>-<8 hex>.
func NewOrderNumber(year int) string {
	return fmt.Sprintf("PO-%d-%s", year, strings.ToUpper(uuid.NewString()[:8]))
}

func validateSupplierOrder(in dto.CreateSupplierOrderRequest) error {
	if in.SupplierID <= 0 {
		return fmt.Errorf("%w: supplier_id es obligatorio", domain.ErrInvalidInput)
	}
	if in.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: el total no puede ser negativo", domain.ErrInvalidInput)
	}
	for i, it := range in.Items {
		if strings.TrimSpace(it.ItemName) == "" {
			return fmt.Errorf("%w: línea %d sin item_name", domain.ErrInvalidInput, i+1)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: línea %d con cantidad no positiva", domain.ErrInvalidInput, i+1)
		}
		if it.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: línea %d con precio negativo", domain.ErrInvalidInput, i+1)
		}
	}
	return nil
}
