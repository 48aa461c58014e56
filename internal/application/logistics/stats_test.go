package logistics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

func TestOrderStats(t *testing.T) {
	orders := []entity.SupplierOrder{
		{Status: entity.SupplierOrderDraft, PaymentStatus: entity.PaymentPending, TotalAmount: decimal.NewFromInt(100)},
		{Status: entity.SupplierOrderShipped, PaymentStatus: entity.PaymentPartial, TotalAmount: decimal.NewFromInt(50)},
		{Status: entity.SupplierOrderDelivered, PaymentStatus: entity.PaymentPaid, TotalAmount: decimal.NewFromInt(25)},
		{Status: entity.SupplierOrderCancelled, PaymentStatus: entity.PaymentPending, TotalAmount: decimal.NewFromInt(999)},
	}

	stats := logistics.OrderStats(orders)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[entity.SupplierOrderCancelled])
	assert.Equal(t, 2, stats.PendingPayment)
	assert.Equal(t, 1, stats.InTransit)
	assert.True(t, decimal.NewFromInt(175).Equal(stats.TotalAmount))
	assert.True(t, decimal.NewFromInt(150).Equal(stats.UnpaidAmount))
}

func TestOrderStats_SinPedidos(t *testing.T) {
	stats := logistics.OrderStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.NotNil(t, stats.ByStatus)
	assert.True(t, stats.TotalAmount.IsZero())
}

func TestInventorySummary(t *testing.T) {
	items := []entity.InventoryItem{
		{CenterID: 1, Quantity: 0, MinStock: 2, PurchasePrice: decimal.NewFromInt(5)},
		{CenterID: 2, Quantity: 2, MinStock: 2, PurchasePrice: decimal.NewFromInt(5)},
		{CenterID: 1, Quantity: 10, MinStock: 2, PurchasePrice: decimal.RequireFromString("1.5")},
	}

	sum := logistics.InventorySummary(items)

	assert.Equal(t, 3, sum.TotalItems)
	assert.Equal(t, 12, sum.TotalUnits)
	assert.Equal(t, 1, sum.OutOfStock)
	assert.Equal(t, 1, sum.LowStock)
	assert.Equal(t, 1, sum.InStock)
	assert.True(t, decimal.NewFromInt(25).Equal(sum.StockValue))
	assert.Equal(t, []int64{1, 2}, sum.CentersSeen)
}
