package logistics

import (
	"github.com/shopspring/decimal"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/dto"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/entity"
)

// OrderStats agrega los pedidos a proveedor. Función pura: se recalcula en cada llamada.
func OrderStats(orders []entity.SupplierOrder) dto.OrderStatsDTO {
	stats := dto.OrderStatsDTO{
		ByStatus:     make(map[string]int),
		TotalAmount:  decimal.Zero,
		UnpaidAmount: decimal.Zero,
	}
	for _, o := range orders {
		stats.Total++
		stats.ByStatus[o.Status]++
		if o.Status == entity.SupplierOrderCancelled {
			continue
		}
		stats.TotalAmount = stats.TotalAmount.Add(o.TotalAmount)
		if o.PaymentStatus != entity.PaymentPaid {
			stats.PendingPayment++
			stats.UnpaidAmount = stats.UnpaidAmount.Add(o.TotalAmount)
		}
		if o.Status == entity.SupplierOrderSent || o.Status == entity.SupplierOrderShipped {
			stats.InTransit++
		}
	}
	return stats
}

// InventorySummary agrega el inventario por estado de stock.
func InventorySummary(items []entity.InventoryItem) dto.InventorySummaryDTO {
	sum := dto.InventorySummaryDTO{StockValue: decimal.Zero, CentersSeen: []int64{}}
	seen := make(map[int64]bool)
	for _, it := range items {
		sum.TotalItems++
		sum.TotalUnits += it.Quantity
		sum.StockValue = sum.StockValue.Add(it.StockValue())
		switch it.StockStatus() {
		case entity.StockStatusOutOfStock:
			sum.OutOfStock++
		case entity.StockStatusLowStock:
			sum.LowStock++
		default:
			sum.InStock++
		}
		if !seen[it.CenterID] {
			seen[it.CenterID] = true
			sum.CentersSeen = append(sum.CentersSeen, it.CenterID)
		}
	}
	return sum
}

// LowStock filtra los artículos que necesitan reposición, conservando el orden.
func LowStock(items []entity.InventoryItem) []entity.InventoryItem {
	out := []entity.InventoryItem{}
	for _, it := range items {
		if it.StockStatus() != entity.StockStatusInStock {
			out = append(out, it)
		}
	}
	return out
}
