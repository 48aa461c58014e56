// Package logistics contiene las funciones de servicio de inventario, proveedores,
// pedidos a proveedor, pedidos de centro y uniformes. Cada operación hace una única
// llamada al backend y nunca propaga el fallo como pánico: devuelve result.Result.
package logistics

import (
	"time"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/domain/repository"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

// Repositories agrupa los puertos que usa el servicio.
type Repositories struct {
	Items          repository.InventoryItemRepository
	Suppliers      repository.SupplierRepository
	SupplierOrders repository.SupplierOrderRepository
	Tx             repository.SupplierOrderTxRunner
	Categories     repository.ProductCategoryRepository
	Alerts         repository.StockAlertRepository
	Orders         repository.OrderRepository
	Uniforms       repository.UniformRequestRepository
}

// Service funciones de servicio del dominio logístico.
type Service struct {
	repos Repositories
	inv   cache.Invalidator
	log   *logger.Logger
	now   func() time.Time
}

// NewService construye el servicio. inv puede ser nil (sin invalidación de caché).
func NewService(repos Repositories, inv cache.Invalidator, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repos: repos, inv: inv, log: log.Named("logistics"), now: time.Now}
}
