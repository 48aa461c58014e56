// Command jungla exporta informes del backoffice (inventario en Excel, pedidos en PDF)
// y lista los artículos a reponer.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/infrastructure/postgres"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/config"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

var (
	timeout  time.Duration
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "jungla",
	Short:         "Herramientas de línea de comandos del backoffice de La Jungla",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Tiempo máximo de la operación")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Nivel de log (trace, debug, info, warn, error)")

	exportCmd.AddCommand(exportInventoryCmd)
	exportCmd.AddCommand(exportSupplierOrderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(lowStockCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openLogistics conecta a PostgreSQL y construye el servicio logístico sin invalidación
// de caché (la CLI no comparte estado con la API).
func openLogistics(ctx context.Context) (*logistics.Service, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.NewWriter(os.Stderr, logLevel)

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	svc := logistics.NewService(logistics.Repositories{
		Items:          postgres.NewInventoryItemRepository(pool),
		Suppliers:      postgres.NewSupplierRepository(pool),
		SupplierOrders: postgres.NewSupplierOrderRepository(pool),
		Tx:             postgres.NewTxRunner(pool),
		Categories:     postgres.NewProductCategoryRepository(pool),
		Alerts:         postgres.NewStockAlertRepository(pool),
		Orders:         postgres.NewOrderRepository(pool),
		Uniforms:       postgres.NewUniformRequestRepository(pool),
	}, nil, log)
	return svc, pool, nil
}

// withLogistics ejecuta fn con el servicio y cierra el pool al terminar.
func withLogistics(cmd *cobra.Command, fn func(ctx context.Context, svc *logistics.Service) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()
	svc, pool, err := openLogistics(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(ctx, svc)
}
