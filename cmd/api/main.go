package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/cache"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/leads"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/logistics"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/meetings"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/projects"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/application/state"
	infrapdf "github.com/lajunglaworkout/jungla-iberica-sub006/internal/infrastructure/pdf"
	"github.com/lajunglaworkout/jungla-iberica-sub006/internal/infrastructure/postgres"
	infraredis "github.com/lajunglaworkout/jungla-iberica-sub006/internal/infrastructure/redis"
	httpRouter "github.com/lajunglaworkout/jungla-iberica-sub006/internal/interfaces/http"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/config"
	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Versiones por entidad: cada escritura exitosa invalida su clave
	hub := cache.NewHub(32)
	defer hub.Close()

	logisticsSvc := logistics.NewService(logistics.Repositories{
		Items:          postgres.NewInventoryItemRepository(pool),
		Suppliers:      postgres.NewSupplierRepository(pool),
		SupplierOrders: postgres.NewSupplierOrderRepository(pool),
		Tx:             postgres.NewTxRunner(pool),
		Categories:     postgres.NewProductCategoryRepository(pool),
		Alerts:         postgres.NewStockAlertRepository(pool),
		Orders:         postgres.NewOrderRepository(pool),
		Uniforms:       postgres.NewUniformRequestRepository(pool),
	}, hub, log)
	leadSvc := leads.NewService(postgres.NewLeadRepository(pool), postgres.NewLeadInteractionRepository(pool), hub, log)
	projectSvc := projects.NewService(postgres.NewProjectRepository(pool), hub, log)

	// Buzón de traspaso: Redis si está configurado y responde, si no en memoria
	var mailbox meetings.Mailbox
	if cfg.Redis.Enabled() {
		rdb := infraredis.NewClient(cfg.Redis)
		defer rdb.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, buzón en memoria")
		} else {
			mailbox = infraredis.NewHandoffMailbox(rdb, cfg.Redis.HandoffKey)
		}
		cancel()
	}
	meetingSvc := meetings.NewService(postgres.NewMeetingRepository(pool), mailbox, hub, log)

	registry := state.NewRegistry(hub, log)
	logisticsState := state.NewLogisticsState(registry, logisticsSvc)
	defer logisticsState.Close()

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "La Jungla Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Logistics: logisticsSvc,
		Leads:     leadSvc,
		Projects:  projectSvc,
		Meetings:  meetingSvc,
		State:     logisticsState,
		Hub:       hub,
		PDF:       infrapdf.NewSupplierOrderPDF(""),
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// cerrar el hub corta los streams SSE abiertos
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
