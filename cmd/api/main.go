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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/ledger"
	"github.com/jhoicas/Bodega-api/internal/application/orders"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Bodega-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Bodega-api/internal/interfaces/http"
	"github.com/jhoicas/Bodega-api/pkg/config"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.App.Store).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	var txRunner repository.TxRunner
	switch cfg.App.Store {
	case config.StoreMemory:
		store := memory.NewStore()
		seedDemo(store)
		txRunner = store
		log.Warn().Msg("APP_STORE=memory: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		txRunner = postgres.NewTxRunner(pool)
	}

	zl := log.Zerolog()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(zl))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:    orders.NewOrderUseCase(txRunner),
		SaleUC:     inventory.NewSaleUseCase(txRunner, cfg.Sales.StrictSubtotal),
		StockUC:    inventory.NewStockUseCase(txRunner, zl, cfg.Inventory.PharmacyTables),
		LowStockUC: inventory.NewLowStockUseCase(txRunner, cfg.Inventory.LowStockThreshold, pdfGenerator),
		LedgerUC:   ledger.NewLedgerUseCase(txRunner),
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// seedDemo datos mínimos para probar la API sin base de datos.
func seedDemo(store *memory.Store) {
	store.InitBalance(entity.Balance{Saldo: decimal.Zero, Ingresos: decimal.Zero, Egresos: decimal.Zero})
	store.PutItem(entity.Item{ID: 1, GenericName: "Paracetamol", MedicalName: "Acetaminofén 500mg", Presentation: "Caja x 10", UnitsPerBox: 10, Price: decimal.NewFromInt(2500), Stock: 120})
	store.PutItem(entity.Item{ID: 2, GenericName: "Ibuprofeno", MedicalName: "Ibuprofeno 400mg", Presentation: "Caja x 20", UnitsPerBox: 20, Price: decimal.NewFromInt(4800), Stock: 35})
	store.PutItem(entity.Item{ID: 3, GenericName: "Amoxicilina", MedicalName: "Amoxicilina 500mg", Presentation: "Frasco", UnitsPerBox: 1, Price: decimal.NewFromInt(9900), Stock: 8})
	store.PutOrder(entity.Order{ID: 1, Status: entity.OrderStatusPending, UpdatedAt: time.Now()})
	store.PutPharmacyStock("farmacia_centro", "Paracetamol", 10)
	store.PutPharmacyStock("farmacia_centro", "Ibuprofeno", 4)
}
