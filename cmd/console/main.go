package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/auth"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/billing"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/ordering"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/session"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/application/usecase"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/domain/repository"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/infrastructure/apiclient"
	infrapdf "github.com/Jumata96/InventarioInteligenteFrontend/internal/infrastructure/pdf"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/infrastructure/postgres"
	"github.com/Jumata96/InventarioInteligenteFrontend/internal/infrastructure/sqlite"
	httpRouter "github.com/Jumata96/InventarioInteligenteFrontend/internal/interfaces/http"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/config"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando consola")

	// run cierra el almacenamiento antes de volver; Fatal no ejecuta defers.
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("consola detenida con error")
	}
	log.Info().Msg("consola detenida")
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()
	storage, closeStorage, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("almacenamiento de sesión (%s): %w", cfg.Storage.Driver, err)
	}
	defer closeStorage()

	store, err := session.Open(ctx, storage, log.Named("session"))
	if err != nil {
		return fmt.Errorf("restaurar sesión: %w", err)
	}

	// Cliente de la API: el token sale de la sesión y un 401 la invalida.
	client := apiclient.New(apiclient.Config{
		BaseURL:            cfg.API.BaseURL,
		PageBase:           cfg.API.PageBase,
		InsecureSkipVerify: cfg.API.InsecureSkipVerify,
	}, store, log)
	client.OnUnauthorized(store.HandleUnauthorized)

	authRepo := apiclient.NewAuthRepository(client)
	productRepo := apiclient.NewProductRepository(client)
	clientRepo := apiclient.NewClientRepository(client)
	countryRepo := apiclient.NewCountryRepository(client)
	orderRepo := apiclient.NewOrderRepository(client)
	invoiceRepo := apiclient.NewInvoiceRepository(client)

	authUC := auth.NewAuthUseCase(authRepo, store, log)
	productUC := usecase.NewProductUseCase(productRepo, cfg.UI.PageSize, cfg.UI.SearchDebounce, log)
	clientUC := usecase.NewClientUseCase(clientRepo, countryRepo, cfg.UI.PageSize, cfg.UI.SearchDebounce, log)
	orderUC := usecase.NewOrderUseCase(orderRepo, cfg.UI.PageSize, cfg.UI.SearchDebounce, log)
	builder := ordering.NewBuilder(orderRepo, countryRepo, log)

	format := money.NewFormatter(money.DefaultLocale, cfg.UI.CurrencySymbol)

	// PDF: proforma del borrador antes de registrarlo
	proformaUC := billing.NewProformaUseCase(builder, infrapdf.NewProformaGenerator("Proforma", format))
	invoiceFlow := billing.NewInvoiceFlow(invoiceRepo, orderUC, log)

	renderer, err := httpRouter.NewRenderer(format)
	if err != nil {
		return fmt.Errorf("compilar vistas: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Renderer:  renderer,
		Session:   store,
		AuthUC:    authUC,
		ProductUC: productUC,
		ClientUC:  clientUC,
		Orders: httpRouter.OrderDeps{
			Orders:   orderUC,
			Products: productUC,
			Clients:  clientUC,
			Builder:  builder,
			Invoices: invoiceFlow,
			Proforma: proformaUC,
		},
		Log:     log,
		AppName: cfg.App.Name,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", "http://"+cfg.HTTP.Addr()).Msg("consola disponible")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("apagado del servidor: %w", err)
	}
	return nil
}

// openStorage abre el almacenamiento durable de la sesión según el driver.
func openStorage(ctx context.Context, cfg config.StorageConfig) (repository.Storage, func(), error) {
	switch cfg.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		repo, err := postgres.NewStorageRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	default:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewStorageRepository(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	}
}
