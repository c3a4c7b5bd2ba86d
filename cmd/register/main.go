package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fekuna/omnipos-register-service/config"
	"github.com/fekuna/omnipos-register-service/internal/logger"
	"github.com/fekuna/omnipos-register-service/internal/store/snapshot"

	checkoutRepoPkg "github.com/fekuna/omnipos-register-service/internal/checkout/repository"
	checkoutUCPkg "github.com/fekuna/omnipos-register-service/internal/checkout/usecase"

	custDTO "github.com/fekuna/omnipos-register-service/internal/customer/dto"
	custRepoPkg "github.com/fekuna/omnipos-register-service/internal/customer/repository"
	custUCPkg "github.com/fekuna/omnipos-register-service/internal/customer/usecase"

	prodDTO "github.com/fekuna/omnipos-register-service/internal/product/dto"
	prodRepoPkg "github.com/fekuna/omnipos-register-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-register-service/internal/product/usecase"

	svcRepoPkg "github.com/fekuna/omnipos-register-service/internal/service/repository"
	svcUCPkg "github.com/fekuna/omnipos-register-service/internal/service/usecase"

	"github.com/fekuna/omnipos-register-service/internal/model"
	ticketDTO "github.com/fekuna/omnipos-register-service/internal/ticket/dto"
	ticketRepoPkg "github.com/fekuna/omnipos-register-service/internal/ticket/repository"
	ticketUCPkg "github.com/fekuna/omnipos-register-service/internal/ticket/usecase"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger, err := logger.NewZapLogger(&cfg.Logger, cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Open the document store. A failed load is reported, then the
	// register starts over an empty document rather than refusing to open.
	st, err := snapshot.Open(&snapshot.Config{
		SnapshotPath: cfg.Store.SnapshotPath,
		SeedPath:     cfg.Store.SeedPath,
	}, appLogger)
	if err != nil {
		appLogger.Warn("could not load snapshot, starting with empty document", zap.Error(err))
		st = snapshot.NewEmpty(&snapshot.Config{SnapshotPath: cfg.Store.SnapshotPath}, appLogger)
	}

	// 4. Initialize Repositories
	prodRepo := prodRepoPkg.NewSnapshotRepository(st)
	custRepo := custRepoPkg.NewSnapshotRepository(st)
	svcRepo := svcRepoPkg.NewSnapshotRepository(st)
	ticketRepo := ticketRepoPkg.NewSnapshotRepository(st)
	checkoutRepo := checkoutRepoPkg.NewSnapshotRepository(st)

	// 5. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	custUC := custUCPkg.NewCustomerUseCase(custRepo, appLogger)
	svcUC := svcUCPkg.NewServiceUseCase(svcRepo, appLogger)
	checkoutUC := checkoutUCPkg.NewCheckoutUseCase(checkoutRepo, appLogger)
	ticketUC := ticketUCPkg.NewTicketUseCase(ticketRepo, checkoutUC, appLogger)

	// 6. Startup summary
	ctx := context.Background()
	products, _ := prodUC.ListProducts(ctx, &prodDTO.ProductFilters{})
	customers, _ := custUC.ListCustomers(ctx, &custDTO.CustomerFilters{})
	services, _ := svcUC.ListServices(ctx)
	pending, _ := ticketUC.ListTickets(ctx, &ticketDTO.TicketFilters{Status: model.TicketStatusPending})

	appLogger.Info("register ready",
		zap.String("snapshot", cfg.Store.SnapshotPath),
		zap.String("tax_rate", cfg.POS.TaxRate.String()),
		zap.Int("products", len(products)),
		zap.Int("customers", len(customers)),
		zap.Int("services", len(services)),
		zap.Int("pending_tickets", len(pending)),
	)

	// 7. Scheduled snapshot backups
	scheduler := cron.New()
	if cfg.Store.BackupCron != "" {
		if _, err := scheduler.AddFunc(cfg.Store.BackupCron, func() {
			if _, err := st.Backup(); err != nil {
				appLogger.Error("snapshot backup failed", zap.Error(err))
			}
		}); err != nil {
			appLogger.Fatal("invalid backup schedule", zap.String("cron", cfg.Store.BackupCron), zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
		appLogger.Info("backup schedule started", zap.String("cron", cfg.Store.BackupCron))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down register...")
	if err := st.Flush(); err != nil {
		appLogger.Error("final snapshot flush failed", zap.Error(err))
	}
	appLogger.Info("Register stopped")
}
