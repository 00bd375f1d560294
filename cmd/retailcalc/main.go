package main

import (
	"context"
	"fmt"
	"go-retail/cmd/retailcalc/config"
	"go-retail/internal/retail"
	"go-retail/internal/retail/calculator"
	"go-retail/internal/retail/catalog"
	"go-retail/internal/retail/notice"
	"go-retail/internal/retail/service"
	"go-retail/pkg/logging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"log"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.NewZapLogger(level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	products, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatal(err)
	}

	toast := notice.NewToast(cfg.NoticeDuration)
	defer toast.Close()

	services := retail.Services{
		Calculators: service.NewCalculators(calculator.NewSet(products.Denominations), logger),
		Reorder:     service.NewReorder(products, toast, nil, logger),
		Notice:      toast,
	}
	server := retail.NewServer(cfg.Server, services, logger)

	rootCtx, cancelCtx := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancelCtx()

	logger.InfoCtx(rootCtx, "Starting server",
		zap.String("address", cfg.Server.ServerAddress),
		zap.Int("products", len(products.Products)),
	)
	if err := run(rootCtx, cfg, server, logger); err != nil {
		logger.ErrorCtx(rootCtx, "Server shutdown with error", zap.Error(err))
	} else {
		logger.InfoCtx(rootCtx, "Server shutdown gracefully")
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func run(rootCtx context.Context, cfg *config.Config, server *retail.Server, logger *logging.ZapLogger) error {
	g, ctx := errgroup.WithContext(rootCtx)

	context.AfterFunc(ctx, func() {
		ctx, cancelCtx := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancelCtx()

		<-ctx.Done()
		log.Fatal("failed to gracefully shutdown the server")
	})

	g.Go(func() error {
		if err := server.Run(); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		defer logger.InfoCtx(ctx, "Shutting down server")
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("goroutine error occured: %w", err)
	}

	return nil
}
