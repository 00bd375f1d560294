// Package retail serves the retail calculators and the reorder list over HTTP.
package retail

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"go-retail/internal/retail/handlers"
	"go-retail/internal/retail/middleware"
	"go-retail/pkg/logging"
	"net/http"
	"time"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
}

type Services struct {
	Calculators interface {
		handlers.CalculatorsListingService
		handlers.CalculationService
	}
	Reorder interface {
		handlers.ReorderListingService
		handlers.ReorderService
	}
	Notice handlers.NoticeSource
}

type Server struct {
	logger     *logging.ZapLogger
	httpServer *http.Server
	cfg        Config
}

func NewServer(cfg Config, services Services, logger *logging.ZapLogger) *Server {
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           NewRouter(services, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: srv,
	}
}

func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server ListenAndServe failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func NewRouter(services Services, logger *logging.ZapLogger) *chi.Mux {
	loggerContext := middleware.NewLoggerContext()
	panicRecover := middleware.NewPanicRecover(logger)

	calculatorsListingHandler := handlers.NewCalculatorsListingHandler(services.Calculators, logger)
	calculationHandler := handlers.NewCalculationHandler(services.Calculators, logger)
	calculatorResetHandler := handlers.NewCalculatorResetHandler(services.Calculators, logger)
	reorderListingHandler := handlers.NewReorderListingHandler(services.Reorder, logger)
	reorderTotalsHandler := handlers.NewReorderTotalsHandler(services.Reorder, logger)
	orderBuildingHandler := handlers.NewOrderBuildingHandler(services.Reorder, logger)
	reorderExportHandler := handlers.NewReorderExportHandler(services.Reorder, logger)
	noticeGettingHandler := handlers.NewNoticeGettingHandler(services.Notice, logger)

	router := chi.NewRouter()
	router.Use(loggerContext.CreateHandler, panicRecover.CreateHandler)

	router.Route("/api", func(router chi.Router) {
		router.Get("/calculators", calculatorsListingHandler.ServeHTTP)
		router.Post("/calculators/{name}", calculationHandler.ServeHTTP)
		router.Post("/calculators/{name}/reset", calculatorResetHandler.ServeHTTP)

		router.Get("/reorder", reorderListingHandler.ServeHTTP)
		router.Post("/reorder/totals", reorderTotalsHandler.ServeHTTP)
		router.Post("/reorder/order", orderBuildingHandler.ServeHTTP)
		router.Post("/reorder/export", reorderExportHandler.ServeHTTP)

		router.Get("/notice", noticeGettingHandler.ServeHTTP)
	})

	return router
}
