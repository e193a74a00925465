package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"loan-optimizer/config"
	httpLayer "loan-optimizer/http"
	"loan-optimizer/repository"
	"loan-optimizer/service"
)

func newServeCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP del optimizador",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func serve(cfg config.Config) error {
	runRepo := repository.NewRunRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		log.Printf("Usando caché Redis en %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	loanService := service.NewLoanService()
	loanHandler := httpLayer.NewLoanHandler(loanService)

	simulationService := service.NewSimulationService()
	simulationHandler := httpLayer.NewSimulationHandler(simulationService)

	optimizerService := service.NewOptimizerService(simulationService, runRepo, cache)
	optimizerHandler := httpLayer.NewOptimizerHandler(optimizerService)

	runsHandler := httpLayer.NewRunsHandler(runRepo)

	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Requests, window)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/loan/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(loanHandler.CalculatePayment),
		),
	)

	mux.Handle(
		"/loan/simulate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(simulationHandler.Simulate),
		),
	)

	mux.Handle(
		"/loan/optimize",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(optimizerHandler.OptimizeEarlyPayment),
		),
	)

	mux.Handle(
		"/loan/optimizations",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(runsHandler.ListRuns),
		),
	)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost%s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return err
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}
