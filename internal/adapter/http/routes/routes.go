package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "ocorrencias_logistica/docs"
	"ocorrencias_logistica/internal/adapter/http/handlers"
	"ocorrencias_logistica/internal/adapter/http/middleware"
	"ocorrencias_logistica/internal/config"
	"ocorrencias_logistica/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PathAPI = "/api"

// Dependencies is everything the router serves. Now drives the display
// labels; nil means time.Now.
type Dependencies struct {
	Occurrences        usecase.IOccurrenceUseCase
	Expedicao          usecase.IExpedicaoUseCase
	Stock              usecase.IStockUseCase
	Health             *handlers.HealthHandler
	DeletePasswordHash string
	Swagger            bool
	Now                func() time.Time
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(d Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	if d.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if d.Health != nil {
		r.GET("/health", d.Health.Health)
	}

	api := r.Group(PathAPI)
	addOccurrenceRoutes(api, handlers.NewOccurrenceHandler(d.Occurrences), middleware.DeleteGate(d.DeletePasswordHash))
	addExpedicaoRoutes(api, handlers.NewExpedicaoHandler(d.Expedicao, d.Now))
	addStockRoutes(api, handlers.NewStockHandler(d.Stock))
	return r
}

// Run will start the server and block until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	deps, cleanup, err := getDependencies(ctx, cfg)
	cancel()
	if err != nil {
		return err
	}
	defer cleanup()

	router := NewRouter(deps)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      withCORS(router, cfg.AllowedOrigins()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-quit:
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: forced shutdown: %w", err)
	}
	log.Info().Msg("server exited")
	return nil
}

func withCORS(h http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.DeletePasswordHeader, middleware.RequestIDHeader},
		ExposedHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
	}).Handler(h)
}
