package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Lelo88/inventory-editor-golang/internal/config"
	"github.com/Lelo88/inventory-editor-golang/internal/db"
	"github.com/Lelo88/inventory-editor-golang/internal/docs"
	"github.com/Lelo88/inventory-editor-golang/internal/health"
	"github.com/Lelo88/inventory-editor-golang/internal/httpx"
	"github.com/Lelo88/inventory-editor-golang/internal/inventory"
	"github.com/Lelo88/inventory-editor-golang/internal/logger"
)

// appPool es lo que la app necesita del pool: ping para /ready, queries para
// el repositorio y close al apagar.
type appPool interface {
	Ping(ctx context.Context) error
	Close()
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// appDeps permite inyectar dependencias en run para testearlo sin red ni DB.
type appDeps struct {
	loadConfig     func() (config.Config, error)
	newPool        func(ctx context.Context, url string, maxConns int32) (appPool, error)
	listenAndServe func(addr string, handler http.Handler) error
	logger         *zap.Logger
}

var (
	loadConfigFn = config.Load
	newPoolFn    = func(ctx context.Context, url string, maxConns int32) (appPool, error) {
		return db.NewPool(ctx, url, maxConns)
	}
	listenAndServeFn = http.ListenAndServe
	newLoggerFn      = logger.New
	fatalf           = log.Fatal
)

func main() {
	zapLogger, err := newLoggerFn()
	if err != nil {
		fatalf(err)
		return
	}
	defer func() { _ = zapLogger.Sync() }()

	deps := appDeps{
		loadConfig:     loadConfigFn,
		newPool:        newPoolFn,
		listenAndServe: listenAndServeFn,
		logger:         zapLogger,
	}

	if err := run(context.Background(), deps); err != nil {
		fatalf(err)
	}
}

func run(ctx context.Context, deps appDeps) error {
	cfg, err := deps.loadConfig()
	if err != nil {
		return err
	}

	pool, err := deps.newPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return err
	}
	defer pool.Close()

	router := buildRouter(pool, deps.logger)

	addr := ":" + cfg.Port
	logger.Named(deps.logger, "api").Info("listening", zap.String("addr", addr))
	return deps.listenAndServe(addr, router)
}

// buildRouter arma el router completo: middlewares base, health, docs y el
// flujo de edición de inventario.
func buildRouter(pool appPool, zapLogger *zap.Logger) chi.Router {
	repository := inventory.NewRepository(pool)
	manager := inventory.NewManager(repository, logger.Named(zapLogger, "inventory"))
	handler := inventory.NewHandler(manager)

	router := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(httpx.RequestLogger(logger.Named(zapLogger, "http")))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(10 * time.Second))

	// Errores de routing se manejan a nivel router.
	router.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		httpx.Fail(writer, request, http.StatusNotFound, "not_found", "resource not found")
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, request *http.Request) {
		httpx.Fail(writer, request, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	healthHandler := health.New(pool)
	router.Get("/health", healthHandler.Health)
	router.Get("/ready", healthHandler.Ready)

	docs.RegisterRoutes(router)
	inventory.RegisterRoutes(router, handler)

	return router
}
