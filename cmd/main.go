package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"trinh-cafe/internal/auth"
	"trinh-cafe/internal/catalog"
	"trinh-cafe/internal/config"
	"trinh-cafe/internal/database"
	"trinh-cafe/internal/events"
	"trinh-cafe/internal/logger"
	"trinh-cafe/internal/messaging"
	"trinh-cafe/internal/middleware"
	"trinh-cafe/internal/models"
	"trinh-cafe/internal/services/menu"
	"trinh-cafe/internal/services/order"
	"trinh-cafe/internal/services/payment"
	"trinh-cafe/internal/services/table"
	"trinh-cafe/internal/services/user"
	"trinh-cafe/internal/web"
)

func main() {
	var (
		configPath    = flag.String("config", "config.yaml", "Path to configuration file")
		port          = flag.Int("port", 0, "HTTP port (overrides config)")
		migrationsDir = flag.String("migrations", "migrations", "Path to migrations directory")
	)
	flag.Parse()

	log := logger.New("cafe-backend")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("config_load_failed", "Failed to load configuration", "startup", err, nil)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	if err := run(cfg, *migrationsDir, log); err != nil {
		log.Error("fatal", "Service terminated with error", "", err, nil)
		os.Exit(1)
	}
}

func run(cfg *config.Config, migrationsDir string, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.RunMigrations(ctx, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Price lookups go straight to Postgres unless a Redis cache is configured.
	var gateway catalog.Gateway = catalog.NewPostgresGateway(db)
	if cfg.Redis.Addr != "" {
		rdb, err := catalog.InitRedis(cfg.Redis, log)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer rdb.Close()
		gateway = catalog.NewCachedGateway(gateway, rdb, cfg.Redis.PriceTTL.Std(), log)
	}

	hub := events.NewHub(log)

	// The broker bridge is optional; events still reach connected observers
	// without it.
	if cfg.RabbitMQ.Host != "" {
		conn, err := messaging.New(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		defer conn.Close()
		hub.AttachForwarder(messaging.NewBridge(conn, log))
	}

	go hub.Run(ctx)

	authn := auth.New(cfg.Auth)
	requireAuth := authn.Require("")
	requireAdmin := authn.Require(models.RoleAdmin)

	orderService := order.NewService(order.NewPostgresStore(db), gateway, hub, log)
	paymentService := payment.NewService(payment.NewPostgresStore(db), hub, log)
	tableService := table.NewService(table.NewPostgresStore(db), log)
	menuService := menu.NewService(menu.NewPostgresStore(db), gateway, log)
	userService := user.NewService(user.NewPostgresStore(db), authn, log)

	mux := http.NewServeMux()
	order.NewHandler(orderService, log).Register(mux, requireAuth)
	payment.NewHandler(paymentService, log).Register(mux, requireAuth)
	table.NewHandler(tableService, log).Register(mux, requireAdmin)
	menu.NewHandler(menuService, log).Register(mux, requireAdmin)
	user.NewHandler(userService, log).Register(mux)
	events.NewStreamHandler(hub, log).Register(mux)

	mux.Handle("GET /metrics", middleware.PrometheusHandler())
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			web.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
		web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: middleware.Metrics(mux),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_started", "HTTP server listening", "startup",
			map[string]interface{}{"port": cfg.HTTP.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutdown_started", "Shutting down", "shutdown", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout.Std())
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("shutdown_complete", "Service stopped", "shutdown", nil)
	return nil
}
