package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk/internal/api/http"
	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/persistence"
	"github.com/spec-kit/helpdesk/internal/repository"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		userStore   repository.Store[domain.User]
		ticketStore repository.Store[domain.Ticket]
		probes      []handlers.DependencyProbe
	)

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		userStore = repository.NewPostgresStore[domain.User](pg.PoolHandle(), repository.CollectionUsers)
		ticketStore = repository.NewPostgresStore[domain.Ticket](pg.PoolHandle(), repository.CollectionTickets)
		probes = append(probes, handlers.DependencyProbe{Name: "postgres", Ping: pg.Ping})
	case config.StoreBackendRedis:
		rd := persistence.NewRedis(cfg.Redis, logger)
		defer rd.Close()
		userStore = repository.NewRedisStore[domain.User](rd.Client, repository.CollectionUsers)
		ticketStore = repository.NewRedisStore[domain.Ticket](rd.Client, repository.CollectionTickets)
		probes = append(probes, handlers.DependencyProbe{Name: "redis", Ping: rd.Ping})
	default:
		userStore = repository.NewMemoryStore[domain.User]()
		ticketStore = repository.NewMemoryStore[domain.Ticket]()
	}

	userRepo := repository.NewUserRepository(userStore)
	ticketRepo := repository.NewTicketRepository(ticketStore)

	if cfg.Store.SeedDemoAccounts {
		if err := persistence.SeedDemoAccounts(ctx, userRepo, cfg.Auth.BcryptCost, logger); err != nil {
			logger.Fatal("failed to seed demo accounts", zap.Error(err))
		}
	}

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	authenticator := auth.NewMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, probes...),
		Auth:          handlers.NewAuthHandler(authService),
		Tickets:       handlers.NewTicketsHandler(ticketService),
		Authenticator: authenticator,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
