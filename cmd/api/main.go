package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/ficmh/techfest-api/internal/api/http"
	"github.com/ficmh/techfest-api/internal/api/http/handlers"
	"github.com/ficmh/techfest-api/internal/auth"
	"github.com/ficmh/techfest-api/internal/config"
	"github.com/ficmh/techfest-api/internal/observability"
	"github.com/ficmh/techfest-api/internal/persistence"
	"github.com/ficmh/techfest-api/internal/repository"
	"github.com/ficmh/techfest-api/internal/service"
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	adminRepo := repository.NewAdminRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	albumRepo := repository.NewAlbumRepository(pool)
	sponsorRepo := repository.NewSponsorRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	pubRepo := repository.NewPublicationRepository(pool)

	adminService := service.NewAdminService(*cfg, service.AdminDependencies{
		AdminRepo: adminRepo,
		Logger:    logger,
	})
	eventCache := persistence.NewEventListCache(redis, cfg.Cache.EventListTTL())
	eventService := service.NewEventService(eventRepo, eventCache)
	galleryService := service.NewGalleryService(albumRepo, eventRepo)
	sponsorService := service.NewSponsorService(sponsorRepo)
	teamService := service.NewTeamService(teamRepo)
	pubService := service.NewPublicationService(pubRepo)

	// One-shot diagnostic; reports, never repairs.
	if pool != nil {
		adminService.CheckSuperadminInvariant(ctx)
	}

	authMiddleware := auth.NewAuthMiddleware(adminService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Admins:         handlers.NewAdminHandler(adminService),
		Events:         handlers.NewEventHandler(eventService),
		Gallery:        handlers.NewGalleryHandler(galleryService),
		Sponsors:       handlers.NewSponsorHandler(sponsorService),
		Team:           handlers.NewTeamHandler(teamService),
		Publications:   handlers.NewPublicationHandler(pubService),
		AuthMiddleware: authMiddleware,
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
