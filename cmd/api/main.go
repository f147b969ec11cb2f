package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/student-registry/internal/api/http"
	"github.com/spec-kit/student-registry/internal/api/http/handlers"
	"github.com/spec-kit/student-registry/internal/auth"
	"github.com/spec-kit/student-registry/internal/config"
	"github.com/spec-kit/student-registry/internal/events"
	"github.com/spec-kit/student-registry/internal/observability"
	"github.com/spec-kit/student-registry/internal/persistence"
	"github.com/spec-kit/student-registry/internal/repository"
	"github.com/spec-kit/student-registry/internal/service"
	"github.com/spec-kit/student-registry/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	authService, err := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}
	registryService := service.NewRegistryService(service.RegistryDependencies{
		StudentRepo:    studentRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		CourseCache:    service.NewRedisCourseCache(redis.ClientHandle(), cfg.Cache.CourseTTL()),
		Dispatcher:     dispatcher,
	})
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Students:       handlers.NewStudentsHandler(registryService),
		Courses:        handlers.NewCoursesHandler(registryService),
		Enrollments:    handlers.NewEnrollmentsHandler(registryService),
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
