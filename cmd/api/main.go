// @title Trivia Orb API
// @version 1.0
// @description LLM-backed trivia topic and question generation with guest scoring.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "trivia-orb/cmd/api/docs"

	"trivia-orb/internal/adapter"
	"trivia-orb/internal/adapter/llm"
	"trivia-orb/internal/cache"
	"trivia-orb/internal/config"
	"trivia-orb/internal/domain"
	"trivia-orb/internal/handler"
	"trivia-orb/internal/logger"
	"trivia-orb/internal/middleware"
	"trivia-orb/internal/service"
	"trivia-orb/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// One generator for the process lifetime, injected into the service
	generator, err := llm.NewTextGenerator(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create text generator", zap.Error(err))
	}
	appLogger.Info("Text generator initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", generator.ModelID()),
		zap.Duration("timeout", cfg.LLM.Timeout))

	var store domain.Cache
	var memStore *adapter.MemoryCacheAdapter
	if cfg.UseRedis() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		store = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Session store: redis", zap.String("address", cfg.Redis.Address))
	} else {
		memStore = adapter.NewMemoryCacheAdapter()
		store = memStore
		appLogger.Info("Session store: memory")
	}

	shapes, err := validation.NewShapeValidator(validation.WithExactTopicCount(cfg.Generation.StrictTopicCount))
	if err != nil {
		appLogger.Fatal("Failed to compile response schemas", zap.Error(err))
	}
	requestValidator := validation.NewValidator()

	// Initialize services
	generationService := service.NewGenerationService(generator, shapes)
	sessionService := service.NewSessionService(store, cfg.Session)

	// Initialize handlers
	triviaHandler := handler.NewTriviaHandler(generationService, sessionService, requestValidator)
	sessionHandler := handler.NewSessionHandler(sessionService, requestValidator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", handler.Health(store, generationService.ModelID()))

	api := app.Group("/api")
	api.Post("/generateTopics", triviaHandler.GenerateTopics)
	api.Post("/generateQuestion", triviaHandler.GenerateQuestion)

	sessions := api.Group("/sessions")
	sessions.Post("/", sessionHandler.CreateSession)
	sessions.Get("/:id", sessionHandler.GetSession)
	sessions.Delete("/:id", sessionHandler.EndSession)
	sessions.Post("/:id/answers", sessionHandler.SubmitAnswer)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})
	if memStore != nil {
		// Reap expired sessions until shutdown
		g.Go(func() error {
			return memStore.Run(gctx, adapter.DefaultSweepInterval)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
