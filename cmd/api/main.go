package main

import (
	"context"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"bible-trivia/internal/adapter"
	"bible-trivia/internal/cache"
	"bible-trivia/internal/config"
	"bible-trivia/internal/database"
	"bible-trivia/internal/handler"
	"bible-trivia/internal/logger"
	"bible-trivia/internal/middleware"
	"bible-trivia/internal/repository"
	"bible-trivia/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize Redis client and the environment mode store
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	modeStore := adapter.NewRedisModeStore(redisClient)

	// Initialize repositories
	categoryRepository := repository.NewCategoryStore(db)
	questionRepository := repository.NewQuestionStore(db)

	// Initialize services
	authService, err := service.NewAuthService(cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	contentService := service.NewContentService(categoryRepository, questionRepository, modeStore, appLogger)
	promotionService := service.NewPromotionService(
		categoryRepository,
		questionRepository,
		service.NewContextAuthChecker(),
		appLogger,
	)

	// Initialize handlers
	contentHandler := handler.NewContentHandler(contentService)
	promotionHandler := handler.NewPromotionHandler(promotionService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	// Admin routes (all protected)
	adminGroup := app.Group("/api/admin", middleware.Protected(authService))

	adminGroup.Get("/environment", contentHandler.GetMode)
	adminGroup.Put("/environment", contentHandler.SetMode)

	adminGroup.Get("/categories", contentHandler.ListCategories)
	adminGroup.Get("/questions", contentHandler.ListQuestions)
	adminGroup.Post("/questions", contentHandler.CreateQuestion)
	adminGroup.Put("/questions/:id/flag", contentHandler.FlagQuestion)

	promotionGroup := adminGroup.Group("/promotion")
	promotionGroup.Get("/status", promotionHandler.GetStatus)
	promotionGroup.Get("/questions/:id/validation", promotionHandler.ValidateQuestion)
	promotionGroup.Post("/questions/:id", promotionHandler.MigrateQuestion)
	promotionGroup.Post("/categories/:id", promotionHandler.PromoteCategory)
	promotionGroup.Post("/batch", promotionHandler.RunBatch)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})

	// Log mode changes published by other processes.
	g.Go(func() error {
		modes, err := modeStore.Subscribe(gCtx)
		if err != nil {
			return err
		}
		for mode := range modes {
			appLogger.Info("Environment mode changed", zap.String("mode", string(mode)))
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		appLogger.Error("Server exited with error", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
