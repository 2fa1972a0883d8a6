package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"ai-placement-tracker/internal/cache"
	"ai-placement-tracker/internal/config"
	"ai-placement-tracker/internal/events"
	"ai-placement-tracker/internal/handlers"
	"ai-placement-tracker/internal/repositories"
	"ai-placement-tracker/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to load config")
	}
	config.InitLogger(cfg)
	log.Info().Str("env", cfg.Server.Env).Msg("✅ Config loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize database")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	log.Info().Msg("✅ Repositories initialized successfully")

	// Embedding cache: Redis when configured, in-process LRU otherwise
	embeddingCache := newEmbeddingCache(ctx, cfg)
	defer embeddingCache.Close()

	// Activity events
	publisher := events.NewNoopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("✅ Kafka publisher initialized")
	}
	defer publisher.Close()

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to create upload directory")
	}

	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.EmbeddingModel, cfg.Gemini.TranscribeModel)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize Gemini AI")
	}
	embedder := services.NewCachedEmbedder(geminiService, embeddingCache, cfg.Gemini.EmbeddingModel, cfg.Redis.TTL)
	log.Info().Msg("✅ Gemini AI initialized successfully")

	evaluator := services.NewAnswerEvaluator(embedder)
	audioAnalyzer := services.NewAudioAnalyzer(geminiService)
	resumeAnalyzer := services.NewResumeAnalyzer(services.NewPDFParserService())

	// Optional semantic question search
	var questionIndex services.QuestionIndex
	var indexWorker services.IndexWorker
	if cfg.Qdrant.Enabled {
		questionIndex, err = services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, cfg.Qdrant.VectorSize)
		if err != nil {
			log.Fatal().Err(err).Msg("❌ Failed to initialize Qdrant")
		}
		if err := questionIndex.InitCollection(ctx); err != nil {
			log.Fatal().Err(err).Msg("❌ Failed to initialize Qdrant collection")
		}
		log.Info().Msg("✅ Qdrant initialized successfully")

		indexWorker = services.NewIndexWorker(
			questionRepo,
			embedder,
			questionIndex,
			cfg.Worker.Concurrency,
			cfg.Worker.PollInterval,
			cfg.Worker.BatchSize,
		)
		indexWorker.Start(ctx)
		log.Info().Msg("✅ Index worker started successfully")
	}
	finder := services.NewQuestionFinder(questionRepo, embedder, questionIndex)
	log.Info().Msg("✅ Services initialized successfully")

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userRepo)
	applicationHandler := handlers.NewApplicationHandler(userRepo, appRepo, publisher)
	interviewHandler := handlers.NewInterviewHandler(
		evaluator,
		audioAnalyzer,
		storageService,
		userRepo,
		interviewRepo,
		publisher,
		cfg.Storage.MaxFileSize,
	)
	questionHandler := handlers.NewQuestionHandler(questionRepo, finder)
	resumeHandler := handlers.NewResumeHandler(storageService, resumeAnalyzer, cfg.Storage.MaxFileSize)
	log.Info().Msg("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Placement Tracker API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(compress.New())

	aiLimiter := handlers.AIRateLimiter(cfg.RateLimit.Max, cfg.RateLimit.Expiration)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Users
	users := app.Group("/users")
	users.Post("/", userHandler.HandleCreateUser)
	users.Get("/:id", userHandler.HandleGetUser)

	// Applications
	applications := app.Group("/applications")
	applications.Post("/:user_id", applicationHandler.HandleCreateApplication)
	applications.Get("/:user_id", applicationHandler.HandleListApplications)

	// Mock interviews
	interview := app.Group("/interview")
	interview.Post("/evaluate", aiLimiter, interviewHandler.HandleEvaluate)
	interview.Post("/analyze-audio", aiLimiter, interviewHandler.HandleAnalyzeAudio)
	interview.Get("/history/:user_id", interviewHandler.HandleHistory)

	// Question bank
	questions := app.Group("/questions")
	questions.Get("/random-theory", questionHandler.HandleRandomTheory)
	questions.Get("/random-coding", questionHandler.HandleRandomCoding)
	questions.Get("/search", questionHandler.HandleSearch)

	// Resume
	app.Post("/resume/upload", aiLimiter, resumeHandler.HandleUpload)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Placement Tracker API is running",
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("🛑 Shutting down server...")
		if indexWorker != nil {
			indexWorker.Stop()
		}
		cancel()
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("🚀 Server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}

func newEmbeddingCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if cfg.Redis.Addr != "" {
		c, err := cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err == nil {
			log.Info().Str("addr", cfg.Redis.Addr).Msg("✅ Redis embedding cache connected")
			return c
		}
		log.Warn().Err(err).Msg("⚠️  Redis unavailable, falling back to in-memory embedding cache")
	}

	c, err := cache.NewMemoryCache(cfg.Redis.LRUSize)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to create embedding cache")
	}
	return c
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
