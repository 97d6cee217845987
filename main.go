package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/aipsms/ai-engine/config"
	_ "github.com/aipsms/ai-engine/docs"
	"github.com/aipsms/ai-engine/gemini"
	"github.com/aipsms/ai-engine/handlers"
	"github.com/aipsms/ai-engine/logger"
	"github.com/aipsms/ai-engine/matcher"
	"github.com/aipsms/ai-engine/mcp"
	"github.com/aipsms/ai-engine/recommend"
	"github.com/aipsms/ai-engine/resume"
	"github.com/aipsms/ai-engine/storage"
	"github.com/aipsms/ai-engine/tools"
	"github.com/aipsms/ai-engine/utils"
)

// @title AIPSMS AI Engine API
// @version 1.0
// @description Resume parsing, job matching and learning recommendations for campus placement.

// @host localhost:8000
// @BasePath /

func main() {
	// Load .env file if present (for local development)
	envErr := godotenv.Load()

	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if envErr != nil {
		log.Debug("no .env file found, using environment variables")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatal("configuration error", zap.Error(err))
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context for initialization
	ctx := context.Background()

	catalog, err := config.LoadCatalog(cfg.SkillsFile)
	if err != nil {
		log.Fatal("failed to load skills catalog", zap.String("path", cfg.SkillsFile), zap.Error(err))
	}
	vocab := matcher.NewVocabulary(catalog.Skills)
	log.Info("skills catalog loaded", zap.Int("skills", vocab.Len()), zap.Int("courses", len(catalog.Courses)))

	// Entity recognition is optional; without it skills come from the vocabulary alone.
	var recognizer matcher.EntityRecognizer
	if cfg.EntityRecognition {
		geminiClient, err := gemini.NewClient(ctx, cfg, log)
		if err != nil {
			log.Warn("entity recognition unavailable", zap.Error(err))
		} else {
			defer geminiClient.Close()
			recognizer = geminiClient
			log.Info("entity recognition enabled", zap.String("model", cfg.GeminiModel))
		}
	}

	uploadStore, closeStore := newUploadStore(ctx, cfg, log)
	defer closeStore()

	skillExtractor := matcher.NewSkillExtractor(vocab, recognizer, logger.Component(log, "skills"))
	pipeline := matcher.NewPipeline(matcher.NewSimilarityScorer(), logger.Component(log, "pipeline"))
	recommender := recommend.NewRecommender(catalog.Courses)
	parser := resume.NewParser(
		utils.NewDocumentExtractor(),
		skillExtractor,
		resume.NewPool(cfg.ParseWorkers),
		logger.Component(log, "resume"),
	)

	// Create handlers
	resumeHandler := handlers.NewResumeHandler(parser, uploadStore, cfg.MaxUploadBytes(), logger.Component(log, "resume"))
	matchHandler := handlers.NewMatchHandler(pipeline, logger.Component(log, "match"))
	recommendHandler := handlers.NewRecommendHandler(recommender)

	// Create MCP server with tool registry
	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewMatchJobsTool(pipeline))
	toolRegistry.Register(tools.NewExtractSkillsTool(skillExtractor))
	toolRegistry.Register(tools.NewAnalyzeSkillGapTool())
	toolRegistry.Register(tools.NewRecommendLearningTool(recommender))

	mcpServer := mcp.NewServer(toolRegistry, "aipsms-ai-engine", handlers.Version, logger.Component(log, "mcp"))

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(handlers.RequestLogger(logger.Component(log, "http")))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", handlers.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", handlers.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/tools", handlers.ListTools(toolRegistry))

	uploadLimiter := handlers.NewClientLimiter(cfg.UploadRatePerSec, cfg.UploadBurst)
	router.POST("/analyze-resume", handlers.RateLimit(uploadLimiter), resumeHandler.AnalyzeResume)
	router.POST("/match-jobs", matchHandler.MatchJobs)
	router.POST("/recommend-learning", recommendHandler.RecommendLearning)

	// MCP endpoints for external AI agents
	mcpServer.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("server exited gracefully")
}

// newUploadStore archives uploads to Cloud Storage when a bucket is
// configured and to the local upload directory otherwise.
func newUploadStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.UploadStore, func()) {
	if cfg.UploadBucket != "" {
		client, err := storage.NewCloudStorageClient(ctx, cfg.UploadBucket, cfg.CredentialsFile)
		if err == nil {
			log.Info("archiving uploads to Cloud Storage", zap.String("bucket", cfg.UploadBucket))
			return client, func() { client.Close() }
		}
		log.Warn("Cloud Storage unavailable, falling back to local uploads", zap.Error(err))
	}

	local, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Warn("upload archiving disabled", zap.Error(err))
		return nil, func() {}
	}
	log.Info("archiving uploads locally", zap.String("dir", cfg.UploadDir))
	return local, func() {}
}
