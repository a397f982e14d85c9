package main

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/handler"
	"inkwell/internal/middleware"
	"inkwell/internal/repository/sqlite"
	sqliteWriting "inkwell/internal/repository/sqlite/writing"
	serviceWriting "inkwell/internal/service/writing"
	"inkwell/internal/token"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	// Outside dev, logs go to rotating files under the data directory
	logOutput := io.Writer(os.Stdout)
	if cfg.Environment != "dev" {
		logFile, err := config.SetupLogFile(filepath.Join(cfg.DataDir, "logs"), 5)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOutput = logFile
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"data_dir", cfg.DataDir,
	)

	// Open the writing store
	db, err := sqlite.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open writing store: %v", err)
	}
	defer db.Close()

	logger.Info("writing store opened", "data_dir", cfg.DataDir)

	// Create repositories
	repoConfig := &sqlite.RepositoryConfig{
		DB:     db,
		Logger: logger,
	}
	workRepo := sqliteWriting.NewWorkRepository(repoConfig)
	nodeRepo := sqliteWriting.NewNodeRepository(repoConfig)
	contentRepo := sqliteWriting.NewContentRepository(repoConfig)
	versionRepo := sqliteWriting.NewVersionRepository(repoConfig)
	promptRepo := sqliteWriting.NewPromptRepository(repoConfig)
	txManager := sqlite.NewTransactionManager(db)

	// Create services
	workService := serviceWriting.NewWorkService(workRepo, nodeRepo, txManager, logger)
	nodeService := serviceWriting.NewNodeService(nodeRepo, logger)
	contentService := serviceWriting.NewContentService(contentRepo, versionRepo, txManager, logger)
	treeService := serviceWriting.NewTreeService(nodeRepo, logger)
	contextService := serviceWriting.NewContextService(contentRepo, token.Shared(logger), logger)
	promptService := serviceWriting.NewPromptService(promptRepo, logger)

	logger.Info("services initialized")

	// Create handlers
	workHandler := handler.NewWorkHandler(workService, logger)
	nodeHandler := handler.NewNodeHandler(nodeService, logger)
	contentHandler := handler.NewContentHandler(contentService, logger)
	treeHandler := handler.NewTreeHandler(treeService, logger)
	contextHandler := handler.NewContextHandler(treeService, contextService, logger)
	promptHandler := handler.NewPromptHandler(promptService, logger)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Work routes
	mux.HandleFunc("GET /api/works", workHandler.List)
	mux.HandleFunc("POST /api/works", workHandler.Create)
	mux.HandleFunc("GET /api/works/{id}", workHandler.Get)
	mux.HandleFunc("PATCH /api/works/{id}", workHandler.Update)
	mux.HandleFunc("DELETE /api/works/{id}", workHandler.Delete)

	// Work tree endpoint
	mux.HandleFunc("GET /api/works/{id}/tree", treeHandler.GetTree)

	// Node routes
	mux.HandleFunc("POST /api/nodes", nodeHandler.Create)
	mux.HandleFunc("PATCH /api/nodes/{id}", nodeHandler.Rename)
	mux.HandleFunc("DELETE /api/nodes/{id}", nodeHandler.Delete)

	// Content and version routes
	mux.HandleFunc("GET /api/nodes/{id}/content", contentHandler.Get)
	mux.HandleFunc("PUT /api/nodes/{id}/content", contentHandler.Save)
	mux.HandleFunc("GET /api/nodes/{id}/versions", contentHandler.ListVersions)
	mux.HandleFunc("GET /api/nodes/{id}/versions/{label}", contentHandler.GetVersion)
	mux.HandleFunc("POST /api/nodes/{id}/versions/{label}/restore", contentHandler.RestoreVersion)

	// Context assembly endpoint
	mux.HandleFunc("POST /api/context/assemble", contextHandler.Assemble)

	// Prompt template routes
	mux.HandleFunc("GET /api/prompts", promptHandler.List)
	mux.HandleFunc("POST /api/prompts", promptHandler.Create)
	mux.HandleFunc("GET /api/prompts/{id}", promptHandler.Get)
	mux.HandleFunc("PATCH /api/prompts/{id}", promptHandler.Update)
	mux.HandleFunc("DELETE /api/prompts/{id}", promptHandler.Delete)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Routes
	root = middleware.Recovery(logger)(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
