package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitflow-backend/internal/applications"
	"recruitflow-backend/internal/candidates"
	"recruitflow-backend/internal/intake"
	"recruitflow-backend/internal/intake/gemini"
	"recruitflow-backend/internal/positions"
	"recruitflow-backend/internal/shared/config"
	"recruitflow-backend/internal/shared/server/middleware"
	"recruitflow-backend/internal/shared/server/respond"
	"recruitflow-backend/internal/shared/storage/db"
	"recruitflow-backend/internal/tempstore"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var positionRepo positions.Repo
	if sqlDB != nil {
		positionRepo = &positions.PGRepo{DB: sqlDB}
	} else {
		positionRepo = positions.NewMemoryRepo()
	}
	var candidateRepo candidates.Repo
	if sqlDB != nil {
		candidateRepo = &candidates.PGRepo{DB: sqlDB}
	} else {
		candidateRepo = candidates.NewMemoryRepo()
	}
	var applicationRepo applications.Repo
	if sqlDB != nil {
		applicationRepo = &applications.PGRepo{DB: sqlDB}
	} else {
		applicationRepo = applications.NewMemoryRepo()
	}

	store := tempstore.New(cfg.TempDir, cfg.MaxUploadBytes)
	chain := buildChain(cfg, store)

	intakeSvc := &intake.Service{Temp: store, Chain: chain, Positions: positionRepo}
	intakeHandler := intake.NewHandler(intakeSvc, cfg.MaxUploadBytes)
	positionHandler := positions.NewHandler(positionRepo)
	applicationSvc := &applications.Service{
		Repo:       applicationRepo,
		Candidates: candidateRepo,
		Positions:  positionRepo,
	}
	applicationHandler := applications.NewHandler(applicationSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	intakeHandler.RegisterRoutes(api)
	positionHandler.RegisterRoutes(api)
	applicationHandler.RegisterRoutes(api)

	return r
}

// buildChain assembles the extraction tiers in descending fidelity order.
// The gemini tier is always present; without a configured API key its
// attempts fail immediately and the chain advances.
func buildChain(cfg config.Config, store *tempstore.Store) *intake.Chain {
	heuristic := intake.HeuristicExtractor{ReadFile: store.ReadAll}
	filename := intake.FilenameExtractor{}

	aiTier, err := gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout, store.ReadAll)
	if err != nil {
		log.Printf("gemini extractor unavailable, continuing without it: %v", err)
		return intake.NewChain(heuristic, filename)
	}
	return intake.NewChain(aiTier, heuristic, filename)
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
