package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/applications"
	"tailor-backend/internal/llm"
	"tailor-backend/internal/llm/anthropic"
	"tailor-backend/internal/render"
	"tailor-backend/internal/shared/config"
	"tailor-backend/internal/shared/server"
	"tailor-backend/internal/shared/server/middleware"
	"tailor-backend/internal/shared/storage/db"
	localstore "tailor-backend/internal/shared/storage/object/local"
)

// App holds shared dependencies for the running process.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	DB      *sql.DB
	Service *applications.Service
	Janitor *applications.Janitor
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo applications.Repo
	if sqlDB != nil {
		repo = &applications.PGRepo{DB: sqlDB}
	} else {
		repo = applications.NewMemoryRepo()
	}

	store := localstore.New(cfg.OutputDir)

	completer := llm.Completer(llm.PlaceholderClient{})
	if strings.TrimSpace(cfg.APIKey) != "" {
		client, err := anthropic.NewClient(cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		completer = client
	}

	svc := &applications.Service{
		Repo:     repo,
		Store:    store,
		LLM:      completer,
		Renderer: render.NewRenderer(render.NewChromeEngine(cfg.ChromePath)),
		Cache:    applications.NewResumeCache(),
		Model:    cfg.Model,
	}

	gate, err := middleware.NewBasicAuthGate(cfg.AuthUsername, cfg.AuthPassword)
	if err != nil {
		return nil, err
	}

	router := server.NewRouter(server.RouterDeps{
		Auth:                gate,
		ApplicationsHandler: applications.NewHandler(svc),
	})

	return &App{
		Config:  cfg,
		Router:  router,
		DB:      sqlDB,
		Service: svc,
		Janitor: &applications.Janitor{
			Store:    store,
			TTL:      cfg.OutputTTL,
			Interval: cfg.OutputTTL / 4,
		},
	}, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory history")
		return nil, nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultServerOptions())
	if err != nil {
		if cfg.Env != "production" {
			log.Printf("bootstrap: database connect failed; using in-memory history: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}
