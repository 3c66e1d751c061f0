package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"prioritiser-backend/internal/assessment"
	"prioritiser-backend/internal/mailer"
	"prioritiser-backend/internal/progress"
	"prioritiser-backend/internal/report"
	"prioritiser-backend/internal/shared/config"
	"prioritiser-backend/internal/shared/server"
	"prioritiser-backend/internal/shared/storage/db"
)

// App holds shared dependencies built from configuration.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ReportRepo    report.Repo
	ProgressStore progress.Store
	Mail          mailer.Sender

	ReportService *report.Service

	AssessmentHandler *assessment.Handler
	ProgressHandler   *progress.Handler
	ReportHandler     *report.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}

	if sqlDB != nil {
		app.ReportRepo = &report.PGRepo{DB: sqlDB}
	} else {
		app.ReportRepo = report.NewMemoryRepo()
	}
	app.ProgressStore = progress.NewFileStore(cfg.LocalStoreDir)

	if cfg.ResendAPIKey != "" {
		app.Mail = mailer.NewResendSender(cfg.ResendAPIKey)
	}

	app.ReportService = &report.Service{
		Repo:        app.ReportRepo,
		Mail:        app.Mail,
		FromEmail:   cfg.ReportFromEmail,
		TargetEmail: cfg.ReportTargetEmail,
		AssetsDir:   cfg.AssetsDir,
	}

	app.AssessmentHandler = assessment.NewHandler()
	app.ProgressHandler = progress.NewHandler(app.ProgressStore)
	app.ReportHandler = report.NewHandler(app.ReportService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		AssessmentHandler: app.AssessmentHandler,
		ProgressHandler:   app.ProgressHandler,
		ReportHandler:     app.ReportHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory submission store")
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory submission store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory submission store: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		sqlDB.Close()
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
