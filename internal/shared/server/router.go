package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prioritiser-backend/internal/assessment"
	"prioritiser-backend/internal/progress"
	"prioritiser-backend/internal/report"
	"prioritiser-backend/internal/shared/config"
	"prioritiser-backend/internal/shared/metrics"
	"prioritiser-backend/internal/shared/server/middleware"
	"prioritiser-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	AssessmentHandler *assessment.Handler
	ProgressHandler   *progress.Handler
	ReportHandler     *report.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	deps.AssessmentHandler.RegisterRoutes(api)
	deps.ProgressHandler.RegisterRoutes(api)
	deps.ReportHandler.RegisterRoutes(api)

	if deps.Config.Env == "dev" {
		dev := api.Group("/dev")
		deps.ReportHandler.RegisterDevRoutes(dev)
	}

	return r
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
