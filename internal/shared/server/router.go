package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/applications"
	"tailor-backend/internal/shared/server/middleware"
	"tailor-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers and gates the router needs.
type RouterDeps struct {
	Auth                *middleware.BasicAuthGate // nil disables auth
	ApplicationsHandler *applications.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
	)
	// The gate sits in front of every route when credentials are configured.
	if deps.Auth != nil {
		r.Use(deps.Auth.Middleware())
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.ApplicationsHandler.RegisterRoutes(api)

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
