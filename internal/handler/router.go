package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alert-engine/internal/handler/api"
	"alert-engine/internal/handler/middleware"
	"alert-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, triggerHandler *api.TriggerHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, triggerHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, triggerHandler *api.TriggerHandler) {
	engine.GET("/health", healthCheck)

	internal := engine.Group("/internal")
	{
		addRoutes(internal, []route{
			{Method: http.MethodPost, Path: "/hooks/postings/:id", Handler: triggerHandler.PostingCreated},
			{Method: http.MethodPost, Path: "/digests/:frequency/runs", Handler: triggerHandler.RunDigest},
		})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		group.Handle(r.Method, r.Path, handlers...)
	}
}
