package server

import (
	"github.com/talentmatch-ai/talentmatch/backend/internal/server/middleware"
	"github.com/talentmatch-ai/talentmatch/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Question routes
	apiRoutes.POST("/ask", routes.AskHandler)
	apiRoutes.GET("/history", routes.GetHistoryHandler)
	apiRoutes.GET("/metrics", routes.GetMetricsHandler)
}
