package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentmatch-ai/talentmatch/backend/internal/server/middleware"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/ai"
)

// GetMetricsHandler exposes the accumulated language-model usage
// counters.
func GetMetricsHandler(c echo.Context) error {
	type metricsResponse struct {
		Message string           `json:"message"`
		Metrics *ai.ModelMetrics `json:"metrics,omitempty"`
	}

	app := c.(*middleware.AppContext).App
	if app.AiClient == nil {
		return c.JSON(http.StatusOK, metricsResponse{
			Message: "No language model configured",
		})
	}

	metrics := app.AiClient.GetMetrics()
	return c.JSON(http.StatusOK, metricsResponse{
		Message: "OK",
		Metrics: &metrics,
	})
}
