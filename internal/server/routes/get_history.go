package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentmatch-ai/talentmatch/backend/internal/history"
	"github.com/talentmatch-ai/talentmatch/backend/internal/server/middleware"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/logger"
)

// GetHistoryHandler returns the most recent answered questions.
func GetHistoryHandler(c echo.Context) error {
	type historyQuery struct {
		Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
	}

	type historyResponse struct {
		Message string          `json:"message"`
		Entries []history.Entry `json:"entries"`
	}

	params := new(historyQuery)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, historyResponse{
			Message: "Invalid request",
			Entries: []history.Entry{},
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, historyResponse{
			Message: "Invalid request",
			Entries: []history.Entry{},
		})
	}

	app := c.(*middleware.AppContext).App
	entries, err := app.History.Recent(c.Request().Context(), params.Limit)
	if err != nil {
		logger.Error("Failed to load question history", "err", err)
		return c.JSON(http.StatusInternalServerError, historyResponse{
			Message: "Internal server error",
			Entries: []history.Entry{},
		})
	}

	return c.JSON(http.StatusOK, historyResponse{
		Message: "OK",
		Entries: entries,
	})
}
