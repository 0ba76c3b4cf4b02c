package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentmatch-ai/talentmatch/backend/internal/history"
	"github.com/talentmatch-ai/talentmatch/backend/internal/server/middleware"
	"github.com/talentmatch-ai/talentmatch/backend/internal/util"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/engine"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/graph"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/logger"
)

// AskHandler answers one natural-language question over the talent
// graph.
func AskHandler(c echo.Context) error {
	type askRequest struct {
		Question string `json:"question" validate:"required,min=3"`
	}

	type askResponse struct {
		Message   string          `json:"message"`
		RequestID string          `json:"request_id,omitempty"`
		Category  engine.Category `json:"category,omitempty"`
		Answer    string          `json:"answer,omitempty"`
		Query     string          `json:"query,omitempty"`
		Params    map[string]any  `json:"params,omitempty"`
		Rows      []graph.Row     `json:"rows,omitempty"`
	}

	data := new(askRequest)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, askResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, askResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	requestID := util.NewRequestID()

	start := time.Now()
	result, err := app.Engine.Answer(ctx, data.Question)
	latency := time.Since(start)

	app.History.Record(ctx, history.Entry{
		RequestID: requestID,
		Question:  data.Question,
		Category:  string(result.Category),
		Query:     result.Query,
		Success:   result.Success,
		Answer:    result.Answer,
		LatencyMS: latency.Milliseconds(),
	})

	if err != nil {
		logger.Error("Question failed", "request_id", requestID, "category", result.Category, "err", err)

		var unsafeErr *engine.UnsafeQueryError
		if errors.As(err, &unsafeErr) {
			return c.JSON(http.StatusBadRequest, askResponse{
				Message:   "Question produced a query that was blocked for safety",
				RequestID: requestID,
				Category:  result.Category,
			})
		}
		return c.JSON(http.StatusInternalServerError, askResponse{
			Message:   "Internal server error",
			RequestID: requestID,
			Category:  result.Category,
		})
	}

	logger.Info("Question answered",
		"request_id", requestID, "category", result.Category,
		"rows", len(result.Rows), "latency_ms", latency.Milliseconds())

	return c.JSON(http.StatusOK, askResponse{
		Message:   "OK",
		RequestID: requestID,
		Category:  result.Category,
		Answer:    result.Answer,
		Query:     result.Query,
		Params:    result.Params,
		Rows:      result.Rows,
	})
}
