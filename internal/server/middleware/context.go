package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/labstack/echo/v4"

	"github.com/talentmatch-ai/talentmatch/backend/internal/history"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/ai"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/engine"
)

type AppUser struct {
	Subject string
	Role    string
}

// App bundles the long-lived dependencies every handler needs. It is
// built once at startup and shared across requests.
type App struct {
	Engine       *engine.Engine
	History      *history.Recorder
	AiClient     ai.Client
	Key          *keyfunc.Keyfunc
	MasterAPIKey string
}

type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app, nil}
			return next(cc)
		}
	}
}
