package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talentmatch-ai/talentmatch/backend/internal/history"
	mid "github.com/talentmatch-ai/talentmatch/backend/internal/server/middleware"
	"github.com/talentmatch-ai/talentmatch/backend/internal/util"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/ai"
	oai "github.com/talentmatch-ai/talentmatch/backend/pkg/ai/ollama"
	gai "github.com/talentmatch-ai/talentmatch/backend/pkg/ai/openai"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/engine"
	graphdb "github.com/talentmatch-ai/talentmatch/backend/pkg/graph/neo4j"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/logger"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var key *keyfunc.Keyfunc
	if authURL := util.GetEnv("AUTH_URL"); authURL != "" {
		k, err := keyfunc.NewDefault([]string{authURL + "/jwks"})
		if err != nil {
			logger.Fatal("Failed to load jwks keys", "err", err)
		}
		key = &k
	}

	graphClient, err := graphdb.NewClient(ctx, graphdb.NewClientParams{
		URI:      util.GetEnvString("NEO4J_URI", "bolt://localhost:7687"),
		Username: util.GetEnvString("NEO4J_USER", "neo4j"),
		Password: util.GetEnv("NEO4J_PASSWORD"),
		Database: util.GetEnv("NEO4J_DATABASE"),
	})
	if err != nil {
		logger.Fatal("Failed to connect to graph database", "err", err)
	}
	defer graphClient.Close(ctx)

	aiClient := newAIClient()

	engineOpts := []engine.Option{engine.WithConfig(engineConfig())}
	if aiClient != nil {
		engineOpts = append(engineOpts, engine.WithLLM(aiClient))
	}
	eng := engine.New(graphClient, engineOpts...)

	var recorder *history.Recorder
	if databaseURL := util.GetEnv("DATABASE_URL"); databaseURL != "" {
		recorder, err = history.NewRecorder(ctx, databaseURL)
		if err != nil {
			logger.Fatal("Failed to connect to history database", "err", err)
		}
		defer recorder.Close()
	} else {
		logger.Warn("DATABASE_URL not set, question history is disabled")
	}

	app := &mid.App{
		Engine:       eng,
		History:      recorder,
		AiClient:     aiClient,
		Key:          key,
		MasterAPIKey: util.GetEnv("MASTER_API_KEY"),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

// newAIClient builds the optional language-model client. Without one
// the engine still answers every question; it just skips the
// classification fallback and answer paraphrasing.
func newAIClient() ai.Client {
	switch util.GetEnv("AI_ADAPTER") {
	case "ollama":
		client, err := oai.NewClient(oai.NewClientParams{
			ChatModel:             util.GetEnv("AI_CHAT_MODEL"),
			BaseURL:               util.GetEnv("AI_CHAT_URL"),
			ApiKey:                util.GetEnv("AI_CHAT_KEY"),
			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 4)),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	case "openai":
		return gai.NewClient(gai.NewClientParams{
			ChatModel: util.GetEnv("AI_CHAT_MODEL"),
			ChatURL:   util.GetEnv("AI_CHAT_URL"),
			ChatKey:   util.GetEnv("AI_CHAT_KEY"),
		})
	}
	logger.Warn("AI_ADAPTER not set, running without a language model")
	return nil
}

func engineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.RiskHighLoad = util.GetEnvNumeric("RISK_HIGH_LOAD", cfg.RiskHighLoad)
	cfg.RiskMediumLoad = util.GetEnvNumeric("RISK_MEDIUM_LOAD", cfg.RiskMediumLoad)
	cfg.TeamRoleCap = int(util.GetEnvNumeric("TEAM_ROLE_CAP", float64(cfg.TeamRoleCap)))
	cfg.DefaultAllocation = util.GetEnvNumeric("DEFAULT_ALLOCATION", cfg.DefaultAllocation)
	cfg.PerformanceFloor = util.GetEnvNumeric("PERFORMANCE_FLOOR", cfg.PerformanceFloor)
	cfg.ResultLimit = int(util.GetEnvNumeric("RESULT_LIMIT", float64(cfg.ResultLimit)))
	cfg.PairLimit = int(util.GetEnvNumeric("PAIR_LIMIT", float64(cfg.PairLimit)))
	return cfg
}
