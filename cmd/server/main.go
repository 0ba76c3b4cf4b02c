package main

import (
	"github.com/talentmatch-ai/talentmatch/backend/internal/server"
	"github.com/talentmatch-ai/talentmatch/backend/internal/util"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/logger"
	"github.com/talentmatch-ai/talentmatch/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
