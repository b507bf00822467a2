// Command flashdemo serves a small site that collects flash notifications
// per request and delivers them as HTML, JSON or DataStar patches.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dmitrymomot/flashbag/pkg/config"
	"github.com/dmitrymomot/flashbag/pkg/environment"
	"github.com/dmitrymomot/flashbag/pkg/flash"
	"github.com/dmitrymomot/flashbag/pkg/httpserver"
	"github.com/dmitrymomot/flashbag/pkg/logger"
	"github.com/dmitrymomot/flashbag/pkg/requestid"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"flashdemo"`
	LogLevel string `env:"LOG_LEVEL"`
}

func main() {
	if err := config.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to load .env", logger.Error(err))
		os.Exit(1)
	}

	var app appConfig
	config.MustLoad(&app)
	env := environment.Parse(app.Env)

	log := logger.New(
		logger.WithEnvironment(env, app.Name),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	flashCfg, err := flash.LoadConfig()
	if err != nil {
		log.Error("failed to load flash config", logger.Error(err))
		os.Exit(1)
	}

	var srvCfg httpserver.Config
	config.MustLoad(&srvCfg)

	settings := flash.NewSettings(flashCfg)
	router := newRouter(env, settings, newViews(), log)

	srv := httpserver.New(srvCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
