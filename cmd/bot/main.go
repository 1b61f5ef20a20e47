package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/wb-report-bot/infrastructure/integrator/telegram"
	"github.com/vfg2006/wb-report-bot/infrastructure/integrator/wildberries"
	"github.com/vfg2006/wb-report-bot/infrastructure/integrator/wildberries/wbclient"
	"github.com/vfg2006/wb-report-bot/internal/api"
	"github.com/vfg2006/wb-report-bot/internal/bot"
	"github.com/vfg2006/wb-report-bot/internal/config"
	"github.com/vfg2006/wb-report-bot/internal/scheduler"
	"github.com/vfg2006/wb-report-bot/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logrus.WithError(err).Fatal("Could not connect to the Telegram API")
	}
	logrus.WithField("account", botAPI.Self.UserName).Info("Telegram connection established")

	wbIntegrator := wildberries.New(cfg, wbclient.NewClient(cfg))
	messenger := telegram.New(cfg, botAPI)

	reporter := reporting.NewService(cfg, wbIntegrator, messenger)

	reportJobService := scheduler.NewReportJobService(reporter, cfg)
	if err := reportJobService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Could not start the report scheduler")
	} else {
		logrus.Info("Report scheduler started")
	}

	botService := bot.NewService(cfg, botAPI, wbIntegrator, messenger, reporter)
	go botService.Run(ctx)

	server, err := api.New(cfg, reportJobService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and anchors the working directory so
// the .env lookup works when launched from elsewhere.
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
