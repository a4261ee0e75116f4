package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/peptiq/trendwatch/internal/application"
	"github.com/peptiq/trendwatch/internal/application/trend"
	"github.com/peptiq/trendwatch/internal/config"
	"github.com/peptiq/trendwatch/internal/domain/quality"
	openaic "github.com/peptiq/trendwatch/internal/infra/ai/openai"
	"github.com/peptiq/trendwatch/internal/infra/alert/slack"
	mysqlp "github.com/peptiq/trendwatch/internal/infra/db/mysql"
	postgresp "github.com/peptiq/trendwatch/internal/infra/db/postgres"
	"github.com/peptiq/trendwatch/internal/logging"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// connect record store; backend follows the DSN shape
	var db *sql.DB
	var source quality.RecordSource
	switch cfg.DatabaseDriver() {
	case "mysql":
		db, err = mysqlp.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("mysql connect error", zap.Error(err))
		}
		source = mysqlp.NewRecordRepository(db)
	default:
		db, err = postgresp.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("postgres connect error", zap.Error(err))
		}
		source = postgresp.NewRecordRepository(db)
	}
	defer db.Close()

	// alerting is optional: no webhook, no alerts, still a valid run
	var sink quality.AlertSink
	if cfg.SlackWebhookURL != "" {
		sink = slack.NewWebhook(cfg.SlackWebhookURL)
	} else {
		logger.Info("slack webhook not configured, alert delivery disabled")
	}

	svc := &trend.Service{
		Records:  source,
		Insights: openaic.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Alerts:   sink,
		Clock:    application.SystemClock{},
		Log:      logger,
	}

	res, err := svc.Run(ctx, cfg.LookbackDays)
	if err != nil {
		logger.Fatal("trend detection failed", zap.Error(err))
	}

	logger.Info("run finished",
		zap.String("run_id", res.RunID),
		zap.Int("tests", res.Total),
		zap.Int("declining", len(res.Declining)),
		zap.Int("variance", len(res.Variance)),
		zap.Int("safety", len(res.Safety)),
	)
}
