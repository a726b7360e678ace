package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/exchange-core/matching-engine/internal/app/loadgen"
	"github.com/exchange-core/matching-engine/internal/usecase/exchange"
	"github.com/exchange-core/matching-engine/pkg/config"
	"github.com/exchange-core/matching-engine/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	generator := loadgen.NewGenerator(exchange.NewExchange(), lg, loadgen.OptionsFromConfig(cfg))

	stats, err := generator.Run(ctx)
	if err != nil {
		lg.Error(err, logger.Field{Key: "operations", Value: stats.Operations})
	}

	lg.Info("loadgen finished",
		logger.Field{Key: "operations", Value: stats.Operations},
		logger.Field{Key: "submits", Value: stats.Submits},
		logger.Field{Key: "cancels", Value: stats.Cancels},
		logger.Field{Key: "rejectedCancels", Value: stats.RejectedCancels},
		logger.Field{Key: "nsPerOp", Value: stats.NsPerOp()},
	)
}
