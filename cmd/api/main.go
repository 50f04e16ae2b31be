package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/icpkit/nns-proposals-backend/api"
	"github.com/icpkit/nns-proposals-backend/cfg"
	"github.com/icpkit/nns-proposals-backend/handler"
	"github.com/icpkit/nns-proposals-backend/nns"
)

func main() {
	// .env is optional, plain env vars still apply.
	_ = godotenv.Load()

	serviceCfg, err := cfg.New()
	if err != nil {
		panic(err.Error())
	}

	logger, err := newLogger(serviceCfg)
	if err != nil {
		panic("cannot init logger")
	}
	logger.Info("Start proposals API server...")

	defer func() {
		if err := recover(); err != nil {
			logger.Error("cannot recover")
		}
		if err := logger.Sync(); err != nil {
			logger.Error("cannot sync log")
		}
	}()

	if err := setupSentry(serviceCfg); err != nil {
		panic(err)
	}
	defer sentry.Flush(2 * time.Second)

	canisterID := serviceCfg.GovernanceCanisterID
	if !serviceCfg.IsComplete() {
		logger.Warn("GOVERNANCE_CANISTER_ID not set, falling back to mainnet NNS governance",
			zap.String("canisterID", cfg.DefaultGovernanceCanisterID))
		canisterID = cfg.DefaultGovernanceCanisterID
	}

	client, err := nns.NewClient(nns.Config{
		CanisterID: canisterID,
		ICURL:      serviceCfg.ICURL,
		Timeout:    serviceCfg.DefaultAPITimeout,
		Logger:     logger.With(zap.String("client", "nns")),
	})
	if err != nil {
		logger.Panic("cannot create governance client", zap.Error(err))
	}

	h, err := handler.New(handler.Config{
		Workers: serviceCfg.FetchWorkers,
		Logger:  logger.With(zap.String("handler", "proposals")),
	}, client)
	if err != nil {
		logger.Panic("cannot create proposals handler", zap.Error(err))
	}

	srv := &api.Server{}
	srv.SetHandler(h).SetLogger(logger)

	e := echo.New()
	go func() {
		api.Start(e, srv, serviceCfg)
	}()

	// Wait for interrupt signal to gracefully shutdown the server.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	waitExit := make(chan bool)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for range sigCh {
			cancel()
			if err := e.Shutdown(ctx); err != nil {
				logger.Error("cannot shutdown echo server", zap.Error(err))
			}
			waitExit <- true
		}
	}()
	<-waitExit
}

func setupSentry(cfg cfg.BackendConfig) error {
	opts := sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.ServerMode,
	}
	if err := sentry.Init(opts); err != nil {
		return err
	}
	return nil
}
