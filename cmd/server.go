package cmd

import (
	"context"
	"errors"
	"fmt"
	"lendboard/internal/aave"
	"lendboard/internal/config"
	"lendboard/internal/core"
	"lendboard/internal/dashboard"
	"lendboard/internal/db"
	"lendboard/internal/emitter"
	"lendboard/internal/ethereum"
	"lendboard/internal/http/handler"
	"lendboard/internal/http/handler/middleware"
	"lendboard/internal/http/payload"
	"lendboard/internal/http/server"
	"lendboard/internal/repository"
	"lendboard/internal/wallet"
	"lendboard/pkg/jwt"
	"lendboard/pkg/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// burst of the per client API rate limit
const apiBurst = 20

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		fmt.Printf("failed to create config: %s\n", err)
		return err
	}

	logger := log.NewZapLogger("lendboard", log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	dbConn, err := db.NewGormDB(config.DBDriver, config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewJournalRepository(dbConn)
	if err = repo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer client.Close()

	ethService := ethereum.NewEthService(logger, client,
		ethereum.WithReceiptTimeout(config.ReceiptTimeout))

	aaveClient, err := aave.NewClient(logger, config.AaveAPIURL,
		aave.WithCacheTTL(config.MarketCacheTTL),
		aave.WithRateLimit(config.AaveAPIRateLimit))
	if err != nil {
		logger.Errorw("failed to create protocol client", "error", err)
		return err
	}
	defer aaveClient.Close()

	// orchestrator
	var orchestratorOpts []core.OrchestratorOption
	if config.DebugBalanceCheck {
		orchestratorOpts = append(orchestratorOpts, core.WithBalanceCheck(ethService))
	}
	orchestrator := core.NewOrchestrator(logger, aaveClient, ethService, config.ChainID, orchestratorOpts...)

	lendboard := core.NewLendboard(logger, repo, jwtService, ethService)
	walletManager := wallet.NewManager(logger, config.WalletPrivateKey, config.WalletKeystoreDir)

	dashboardOpts := []dashboard.Option{
		dashboard.WithExplorerURL(config.ExplorerTxURL),
	}
	if config.KafkaBrokerAddress != "" {
		kafkaEmitter := emitter.NewKafkaEmitter(logger, config.KafkaBrokerAddress, config.KafkaTopic)
		defer kafkaEmitter.Close()
		dashboardOpts = append(dashboardOpts, dashboard.WithPublisher(kafkaEmitter))
	}
	board := dashboard.New(logger, config.ChainID, orchestrator, aaveClient, walletManager, lendboard, dashboardOpts...)
	defer board.Close()

	// handler
	lendHlr := handler.NewLendHandler(
		logger,
		payload.Decoder{},
		lendboard,
		board,
		walletManager)

	// register routes
	mux := http.NewServeMux()
	lendHlr.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRateLimitMiddleware(logger, config.APIRateLimit, apiBurst,
		middleware.WithTrustedProxies(config.TrustedProxies...),
	).RateLimit(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	logger.Infow("lendboard configured",
		"chain_id", config.ChainID,
		"db_driver", config.DBDriver,
		"balance_check", config.DebugBalanceCheck,
		"kafka", config.KafkaBrokerAddress != "")

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(logger, srv)
}

func run(logger *zap.SugaredLogger, server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case s := <-sig:
		logger.Infow("shutdown signal received", "signal", s.String())
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
