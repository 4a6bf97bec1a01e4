package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NeuralTrust/FrontEndScanner/pkg/app/action"
	"github.com/NeuralTrust/FrontEndScanner/pkg/app/callback"
	"github.com/NeuralTrust/FrontEndScanner/pkg/app/scripts"
	"github.com/NeuralTrust/FrontEndScanner/pkg/common"
	"github.com/NeuralTrust/FrontEndScanner/pkg/config"
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/alert"
	handlers "github.com/NeuralTrust/FrontEndScanner/pkg/handlers/http"
	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/alertsink"
	infraCache "github.com/NeuralTrust/FrontEndScanner/pkg/infra/cache"
	infraHistory "github.com/NeuralTrust/FrontEndScanner/pkg/infra/history"
	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/httpx"
	infraLogger "github.com/NeuralTrust/FrontEndScanner/pkg/infra/logger"
	"github.com/NeuralTrust/FrontEndScanner/pkg/listeners"
	"github.com/NeuralTrust/FrontEndScanner/pkg/listeners/frontend_scanner"
	"github.com/NeuralTrust/FrontEndScanner/pkg/middleware"
	"github.com/NeuralTrust/FrontEndScanner/pkg/server"
	"github.com/NeuralTrust/FrontEndScanner/pkg/server/router"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const (
	serverTypeProxy = "proxy"
	serverTypeAPI   = "api"
	serverTypeAll   = "all"

	historyJanitorInterval = time.Minute
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverType := getServerType()
	envFile := os.Getenv("ENV_FILE")

	if envFile == "" {
		envFile = ".env"
	}
	err := godotenv.Load(envFile)
	if err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger(serverType)

	// Load configuration
	if err := config.Load("./config"); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	// scripts
	fs := afero.NewOsFs()
	sourceReader := scripts.NewSourceReader(fs)
	aggregator := scripts.NewAggregator(sourceReader, cfg.Scanner.UserScriptsDir, logger)
	composer := scripts.NewComposer(aggregator, sourceReader, cfg.Scanner.ScannerScriptPath)
	toggle := config.NewToggle(cfg.Scanner.Enabled)

	// listeners
	listenerManager := listeners.NewManager(logger)
	if err := listenerManager.Register(
		frontend_scanner.NewFrontEndScannerListener(logger, toggle, composer),
	); err != nil {
		logger.Fatalf("Failed to register listener: %v", err)
	}

	// history
	historyRepository := infraHistory.NewMemoryRepository(cfg.History.TTL)
	go historyRepository.RunJanitor(ctx, historyJanitorInterval)

	// alerts
	sink, err := newAlertSink(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize alert sink: %v", err)
	}

	// upstream
	upstream := httpx.NewUpstream(
		httpx.WithTimeout(cfg.Upstream.Timeout),
		httpx.WithInsecureSkipVerify(cfg.Upstream.InsecureSkipVerify),
		httpx.WithMaxRedirects(cfg.Upstream.MaxRedirects),
	)
	breaker := httpx.NewCircuitBreaker("upstream", cfg.Upstream.BreakerTimeout, cfg.Upstream.MaxFailures)

	//middleware
	corsMiddleware := middleware.NewCORSGlobalMiddleware(
		cfg.CORS.AllowOrigins,
		cfg.CORS.AllowMethods,
		cfg.CORS.AllowHeaders,
		cfg.CORS.AllowCredentials,
		cfg.CORS.ExposeHeaders,
		cfg.CORS.MaxAge,
	)
	middlewareTransport := &middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
		CORSMiddleware:         corsMiddleware,
		SecurityMiddleware:     middleware.NewSecurityMiddleware(logger, common.ContentSecurityPolicy),
	}

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		// Proxy
		ForwardedHandler: handlers.NewForwardedHandler(handlers.ForwardedHandlerDeps{
			Logger:    logger,
			Upstream:  upstream,
			Breaker:   breaker,
			Listeners: listenerManager,
			Recorder:  historyRepository,
		}),
		// API
		CallbackHandler:   handlers.NewCallbackHandler(logger, callback.NewHandler(logger, sink, historyRepository)),
		ActionHandler:     handlers.NewActionHandler(logger, action.NewDispatcher(logger)),
		GetVersionHandler: handlers.NewGetVersionHandler(logger),
	}

	servers := initializeServers(serverType, cfg, logger, middlewareTransport, handlerTransport)

	g, _ := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(srv.Run)
	}
	go func() {
		if err := g.Wait(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	cancel()
	exitCode := 0
	for _, srv := range servers {
		if err := srv.Shutdown(); err != nil {
			fmt.Println("error shutting down server:", err)
			exitCode = 1
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	fmt.Println("server gracefully stopped")
}

func newAlertSink(cfg *config.Config, logger *logrus.Logger) (alert.Sink, error) {
	if cfg.Alerts.Sink != config.AlertSinkRedis {
		return alertsink.NewLogSink(logger), nil
	}
	client, err := infraCache.NewRedisClient(infraCache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, logger)
	if err != nil {
		return nil, err
	}
	return alertsink.NewRedisSink(client, cfg.Alerts.Channel, cfg.Alerts.ListKey, logger), nil
}

func getServerType() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return serverTypeAll
}

func initializeServers(
	serverType string,
	cfg *config.Config,
	logger *logrus.Logger,
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) []server.Server {

	proxy := func() server.Server {
		return server.NewProxyServer(server.ProxyServerDI{
			Config:  cfg,
			Logger:  logger,
			Routers: []router.ServerRouter{router.NewProxyRouter(middlewareTransport, handlerTransport)},
		})
	}
	api := func() server.Server {
		return server.NewAPIServer(server.APIServerDI{
			Config:  cfg,
			Logger:  logger,
			Routers: []router.ServerRouter{router.NewAPIRouter(middlewareTransport, handlerTransport)},
		})
	}

	var servers []server.Server
	switch serverType {
	case serverTypeProxy:
		servers = append(servers, proxy())
	case serverTypeAPI:
		servers = append(servers, api())
	default:
		servers = append(servers, proxy(), api())
	}
	if cfg.Metrics.Enabled {
		servers = append(servers, server.NewMetricsServer(cfg, logger))
	}
	return servers
}
