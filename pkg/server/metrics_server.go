package server

import (
	"fmt"

	"github.com/NeuralTrust/FrontEndScanner/pkg/config"
	"github.com/NeuralTrust/FrontEndScanner/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const MetricsPath = "/metrics"

type MetricsServer struct {
	config *config.Config
	logger *logrus.Logger
	router *fiber.App
}

func NewMetricsServer(config *config.Config, logger *logrus.Logger) *MetricsServer {
	prometheus.Initialize()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	handler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(prometheus.Registry(), promhttp.HandlerOpts{}),
	)
	app.Get(MetricsPath, func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	})

	return &MetricsServer{config: config, logger: logger, router: app}
}

func (s *MetricsServer) Run() error {
	addr := fmt.Sprintf(":%d", s.config.Server.MetricsPort)
	s.logger.WithField("addr", addr).Info("Starting metrics server")
	return s.router.Listen(addr)
}

func (s *MetricsServer) Shutdown() error {
	return s.router.Shutdown()
}
