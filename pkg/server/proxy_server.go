package server

import (
	"fmt"

	"github.com/NeuralTrust/FrontEndScanner/pkg/config"
	"github.com/NeuralTrust/FrontEndScanner/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	ProxyServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	ProxyServer struct {
		*BaseServer
	}
)

func NewProxyServer(di ProxyServerDI) *ProxyServer {
	return &ProxyServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
}

func (s *ProxyServer) Run() error {
	addr := fmt.Sprintf(":%d", s.Config.Server.ProxyPort)
	s.Logger.WithField("addr", addr).Info("Starting proxy server")
	return s.Router.Listen(addr)
}
