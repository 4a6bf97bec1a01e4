package server

import (
	"fmt"

	"github.com/NeuralTrust/FrontEndScanner/pkg/config"
	"github.com/NeuralTrust/FrontEndScanner/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	APIServer struct {
		*BaseServer
	}
)

// NewAPIServer serves the callback and action endpoints used by the
// injected scanner script.
func NewAPIServer(di APIServerDI) *APIServer {
	return &APIServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
}

func (s *APIServer) Run() error {
	addr := fmt.Sprintf(":%d", s.Config.Server.APIPort)
	s.Logger.WithField("addr", addr).Info("Starting api server")
	return s.Router.Listen(addr)
}
