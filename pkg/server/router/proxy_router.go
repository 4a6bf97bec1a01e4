package router

import (
	handlers "github.com/NeuralTrust/FrontEndScanner/pkg/handlers/http"
	"github.com/NeuralTrust/FrontEndScanner/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

type proxyRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

// NewProxyRouter sends every request to the forwarder. No local routes are
// registered so that proxied paths are never shadowed.
func NewProxyRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &proxyRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *proxyRouter) BuildRoutes(router *fiber.App) error {
	if r.handlerTransport.ForwardedHandler == nil {
		return ErrMissingHandler
	}
	if r.middlewareTransport != nil && r.middlewareTransport.PanicRecoverMiddleware != nil {
		router.Use(r.middlewareTransport.PanicRecoverMiddleware.Middleware())
	}
	router.Use(r.handlerTransport.ForwardedHandler.Handle)
	return nil
}
