package router

import (
	"net/http"
	"time"

	"github.com/NeuralTrust/FrontEndScanner/pkg/common"
	handlers "github.com/NeuralTrust/FrontEndScanner/pkg/handlers/http"
	"github.com/NeuralTrust/FrontEndScanner/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

const (
	HealthPath      = "/health"
	AdminHealthPath = "/__/health"
	PingPath        = "/__/ping"
	VersionPath     = "/version"
)

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	if r.handlerTransport.CallbackHandler == nil || r.handlerTransport.ActionHandler == nil {
		return ErrMissingHandler
	}

	if r.middlewareTransport != nil {
		if r.middlewareTransport.PanicRecoverMiddleware != nil {
			router.Use(r.middlewareTransport.PanicRecoverMiddleware.Middleware())
		}
		if r.middlewareTransport.CORSMiddleware != nil {
			router.Use(r.middlewareTransport.CORSMiddleware.Middleware())
		}
		if r.middlewareTransport.SecurityMiddleware != nil {
			router.Use(r.middlewareTransport.SecurityMiddleware.Middleware())
		}
	}

	health := func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
	router.Get(HealthPath, health)
	router.Get(AdminHealthPath, health)
	router.Get(PingPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"message": "pong",
		})
	})

	if r.handlerTransport.GetVersionHandler != nil {
		router.Get(VersionPath, r.handlerTransport.GetVersionHandler.Handle)
	}

	router.Post(common.CallbackPath, r.handlerTransport.CallbackHandler.Handle)
	router.Get(common.ActionPath, r.handlerTransport.ActionHandler.Handle)
	router.Post(common.ActionPath, r.handlerTransport.ActionHandler.Handle)

	return nil
}
