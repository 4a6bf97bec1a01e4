package middleware

import (
	"github.com/NeuralTrust/FrontEndScanner/pkg/common"
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/apierror"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type panicRecoverMiddleware struct {
	logger *logrus.Logger
}

func NewPanicRecoverMiddleware(logger *logrus.Logger) Middleware {
	return &panicRecoverMiddleware{logger: logger}
}

// Middleware turns a panicking handler into an internal_error response.
func (m *panicRecoverMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			m.logger.WithFields(logrus.Fields{
				"panic":      r,
				"method":     c.Method(),
				"path":       c.Path(),
				"request_id": c.Get(common.RequestIDHeader),
			}).Error("panic recovered while serving request")

			internal := apierror.New(apierror.Internal, "")
			err = c.Status(internal.StatusCode()).JSON(internal)
		}()

		return c.Next()
	}
}
