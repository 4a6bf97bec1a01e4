package middleware

import (
	"github.com/NeuralTrust/FrontEndScanner/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type securityMiddleware struct {
	logger *logrus.Logger
	policy string
}

// NewSecurityMiddleware sets the API content security policy on every
// response. An empty policy falls back to common.ContentSecurityPolicy.
func NewSecurityMiddleware(logger *logrus.Logger, policy string) Middleware {
	if policy == "" {
		policy = common.ContentSecurityPolicy
	}
	return &securityMiddleware{
		logger: logger,
		policy: policy,
	}
}

func (m *securityMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Content-Security-Policy", m.policy)
		c.Set("X-Content-Type-Options", "nosniff")
		return c.Next()
	}
}
