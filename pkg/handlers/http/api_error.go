package http

import (
	"github.com/NeuralTrust/FrontEndScanner/pkg/domain/apierror"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// writeAPIError renders typed API errors with their own status. Anything else
// is logged and reported as an internal error.
func writeAPIError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	if apiErr, ok := apierror.As(err); ok {
		return c.Status(apiErr.StatusCode()).JSON(apiErr)
	}
	logger.WithError(err).Error("unexpected api error")
	internal := apierror.New(apierror.Internal, "")
	return c.Status(internal.StatusCode()).JSON(internal)
}
