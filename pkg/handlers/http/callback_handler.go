package http

import (
	"github.com/NeuralTrust/FrontEndScanner/pkg/app/callback"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type callbackHandler struct {
	logger   *logrus.Logger
	callback callback.Handler
}

func NewCallbackHandler(logger *logrus.Logger, callback callback.Handler) Handler {
	return &callbackHandler{
		logger:   logger,
		callback: callback,
	}
}

// Handle receives findings posted by the injected scanner script.
func (h *callbackHandler) Handle(c *fiber.Ctx) error {
	requestURL := c.BaseURL() + c.OriginalURL()
	if err := h.callback.HandleCallback(c.UserContext(), c.Body(), requestURL); err != nil {
		return writeAPIError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
