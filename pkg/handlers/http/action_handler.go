package http

import (
	"github.com/NeuralTrust/FrontEndScanner/pkg/app/action"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type actionHandler struct {
	logger     *logrus.Logger
	dispatcher action.Dispatcher
}

func NewActionHandler(logger *logrus.Logger, dispatcher action.Dispatcher) Handler {
	return &actionHandler{
		logger:     logger,
		dispatcher: dispatcher,
	}
}

func (h *actionHandler) Handle(c *fiber.Ctx) error {
	name := c.Params("name")
	params := make(map[string]interface{})
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})
	if c.Method() == fiber.MethodPost {
		c.Request().PostArgs().VisitAll(func(key, value []byte) {
			params[string(key)] = string(value)
		})
	}

	resp, err := h.dispatcher.HandleAction(c.UserContext(), name, params)
	if err != nil {
		return writeAPIError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
