package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"talentintel/intake-gateway/utils"
)

// ErrorHandler renders errors returned by handlers in the JSON envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return utils.RespondWithError(c, code, err.Error())
}
