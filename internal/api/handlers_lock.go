package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-app/selene/internal/services"
)

type unlockInput struct {
	Passphrase string `json:"passphrase"`
}

func (handler *Handler) Unlock(c *fiber.Ctx) error {
	if !handler.lock.Enabled() {
		return c.JSON(fiber.Map{"locked": false})
	}

	var input unlockInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	token, err := handler.lock.Unlock(input.Passphrase, handler.now())
	if errors.Is(err, services.ErrLockPassphraseInvalid) {
		return apiError(c, fiber.StatusUnauthorized, "invalid passphrase")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "unlock failed")
	}

	return c.JSON(fiber.Map{"token": token})
}
