package api

import (
	"errors"

	"github.com/arodena/fitdash/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.settingsService.ValidatePasswordChange(
		user.PasswordHash,
		input.CurrentPassword,
		input.NewPassword,
		input.ConfirmPassword,
	); err != nil {
		return apiError(c, settingsErrorStatus(err), err.Error())
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	if err := handler.settingsService.UpdatePassword(user.ID, string(passwordHash)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to change password")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ClearAllData(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := accountPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.settingsService.ValidateAccountPassword(user.PasswordHash, input.Password); err != nil {
		return apiError(c, settingsErrorStatus(err), err.Error())
	}

	if err := handler.settingsService.ClearAllData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear data")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := accountPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.settingsService.ValidateAccountPassword(user.PasswordHash, input.Password); err != nil {
		return apiError(c, settingsErrorStatus(err), err.Error())
	}

	if err := handler.settingsService.DeleteAccount(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func settingsErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSettingsInvalidCurrentPassword),
		errors.Is(err, services.ErrSettingsPasswordInvalid):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusBadRequest
	}
}
