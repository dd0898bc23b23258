package api

import (
	"net/mail"
	"strings"
	"time"

	"github.com/arodena/fitdash/internal/models"
	"github.com/arodena/fitdash/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if credentials.Email == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}
	if err := services.ValidatePasswordStrength(credentials.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "weak password")
	}

	exists, err := handler.authService.RegistrationEmailExists(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	recoveryCode, recoveryHash, err := generateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}

	user := models.User{
		Email:             credentials.Email,
		PasswordHash:      string(passwordHash),
		RecoveryCodeHash:  recoveryHash,
		BMICategory:       models.BMICategoryUnknown,
		DailyCaloriesGoal: models.PlaceholderDailyCaloriesGoal,
		DailyStepsGoal:    models.DefaultDailyStepsGoal,
		DailyWaterGoalML:  models.DefaultDailyWaterGoalML,
		WeeklyWorkoutGoal: models.DefaultWeeklyWorkoutGoal,
		CreatedAt:         time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":          user,
		"needs_setup":   services.NeedsSetup(&user),
		"recovery_code": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.FindByNormalizedEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"user":        user,
		"needs_setup": services.NeedsSetup(&user),
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// ResetPassword exchanges the one-time recovery code for a new password. The
// used code is rotated and the replacement returned, to be shown exactly once.
func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email := normalizeEmail(input.Email)
	recoveryCode := strings.ToUpper(strings.TrimSpace(input.RecoveryCode))
	newPassword := strings.TrimSpace(input.NewPassword)
	if email == "" || recoveryCode == "" {
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery details")
	}
	if err := services.ValidatePasswordStrength(newPassword); err != nil {
		return apiError(c, fiber.StatusBadRequest, "weak password")
	}

	user, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery details")
	}
	if user.RecoveryCodeHash == "" {
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery details")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.RecoveryCodeHash), []byte(recoveryCode)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery details")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	nextRecoveryCode, nextRecoveryHash, err := generateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}

	if err := handler.authService.ResetCredentials(user.ID, string(passwordHash), nextRecoveryHash); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reset password")
	}

	return c.JSON(fiber.Map{
		"ok":            true,
		"recovery_code": nextRecoveryCode,
	})
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, err
	}
	input.Email = normalizeEmail(input.Email)
	input.Password = strings.TrimSpace(input.Password)
	return input, nil
}

func normalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}
