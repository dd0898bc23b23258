package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrSettingsPasswordMissing        = errors.New("settings password missing")
	ErrSettingsPasswordInvalid        = errors.New("settings password invalid")
	ErrSettingsPasswordChangeInput    = errors.New("settings password change invalid input")
	ErrSettingsPasswordMismatch       = errors.New("settings password mismatch")
	ErrSettingsInvalidCurrentPassword = errors.New("settings invalid current password")
	ErrSettingsNewPasswordMustDiffer  = errors.New("settings new password must differ")
)

type SettingsUserRepository interface {
	UpdatePassword(userID uint, passwordHash string) error
	ClearAllDataAndResetGoals(userID uint) error
	DeleteAccountAndRelatedData(userID uint) error
}

type SettingsService struct {
	users SettingsUserRepository
}

func NewSettingsService(users SettingsUserRepository) *SettingsService {
	return &SettingsService{users: users}
}

func (service *SettingsService) ValidatePasswordChange(passwordHash string, currentPassword string, newPassword string, confirmPassword string) error {
	currentPassword = strings.TrimSpace(currentPassword)
	newPassword = strings.TrimSpace(newPassword)
	confirmPassword = strings.TrimSpace(confirmPassword)

	if currentPassword == "" || newPassword == "" || confirmPassword == "" {
		return ErrSettingsPasswordChangeInput
	}
	if newPassword != confirmPassword {
		return ErrSettingsPasswordMismatch
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(currentPassword)) != nil {
		return ErrSettingsInvalidCurrentPassword
	}
	if newPassword == currentPassword {
		return ErrSettingsNewPasswordMustDiffer
	}
	return ValidatePasswordStrength(newPassword)
}

func (service *SettingsService) UpdatePassword(userID uint, passwordHash string) error {
	return service.users.UpdatePassword(userID, passwordHash)
}

// ValidateAccountPassword guards the destructive settings operations; both
// clear-data and delete-account require the current password.
func (service *SettingsService) ValidateAccountPassword(passwordHash string, rawPassword string) error {
	password := strings.TrimSpace(rawPassword)
	if password == "" {
		return ErrSettingsPasswordMissing
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
		return ErrSettingsPasswordInvalid
	}
	return nil
}

func (service *SettingsService) ClearAllData(userID uint) error {
	return service.users.ClearAllDataAndResetGoals(userID)
}

func (service *SettingsService) DeleteAccount(userID uint) error {
	return service.users.DeleteAccountAndRelatedData(userID)
}
