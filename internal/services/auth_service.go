package services

import (
	"github.com/arodena/fitdash/internal/models"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
	UpdateRecoveryCodeHash(userID uint, recoveryHash string) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) RegistrationEmailExists(email string) (bool, error) {
	return service.users.ExistsByNormalizedEmail(email)
}

func (service *AuthService) CreateUser(user *models.User) error {
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// ResetCredentials replaces the password and the recovery code hash together,
// so a used recovery code can never authorize a second reset.
func (service *AuthService) ResetCredentials(userID uint, passwordHash string, recoveryHash string) error {
	if err := service.users.UpdatePassword(userID, passwordHash); err != nil {
		return err
	}
	return service.users.UpdateRecoveryCodeHash(userID, recoveryHash)
}
