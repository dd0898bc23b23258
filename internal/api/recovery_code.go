package api

import (
	"fmt"

	"github.com/arodena/fitdash/internal/security"
	"golang.org/x/crypto/bcrypt"
)

// generateRecoveryCodeHash returns a fresh recovery code and its bcrypt hash.
// The plain code is shown to the user exactly once, at registration.
func generateRecoveryCodeHash() (string, string, error) {
	code, err := generateRecoveryCode()
	if err != nil {
		return "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return code, string(hash), nil
}

func generateRecoveryCode() (string, error) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	value, err := security.RandomString(12, alphabet)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("FIT-%s-%s-%s", value[:4], value[4:8], value[8:12]), nil
}
