package cardController

import (
	"github.com/nashriel/secureBank/config"

	"golang.org/x/crypto/bcrypt"
)

// bcryptPin hashes a card pin; pins are never stored in clear.
func bcryptPin(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), config.AppConfig.SaltRound)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
