package account

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// HashPassword returns the bcrypt hash of plain.
func HashPassword(plain string) (string, error) {
	if len(plain) < MinPasswordLength {
		return "", errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must have at least %d characters", MinPasswordLength))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errs.NewValueIsInvalidErrorWithCause("password", err)
		}
		return "", err
	}
	return string(hash), nil
}

func passwordMatches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
