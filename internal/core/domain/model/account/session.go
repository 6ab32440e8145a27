package account

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// SessionTTL is how long a login stays valid.
const SessionTTL = 24 * time.Hour

// ErrSessionExpired is returned when a bearer token is past its expiry.
var ErrSessionExpired = errors.New("session expired")

// Session binds an opaque bearer token to a user until it expires.
type Session struct {
	token     string
	userID    kernel.UUID
	expiresAt time.Time
}

// NewSession opens a session for userID that expires SessionTTL after now.
func NewSession(userID kernel.UUID, now time.Time) (Session, error) {
	if err := userID.Validate(); err != nil {
		return Session{}, err
	}
	token := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	return Session{token: token, userID: userID, expiresAt: now.UTC().Add(SessionTTL)}, nil
}

// RestoreSession rebuilds a session loaded from storage.
func RestoreSession(token string, userID kernel.UUID, expiresAt time.Time) (Session, error) {
	if token == "" {
		return Session{}, errs.NewValueIsRequiredError("token")
	}
	if err := userID.Validate(); err != nil {
		return Session{}, err
	}
	return Session{token: token, userID: userID, expiresAt: expiresAt.UTC()}, nil
}

func (s Session) Token() string        { return s.token }
func (s Session) UserID() kernel.UUID  { return s.userID }
func (s Session) ExpiresAt() time.Time { return s.expiresAt }

// IsExpiredAt reports whether the session is no longer valid at t.
func (s Session) IsExpiredAt(t time.Time) bool {
	return !t.Before(s.expiresAt)
}
