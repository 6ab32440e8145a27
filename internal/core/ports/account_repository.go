package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Add returns errs.ValueIsInvalidError when the e-mail is already registered.
	Add(ctx context.Context, user *account.User) error
	Update(ctx context.Context, user *account.User) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)
	GetByEmail(ctx context.Context, email string) (*account.User, error)

	// ListByRole returns users of the given roles ordered by name.
	ListByRole(ctx context.Context, roles ...access.Role) ([]*account.User, error)
}

// SessionRepository stores login sessions.
type SessionRepository interface {
	Add(ctx context.Context, session account.Session) error

	// Get returns errs.ObjectNotFoundError for unknown tokens.
	Get(ctx context.Context, token string) (account.Session, error)

	// DeleteExpired removes sessions that expired at or before now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
