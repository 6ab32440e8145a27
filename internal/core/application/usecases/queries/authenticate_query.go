package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery resolves a bearer token to the actor behind it.
type AuthenticateQuery struct {
	token string
	guard guard.ConstructorGuard
}

func NewAuthenticateQuery(token string) (AuthenticateQuery, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return AuthenticateQuery{}, errs.ErrUnauthenticated
	}
	return AuthenticateQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

func (q AuthenticateQuery) Token() string { return q.token }

// AuthenticateQueryHandler looks the session up together with its user. The
// role and permissions are trusted as stored. Unknown and expired tokens
// both fail with errs.ErrUnauthenticated.
type AuthenticateQueryHandler struct {
	db    *gorm.DB
	clock func() time.Time
}

func NewAuthenticateQueryHandler(db *gorm.DB, clock func() time.Time) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db, clock: clock}
}

func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (access.Actor, error) {
	if err := query.Validate(); err != nil {
		return access.Actor{}, err
	}

	sql, args, err := sq.Select("u.id", "u.role", "u.permissions", "s.expires_at").
		From("sessions s").
		Join("users u ON u.id = s.user_id").
		Where(sq.Eq{"s.token": query.Token()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return access.Actor{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return access.Actor{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return access.Actor{}, err
		}
		return access.Actor{}, errs.ErrUnauthenticated
	}

	var (
		id          uuid.UUID
		role        string
		permissions pq.StringArray
		expiresAt   time.Time
	)
	if err = rows.Scan(&id, &role, &permissions, &expiresAt); err != nil {
		return access.Actor{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return access.Actor{}, err
	}
	session, err := account.RestoreSession(query.Token(), userID, expiresAt)
	if err != nil {
		return access.Actor{}, err
	}
	if session.IsExpiredAt(h.clock()) {
		return access.Actor{}, fmt.Errorf("%w: %w", errs.ErrUnauthenticated, account.ErrSessionExpired)
	}

	parsedRole, err := access.ParseRole(role)
	if err != nil {
		return access.Actor{}, err
	}
	perms := access.Permissions{}
	if parsedRole == access.Employee {
		perms = access.PermissionsFromNames(permissions)
	}
	return access.NewActor(userID, parsedRole, perms), nil
}
