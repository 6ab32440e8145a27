package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned for a User not built by NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a customer or a member of the store team.
//
// Permissions only mean something for employees; for every other role they
// are always empty.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         access.Role
	permissions  access.Permissions
	createdAt    time.Time

	isConstructed bool
}

// NewUser registers a user, hashing the plain password.
func NewUser(
	id kernel.UUID,
	name, email, password string,
	role access.Role,
	permissions access.Permissions,
	createdAt time.Time,
) (*User, error) {
	hash, hashErr := HashPassword(password)

	u, err := build(id, name, email, hash, role, permissions, createdAt)
	if err = errors.Join(err, hashErr); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rebuilds a user loaded from storage.
func RestoreUser(
	id kernel.UUID,
	name, email, passwordHash string,
	role access.Role,
	permissions access.Permissions,
	createdAt time.Time,
) (*User, error) {
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password hash")
	}
	return build(id, name, email, passwordHash, role, permissions, createdAt)
}

func build(
	id kernel.UUID,
	name, email, passwordHash string,
	role access.Role,
	permissions access.Permissions,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		passwordHash:  passwordHash,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}
	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role, permissions),
	); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate ensures the user was built by a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID                 { return u.id }
func (u *User) Name() string                    { return u.name }
func (u *User) Email() string                   { return u.email }
func (u *User) PasswordHash() string            { return u.passwordHash }
func (u *User) Role() access.Role               { return u.role }
func (u *User) Permissions() access.Permissions { return u.permissions }
func (u *User) CreatedAt() time.Time            { return u.createdAt }

// Actor returns the identity used for access decisions.
func (u *User) Actor() access.Actor {
	return access.NewActor(u.id, u.role, u.permissions)
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return passwordMatches(u.passwordHash, plain)
}

// UpdatePermissions replaces the permission flags of an employee.
func (u *User) UpdatePermissions(permissions access.Permissions) error {
	if u.role != access.Employee {
		return errs.NewPolicyViolationError(
			fmt.Sprintf("permissions only apply to employees, user is %s", u.role))
	}
	u.permissions = permissions
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an e-mail address", email))
	}
	u.email = email
	return nil
}

func (u *User) setRole(role access.Role, permissions access.Permissions) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	if role == access.Employee {
		u.permissions = permissions
	}
	return nil
}

// NormalizeEmail lowercases and trims an address so lookups match registration.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
