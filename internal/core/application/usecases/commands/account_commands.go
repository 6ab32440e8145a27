package commands

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrCreateEmployeeCommandIsNotConstructed = errors.New(
		"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
	)
	ErrUpdateEmployeePermissionsCommandIsNotConstructed = errors.New(
		"UpdateEmployeePermissionsCommand must be created via NewUpdateEmployeePermissionsCommand constructor",
	)
	ErrDeleteEmployeeCommandIsNotConstructed = errors.New(
		"DeleteEmployeeCommand must be created via NewDeleteEmployeeCommand constructor",
	)
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
)

// Registration holds what a person types into a sign-up form.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// RegisterCustomerCommand creates a customer account.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	registration Registration

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(r Registration) (RegisterCustomerCommand, error) {
	if err := r.validate(); err != nil {
		return RegisterCustomerCommand{}, err
	}
	return RegisterCustomerCommand{registration: r, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) Registration() Registration { return c.registration }

// CreateEmployeeCommand adds a member of staff. Only employee and motoboy
// accounts are created this way.
type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	actor        access.Actor
	registration Registration
	role         access.Role
	permissions  access.Permissions

	guard guard.ConstructorGuard
}

func NewCreateEmployeeCommand(
	actor access.Actor,
	r Registration,
	role string,
	permissions []string,
) (CreateEmployeeCommand, error) {
	parsedRole, roleErr := access.ParseRole(role)
	if roleErr == nil && parsedRole != access.Employee && parsedRole != access.Motoboy {
		roleErr = errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("staff accounts are employee or motoboy, got %s", parsedRole))
	}
	perms, permErr := access.ParsePermissions(permissions)

	if err := errors.Join(actor.Role.Validate(), r.validate(), roleErr, permErr); err != nil {
		return CreateEmployeeCommand{}, err
	}
	return CreateEmployeeCommand{
		actor:        actor,
		registration: r,
		role:         parsedRole,
		permissions:  perms,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

func (c CreateEmployeeCommand) Actor() access.Actor             { return c.actor }
func (c CreateEmployeeCommand) Registration() Registration      { return c.registration }
func (c CreateEmployeeCommand) Role() access.Role               { return c.role }
func (c CreateEmployeeCommand) Permissions() access.Permissions { return c.permissions }

// UpdateEmployeePermissionsCommand replaces an employee's permission flags.
type UpdateEmployeePermissionsCommand struct { //nolint:recvcheck //using for validation
	actor       access.Actor
	userID      kernel.UUID
	permissions access.Permissions

	guard guard.ConstructorGuard
}

func NewUpdateEmployeePermissionsCommand(
	actor access.Actor,
	userID kernel.UUID,
	permissions []string,
) (UpdateEmployeePermissionsCommand, error) {
	perms, permErr := access.ParsePermissions(permissions)
	if err := errors.Join(actor.Role.Validate(), userID.Validate(), permErr); err != nil {
		return UpdateEmployeePermissionsCommand{}, err
	}
	return UpdateEmployeePermissionsCommand{
		actor:       actor,
		userID:      userID,
		permissions: perms,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateEmployeePermissionsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEmployeePermissionsCommandIsNotConstructed)
}

func (c UpdateEmployeePermissionsCommand) Actor() access.Actor             { return c.actor }
func (c UpdateEmployeePermissionsCommand) UserID() kernel.UUID             { return c.userID }
func (c UpdateEmployeePermissionsCommand) Permissions() access.Permissions { return c.permissions }

// DeleteEmployeeCommand removes a staff account and its sessions.
type DeleteEmployeeCommand struct { //nolint:recvcheck //using for validation
	actor  access.Actor
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteEmployeeCommand(actor access.Actor, userID kernel.UUID) (DeleteEmployeeCommand, error) {
	if err := errors.Join(actor.Role.Validate(), userID.Validate()); err != nil {
		return DeleteEmployeeCommand{}, err
	}
	return DeleteEmployeeCommand{actor: actor, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEmployeeCommandIsNotConstructed)
}

func (c DeleteEmployeeCommand) Actor() access.Actor { return c.actor }
func (c DeleteEmployeeCommand) UserID() kernel.UUID { return c.userID }

// LoginCommand exchanges credentials for a session token.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(email, password string) (LoginCommand, error) {
	var problems []error
	if strings.TrimSpace(email) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(problems...); err != nil {
		return LoginCommand{}, err
	}
	return LoginCommand{email: account.NormalizeEmail(email), password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Email() string    { return c.email }
func (c LoginCommand) Password() string { return c.password }

func (r Registration) validate() error {
	var problems []error
	if strings.TrimSpace(r.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(r.Email) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if r.Password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	return errors.Join(problems...)
}
