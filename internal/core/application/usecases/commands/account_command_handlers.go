package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/notify"
)

// ErrInvalidCredentials is returned by Login for an unknown e-mail or a wrong
// password; the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid e-mail or password", errs.ErrUnauthenticated)

// AccountCommandHandler manages users and sessions.
type AccountCommandHandler struct {
	uowFactory AccountUoWFactory
	notifier   notify.Notifier
	clock      func() time.Time
}

func NewAccountCommandHandler(uowFactory AccountUoWFactory, notifier notify.Notifier, clock func() time.Time) AccountCommandHandler {
	return AccountCommandHandler{uowFactory: uowFactory, notifier: notifier, clock: clock}
}

// RegisterCustomer creates a customer account.
func (h AccountCommandHandler) RegisterCustomer(ctx context.Context, cmd RegisterCustomerCommand) (*account.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r := cmd.Registration()
	user, err := account.NewUser(kernel.NewUUID(), r.Name, r.Email, r.Password,
		access.Customer, access.Permissions{}, h.clock())
	if err == nil {
		err = h.inTx(ctx, func(uow AccountUoW) error { return addUser(ctx, uow.UserRepository(), user) })
	}

	if err = finish(ctx, h.notifier, err,
		notify.Notification{Title: "Account created", Description: r.Email},
		notify.Notification{Title: "Could not create account"}); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateEmployee adds a staff account.
func (h AccountCommandHandler) CreateEmployee(ctx context.Context, cmd CreateEmployeeCommand) (*account.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r := cmd.Registration()
	var user *account.User
	err := cmd.Actor().Require(access.ManageEmployees)
	if err == nil {
		user, err = account.NewUser(kernel.NewUUID(), r.Name, r.Email, r.Password,
			cmd.Role(), cmd.Permissions(), h.clock())
	}
	if err == nil {
		err = h.inTx(ctx, func(uow AccountUoW) error { return addUser(ctx, uow.UserRepository(), user) })
	}

	if err = finish(ctx, h.notifier, err,
		notify.Notification{Title: "Employee created", Description: r.Name},
		notify.Notification{Title: "Could not create employee"}); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateEmployeePermissions replaces an employee's permissions.
func (h AccountCommandHandler) UpdateEmployeePermissions(ctx context.Context, cmd UpdateEmployeePermissionsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := cmd.Actor().Require(access.ManageEmployees)
	if err == nil {
		err = h.inTx(ctx, func(uow AccountUoW) error {
			repo := uow.UserRepository()
			user, getErr := repo.Get(ctx, cmd.UserID())
			if getErr != nil {
				return getErr
			}
			if updErr := user.UpdatePermissions(cmd.Permissions()); updErr != nil {
				return updErr
			}
			return repo.Update(ctx, user)
		})
	}

	return finish(ctx, h.notifier, err,
		notify.Notification{Title: "Permissions updated"},
		notify.Notification{Title: "Could not update permissions"})
}

// DeleteEmployee removes a staff account. Admins and customers cannot be
// removed this way, and nobody can remove themselves.
func (h AccountCommandHandler) DeleteEmployee(ctx context.Context, cmd DeleteEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := cmd.Actor().Require(access.ManageEmployees)
	if err == nil && cmd.Actor().UserID.IsEqual(cmd.UserID()) {
		err = errs.NewPolicyViolationError("you cannot delete your own account")
	}
	if err == nil {
		err = h.inTx(ctx, func(uow AccountUoW) error {
			repo := uow.UserRepository()
			user, getErr := repo.Get(ctx, cmd.UserID())
			if getErr != nil {
				return getErr
			}
			if r := user.Role(); r != access.Employee && r != access.Motoboy {
				return errs.NewPolicyViolationError(fmt.Sprintf("%s accounts cannot be deleted here", r))
			}
			return repo.Delete(ctx, user.ID())
		})
	}

	return finish(ctx, h.notifier, err,
		notify.Notification{Title: "Employee deleted"},
		notify.Notification{Title: "Could not delete employee"})
}

// Login checks the credentials and opens a session.
func (h AccountCommandHandler) Login(ctx context.Context, cmd LoginCommand) (account.Session, *account.User, error) {
	if err := cmd.Validate(); err != nil {
		return account.Session{}, nil, err
	}

	var (
		session account.Session
		user    *account.User
	)
	err := h.inTx(ctx, func(uow AccountUoW) error {
		var getErr error
		user, getErr = uow.UserRepository().GetByEmail(ctx, cmd.Email())
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			return ErrInvalidCredentials
		}
		if getErr != nil {
			return getErr
		}
		if !user.CheckPassword(cmd.Password()) {
			return ErrInvalidCredentials
		}

		var sessErr error
		session, sessErr = account.NewSession(user.ID(), h.clock())
		if sessErr != nil {
			return sessErr
		}
		return uow.SessionRepository().Add(ctx, session)
	})
	if err != nil {
		return account.Session{}, nil, err
	}
	return session, user, nil
}

func (h AccountCommandHandler) inTx(ctx context.Context, fn func(AccountUoW) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func addUser(ctx context.Context, repo ports.UserRepository, user *account.User) error {
	_, err := repo.GetByEmail(ctx, user.Email())
	if err == nil {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%s is already registered", user.Email()))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	return repo.Add(ctx, user)
}
