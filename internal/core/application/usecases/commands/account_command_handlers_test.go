package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingUser(t *testing.T, role access.Role, email, password string) *account.User {
	t.Helper()
	u, err := account.NewUser(kernel.NewUUID(), "Ana", email, password, role, access.Permissions{}, fixedClock())
	require.NoError(t, err)
	return u
}

func TestAccountCommandHandler_RegisterCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRegisterCustomerCommand(commands.Registration{
			Name: "Ana", Email: " Ana@Example.com ", Password: "secret123",
		})
		require.NoError(t, err)

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(repo).Once(),
			repo.On("GetByEmail", ctx, "ana@example.com").Return(nil, errs.NewObjectNotFoundError("email", "ana@example.com")).Once(),
			repo.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockAccountUoWFactory)
		factory.On("Create").Return(uow).Once()
		collector := notify.NewCollector()

		user, err := commands.NewAccountCommandHandler(factory, collector, fixedClock).RegisterCustomer(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, access.Customer, user.Role())
		assert.Equal(t, "ana@example.com", user.Email())
		assert.True(t, user.CheckPassword("secret123"))
		assert.Equal(t, fixedClock(), user.CreatedAt())
		assert.Equal(t, notify.Success, collector.Notifications()[0].Kind)
		uow.AssertExpectations(t)
	})

	t.Run("duplicate e-mail", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRegisterCustomerCommand(commands.Registration{
			Name: "Ana", Email: "ana@example.com", Password: "secret123",
		})
		require.NoError(t, err)

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("UserRepository").Return(repo)
		repo.On("GetByEmail", ctx, "ana@example.com").Return(existingUser(t, access.Customer, "ana@example.com", "other-pass"), nil)
		uow.On("Rollback", ctx).Return(nil)
		factory := new(MockAccountUoWFactory)
		factory.On("Create").Return(uow)
		collector := notify.NewCollector()

		user, err := commands.NewAccountCommandHandler(factory, collector, fixedClock).RegisterCustomer(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, user)
		assert.Equal(t, "Could not create account", collector.Notifications()[0].Title)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("short password", func(t *testing.T) {
		cmd, err := commands.NewRegisterCustomerCommand(commands.Registration{
			Name: "Ana", Email: "ana@example.com", Password: "123",
		})
		require.NoError(t, err)
		factory := new(MockAccountUoWFactory)
		collector := notify.NewCollector()

		_, err = commands.NewAccountCommandHandler(factory, collector, fixedClock).RegisterCustomer(t.Context(), cmd)

		require.Error(t, err)
		assert.Len(t, collector.Notifications(), 1)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestAccountCommandHandler_CreateEmployee(t *testing.T) {
	t.Run("admin creates an employee", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateEmployeeCommand(actorOf(access.Admin, access.Permissions{}),
			commands.Registration{Name: "Caio", Email: "caio@loja.com", Password: "secret123"},
			"employee", []string{"manage_orders", "view_reports"})
		require.NoError(t, err)

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(repo).Once()
		repo.On("GetByEmail", ctx, "caio@loja.com").Return(nil, errs.NewObjectNotFoundError("email", "caio@loja.com")).Once()
		repo.On("Add", ctx, mock.AnythingOfType("*account.User")).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockAccountUoWFactory)
		factory.On("Create").Return(uow).Once()

		user, err := commands.NewAccountCommandHandler(factory, notify.NewCollector(), fixedClock).CreateEmployee(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, access.Employee, user.Role())
		assert.Equal(t, access.Permissions{ManageOrders: true, ViewReports: true}, user.Permissions())
		repo.AssertExpectations(t)
	})

	t.Run("employee without the permission is refused", func(t *testing.T) {
		cmd, err := commands.NewCreateEmployeeCommand(actorOf(access.Employee, access.Permissions{ManageOrders: true}),
			commands.Registration{Name: "Caio", Email: "caio@loja.com", Password: "secret123"},
			"motoboy", nil)
		require.NoError(t, err)
		factory := new(MockAccountUoWFactory)

		_, err = commands.NewAccountCommandHandler(factory, notify.NewCollector(), fixedClock).CreateEmployee(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("admins are not created through the team panel", func(t *testing.T) {
		_, err := commands.NewCreateEmployeeCommand(actorOf(access.Admin, access.Permissions{}),
			commands.Registration{Name: "Caio", Email: "caio@loja.com", Password: "secret123"},
			"admin", nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown permission", func(t *testing.T) {
		_, err := commands.NewCreateEmployeeCommand(actorOf(access.Admin, access.Permissions{}),
			commands.Registration{Name: "Caio", Email: "caio@loja.com", Password: "secret123"},
			"employee", []string{"fly"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAccountCommandHandler_UpdateEmployeePermissions(t *testing.T) {
	ctx := t.Context()
	employee := existingUser(t, access.Employee, "caio@loja.com", "secret123")
	cmd, err := commands.NewUpdateEmployeePermissionsCommand(actorOf(access.Admin, access.Permissions{}),
		employee.ID(), []string{"manage_products"})
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", ctx, employee.ID()).Return(employee, nil).Once(),
		repo.On("Update", ctx, employee).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()
	collector := notify.NewCollector()

	require.NoError(t, commands.NewAccountCommandHandler(factory, collector, fixedClock).UpdateEmployeePermissions(ctx, cmd))

	assert.Equal(t, access.Permissions{ManageProducts: true}, employee.Permissions())
	assert.Equal(t, []notify.Notification{{Kind: notify.Success, Title: "Permissions updated"}}, collector.Notifications())
	uow.AssertExpectations(t)
}

func TestAccountCommandHandler_DeleteEmployee(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx := t.Context()
		motoboy := existingUser(t, access.Motoboy, "moto@loja.com", "secret123")
		cmd, err := commands.NewDeleteEmployeeCommand(actorOf(access.Admin, access.Permissions{}), motoboy.ID())
		require.NoError(t, err)

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(repo).Once(),
			repo.On("Get", ctx, motoboy.ID()).Return(motoboy, nil).Once(),
			repo.On("Delete", ctx, motoboy.ID()).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockAccountUoWFactory)
		factory.On("Create").Return(uow).Once()

		require.NoError(t, commands.NewAccountCommandHandler(factory, notify.NewCollector(), fixedClock).DeleteEmployee(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("self delete", func(t *testing.T) {
		admin := actorOf(access.Admin, access.Permissions{})
		cmd, err := commands.NewDeleteEmployeeCommand(admin, admin.UserID)
		require.NoError(t, err)
		factory := new(MockAccountUoWFactory)
		collector := notify.NewCollector()

		err = commands.NewAccountCommandHandler(factory, collector, fixedClock).DeleteEmployee(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrPolicyViolation)
		assert.Len(t, collector.Notifications(), 1)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("customers are not staff", func(t *testing.T) {
		ctx := t.Context()
		customer := existingUser(t, access.Customer, "cliente@example.com", "secret123")
		cmd, err := commands.NewDeleteEmployeeCommand(actorOf(access.Admin, access.Permissions{}), customer.ID())
		require.NoError(t, err)

		repo := new(MockUserRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("UserRepository").Return(repo)
		repo.On("Get", ctx, customer.ID()).Return(customer, nil)
		uow.On("Rollback", ctx).Return(nil)
		factory := new(MockAccountUoWFactory)
		factory.On("Create").Return(uow)

		err = commands.NewAccountCommandHandler(factory, notify.NewCollector(), fixedClock).DeleteEmployee(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPolicyViolation)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestAccountCommandHandler_Login(t *testing.T) {
	user := existingUser(t, access.Customer, "ana@example.com", "secret123")

	t.Run("success opens a session", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewLoginCommand("ANA@example.com", "secret123")
		require.NoError(t, err)

		users := new(MockUserRepository)
		sessions := new(MockSessionRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(users).Once(),
			users.On("GetByEmail", ctx, "ana@example.com").Return(user, nil).Once(),
			uow.On("SessionRepository").Return(sessions).Once(),
			sessions.On("Add", ctx, mock.AnythingOfType("account.Session")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockAccountUoWFactory)
		factory.On("Create").Return(uow).Once()
		collector := notify.NewCollector()

		session, got, err := commands.NewAccountCommandHandler(factory, collector, fixedClock).Login(ctx, cmd)

		require.NoError(t, err)
		assert.Same(t, user, got)
		assert.Len(t, session.Token(), 64)
		assert.True(t, session.UserID().IsEqual(user.ID()))
		assert.Equal(t, fixedClock().Add(account.SessionTTL), session.ExpiresAt())
		assert.Empty(t, collector.Notifications())
		uow.AssertExpectations(t)
	})

	testCases := []struct {
		name     string
		email    string
		password string
		found    *account.User
	}{
		{"wrong password", "ana@example.com", "nope-nope", user},
		{"unknown e-mail", "bia@example.com", "secret123", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewLoginCommand(tc.email, tc.password)
			require.NoError(t, err)

			users := new(MockUserRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil)
			uow.On("UserRepository").Return(users)
			if tc.found != nil {
				users.On("GetByEmail", ctx, tc.email).Return(tc.found, nil)
			} else {
				users.On("GetByEmail", ctx, tc.email).Return(nil, errs.NewObjectNotFoundError("email", tc.email))
			}
			uow.On("Rollback", ctx).Return(nil)
			factory := new(MockAccountUoWFactory)
			factory.On("Create").Return(uow)

			_, _, err = commands.NewAccountCommandHandler(factory, notify.NewCollector(), fixedClock).Login(ctx, cmd)

			require.ErrorIs(t, err, commands.ErrInvalidCredentials)
			require.ErrorIs(t, err, errs.ErrUnauthenticated)
			uow.AssertNotCalled(t, "SessionRepository")
		})
	}

	t.Run("missing fields", func(t *testing.T) {
		_, err := commands.NewLoginCommand(" ", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
