package account_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("hashes the password and normalizes the email", func(t *testing.T) {
		u, err := account.NewUser(kernel.NewUUID(), "Ana", " Ana@Loja.com ", "segredo1",
			access.Customer, access.Permissions{}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, "ana@loja.com", u.Email())
		assert.NotEqual(t, "segredo1", u.PasswordHash())
		assert.True(t, u.CheckPassword("segredo1"))
		assert.False(t, u.CheckPassword("segredo2"))
	})

	t.Run("drops permissions for non employees", func(t *testing.T) {
		u, err := account.NewUser(kernel.NewUUID(), "Rui", "rui@loja.com", "segredo1",
			access.Motoboy, access.Permissions{ManageSettings: true}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, access.Permissions{}, u.Permissions())
	})

	t.Run("reports every problem", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "", "not-an-email", "123",
			access.Role("chef"), access.Permissions{}, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password")
		assert.Contains(t, err.Error(), "role")
	})
}

func TestUser_UpdatePermissions(t *testing.T) {
	employee, err := account.NewUser(kernel.NewUUID(), "Bia", "bia@loja.com", "segredo1",
		access.Employee, access.Permissions{ManageOrders: true}, time.Now())
	require.NoError(t, err)

	require.NoError(t, employee.UpdatePermissions(access.Permissions{ManageProducts: true}))
	assert.Equal(t, access.Permissions{ManageProducts: true}, employee.Permissions())
	assert.True(t, employee.Actor().Can(access.ManageCatalog))
	assert.False(t, employee.Actor().Can(access.ManageOrders))

	admin, err := account.NewUser(kernel.NewUUID(), "Dono", "dono@loja.com", "segredo1",
		access.Admin, access.Permissions{}, time.Now())
	require.NoError(t, err)

	require.ErrorIs(t, admin.UpdatePermissions(access.Permissions{ViewReports: true}), errs.ErrPolicyViolation)
}

func TestRestoreUser_RequiresHash(t *testing.T) {
	_, err := account.RestoreUser(kernel.NewUUID(), "Ana", "ana@loja.com", "",
		access.Customer, access.Permissions{}, time.Now())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSession(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	userID := kernel.NewUUID()

	s, err := account.NewSession(userID, now)
	require.NoError(t, err)

	assert.Len(t, s.Token(), 64)
	assert.True(t, s.UserID().IsEqual(userID))
	assert.Equal(t, now.Add(24*time.Hour), s.ExpiresAt())
	assert.False(t, s.IsExpiredAt(now.Add(23*time.Hour)))
	assert.True(t, s.IsExpiredAt(now.Add(24*time.Hour)))

	other, err := account.NewSession(userID, now)
	require.NoError(t, err)
	assert.NotEqual(t, s.Token(), other.Token())

	_, err = account.NewSession(kernel.UUID{}, now)
	require.Error(t, err)
}
