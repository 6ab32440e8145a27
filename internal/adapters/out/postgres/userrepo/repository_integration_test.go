package userrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/adapters/out/postgres/sessionrepo"
	"storefront/internal/adapters/out/postgres/userrepo"
	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/account"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var registeredAt = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = userrepo.NewGormUserRepository(db)
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_GetByEmail() {
	ctx := context.Background()
	u := suite.user("Caio", "caio@loja.com", access.Employee, access.Permissions{ManageOrders: true, ViewReports: true})

	suite.Require().NoError(suite.repository.Add(ctx, u))

	loaded, err := suite.repository.GetByEmail(ctx, " CAIO@loja.com")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(u.ID()))
	suite.Equal(access.Employee, loaded.Role())
	suite.Equal(access.Permissions{ManageOrders: true, ViewReports: true}, loaded.Permissions())
	suite.True(loaded.CheckPassword("secret123"))
	suite.True(registeredAt.Equal(loaded.CreatedAt()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.user("Ana", "ana@example.com", access.Customer, access.Permissions{})))

	err := suite.repository.Add(ctx, suite.user("Ana 2", "ana@example.com", access.Customer, access.Permissions{}))

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_Permissions() {
	ctx := context.Background()
	u := suite.user("Caio", "caio@loja.com", access.Employee, access.Permissions{ManageOrders: true})
	suite.Require().NoError(suite.repository.Add(ctx, u))

	suite.Require().NoError(u.UpdatePermissions(access.Permissions{}))
	suite.Require().NoError(suite.repository.Update(ctx, u))

	loaded, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal(access.Permissions{}, loaded.Permissions())
}

func (suite *UserRepositoryIntegrationTestSuite) TestListByRole_OrderedByName() {
	ctx := context.Background()
	for _, u := range []*account.User{
		suite.user("Zé", "ze@loja.com", access.Motoboy, access.Permissions{}),
		suite.user("Bia", "bia@loja.com", access.Employee, access.Permissions{}),
		suite.user("Ana", "ana@example.com", access.Customer, access.Permissions{}),
		suite.user("Admin", "admin@loja.com", access.Admin, access.Permissions{}),
	} {
		suite.Require().NoError(suite.repository.Add(ctx, u))
	}

	staff, err := suite.repository.ListByRole(ctx, access.Employee, access.Motoboy)

	suite.Require().NoError(err)
	suite.Require().Len(staff, 2)
	suite.Equal("Bia", staff[0].Name())
	suite.Equal("Zé", staff[1].Name())
}

func (suite *UserRepositoryIntegrationTestSuite) TestDelete_CascadesSessions() {
	ctx := context.Background()
	u := suite.user("Caio", "caio@loja.com", access.Motoboy, access.Permissions{})
	suite.Require().NoError(suite.repository.Add(ctx, u))
	sessions := sessionrepo.NewGormSessionRepository(suite.db)
	session, err := account.NewSession(u.ID(), registeredAt)
	suite.Require().NoError(err)
	suite.Require().NoError(sessions.Add(ctx, session))

	suite.Require().NoError(suite.repository.Delete(ctx, u.ID()))

	_, err = suite.repository.Get(ctx, u.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = sessions.Get(ctx, session.Token())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, u.ID()), errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestSessions_DeleteExpired() {
	ctx := context.Background()
	u := suite.user("Ana", "ana@example.com", access.Customer, access.Permissions{})
	suite.Require().NoError(suite.repository.Add(ctx, u))
	sessions := sessionrepo.NewGormSessionRepository(suite.db)

	old, err := account.NewSession(u.ID(), registeredAt)
	suite.Require().NoError(err)
	fresh, err := account.NewSession(u.ID(), registeredAt.Add(20*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(sessions.Add(ctx, old))
	suite.Require().NoError(sessions.Add(ctx, fresh))

	removed, err := sessions.DeleteExpired(ctx, registeredAt.Add(account.SessionTTL))

	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)
	loaded, err := sessions.Get(ctx, fresh.Token())
	suite.Require().NoError(err)
	suite.True(loaded.UserID().IsEqual(u.ID()))
	suite.True(fresh.ExpiresAt().Equal(loaded.ExpiresAt()))
}

func (suite *UserRepositoryIntegrationTestSuite) user(name, email string, role access.Role, perms access.Permissions) *account.User {
	u, err := account.NewUser(kernel.NewUUID(), name, email, "secret123", role, perms, registeredAt)
	suite.Require().NoError(err)
	return u
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
