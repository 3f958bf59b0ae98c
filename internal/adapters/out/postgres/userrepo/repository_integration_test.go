package userrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
	suite.repository = userrepo.NewGormUserRepository(db)
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) register(email, phone string) *account.User {
	u, err := account.RegisterUser(kernel.NewUUID(), "Asha", email, phone, "secret1", "secret1", time.Now())
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestFindByLogin_EmailOrPhone() {
	ctx := context.Background()
	u := suite.register("asha@example.com", "9800000001")
	suite.Require().NoError(suite.repository.Add(ctx, u))

	for _, login := range []string{"ASHA@example.com", "9800000001"} {
		got, err := suite.repository.FindByLogin(ctx, login)
		suite.Require().NoError(err)
		suite.True(u.ID().IsEqual(got.ID()))
		suite.NoError(got.Authenticate("secret1"))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestFindByLogin_Unknown() {
	_, err := suite.repository.FindByLogin(context.Background(), "ghost@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_Duplicates() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.register("asha@example.com", "9800000001")))

	err := suite.repository.Add(ctx, suite.register("Asha@Example.com", "9800000002"))
	var exists *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &exists)
	suite.Equal("email", exists.ParamName)

	err = suite.repository.Add(ctx, suite.register("other@example.com", "9800000001"))
	suite.Require().ErrorAs(err, &exists)
	suite.Equal("phone", exists.ParamName)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
