package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)

	suite.tracker = &MockAggregateTracker{}
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	burgerPrice, err := kernel.MoneyFromString("5.00")
	suite.Require().NoError(err)
	sodaPrice, err := kernel.MoneyFromString("1.50")
	suite.Require().NoError(err)

	burger, err := order.NewLineItem("Burger", burgerPrice, 2)
	suite.Require().NoError(err)
	soda, err := order.NewLineItem("Soda", sodaPrice, 1)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.LineItem{burger, soda},
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsSnapshot() {
	ctx := context.Background()
	o := suite.newOrder()

	err := suite.repository.Add(ctx, o)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(o.ID()))
	suite.True(restored.OwnerID().IsEqual(o.OwnerID()))
	suite.Equal(order.Placed, restored.Status())
	suite.Equal("11.50", restored.Total().String())

	items := restored.LineItems()
	suite.Require().Len(items, 2)
	suite.Equal("Burger", items[0].Name())
	suite.Equal("5.00", items[0].Price().String())
	suite.Equal(2, items[0].Quantity())

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Advance())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	restored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusMovedBackIsPersisted() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(o.ForceSetStatus(order.Completed))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.ForceSetStatus(order.Ready))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	restored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	o := suite.newOrder()
	err := suite.repository.Update(context.Background(), o)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
