package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(userID kernel.UUID, itemCount int) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), userID,
		"221B Baker Street", "221B Baker Street", time.Now().UTC())
	suite.Require().NoError(err)

	for i := 0; i < itemCount; i++ {
		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), i+1, 9.99)
		suite.Require().NoError(err)
		suite.Require().NoError(o.AddItem(item))
	}

	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(o *order.Order) {
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripWithItems() {
	ctx := context.Background()

	original := suite.createTestOrder(kernel.NewUUID(), 3)
	suite.addOrder(original)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.UserID(), retrieved.UserID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal("221B Baker Street", retrieved.ShippingAddress())
	suite.InDelta(original.TotalAmount(), retrieved.TotalAmount(), 1e-9)

	suite.Require().Len(retrieved.Items(), 3)
	for i, item := range retrieved.Items() {
		suite.Equal(original.Items()[i].ID(), item.ID())
		suite.Equal(original.Items()[i].BookID(), item.BookID())
		suite.Equal(i+1, item.Quantity())
	}
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_Persists() {
	ctx := context.Background()

	o := suite.createTestOrder(kernel.NewUUID(), 1)
	suite.addOrder(o)

	testCases := []struct {
		name   string
		target order.Status
	}{
		{"pending to processing", order.Processing},
		{"processing to shipped", order.Shipped},
		{"shipped to delivered", order.Delivered},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.Require().NoError(o.ChangeStatus(tc.target))
			suite.tracker.On("TrackAggregate", o.ID(), o).Once()
			suite.Require().NoError(suite.repository.Update(ctx, o))

			retrieved, err := suite.repository.Get(ctx, o.ID())
			suite.Require().NoError(err)
			suite.Equal(tc.target, retrieved.Status())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Cancellation_Persists() {
	ctx := context.Background()

	o := suite.createTestOrder(kernel.NewUUID(), 2)
	suite.addOrder(o)

	suite.Require().NoError(o.ChangeStatus(order.Cancelled))
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Update(ctx, o))

	retrieved, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
	suite.Len(retrieved.Items(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_Fails() {
	ctx := context.Background()

	o := suite.createTestOrder(kernel.NewUUID(), 1)

	err := suite.repository.Update(ctx, o)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByUser_ReturnsOnlyThatUsersOrders() {
	ctx := context.Background()

	userID := kernel.NewUUID()
	mine1 := suite.createTestOrder(userID, 1)
	mine2 := suite.createTestOrder(userID, 2)
	other := suite.createTestOrder(kernel.NewUUID(), 1)
	suite.addOrder(mine1)
	suite.addOrder(mine2)
	suite.addOrder(other)

	orders, err := suite.repository.GetAllByUser(ctx, userID)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 2)
	for _, o := range orders {
		suite.Equal(userID, o.UserID())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByUser_NoOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	orders, err := suite.repository.GetAllByUser(ctx, kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingOlderThan_FiltersByStatusAndAge() {
	ctx := context.Background()

	stale, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		"Old Lane 1", "Old Lane 1", time.Now().UTC().Add(-48*time.Hour))
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, 5.00)
	suite.Require().NoError(err)
	suite.Require().NoError(stale.AddItem(item))
	suite.addOrder(stale)

	fresh := suite.createTestOrder(kernel.NewUUID(), 1)
	suite.addOrder(fresh)

	shipped, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		"Old Lane 2", "Old Lane 2", time.Now().UTC().Add(-48*time.Hour))
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, 5.00)
	suite.Require().NoError(err)
	suite.Require().NoError(shipped.AddItem(item2))
	suite.addOrder(shipped)
	suite.Require().NoError(shipped.ChangeStatus(order.Shipped))
	suite.tracker.On("TrackAggregate", shipped.ID(), shipped).Once()
	suite.Require().NoError(suite.repository.Update(ctx, shipped))

	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	orders, err := suite.repository.GetAllPendingOlderThan(ctx, cutoff)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.Equal(stale.ID(), orders[0].ID())
	suite.Equal(order.Pending, orders[0].Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()

	o := suite.createTestOrder(kernel.NewUUID(), 2)
	suite.addOrder(o)

	suite.Require().NoError(suite.repository.Delete(ctx, o.ID()))

	_, err := suite.repository.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var orphanCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).
		Where("order_id = ?", o.ID().Bytes()).Count(&orphanCount).Error)
	suite.Zero(orphanCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
