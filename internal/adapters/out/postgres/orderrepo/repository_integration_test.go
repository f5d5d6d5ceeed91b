package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.Prepaid)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestOrder(order.CashOnDelivery)
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal("mumbai", retrieved.Destination().City())
	suite.Equal("400001", retrieved.Destination().Pincode())
	suite.Equal(order.CashOnDelivery, retrieved.PaymentMethod())
	suite.Equal(order.Unpaid, retrieved.PaymentStatus())
	suite.Equal(order.Pending, retrieved.DeliveryStatus())
	suite.Nil(retrieved.Agent())
	suite.False(retrieved.ReturnRequest().Exists())
	suite.Len(retrieved.Items(), 2)
	suite.InDelta(original.ItemsTotal(), retrieved.ItemsTotal(), 0.001)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleSurvivesRoundTrip() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(order.Prepaid)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	agentID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignAgent(agentID))
	suite.Require().NoError(testOrder.MarkPaid())
	suite.Require().NoError(testOrder.MarkDelivered())
	suite.Require().NoError(testOrder.RequestReturn(order.Return, "stone missing", time.Now()))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NotNil(retrieved.Agent())
	suite.True(retrieved.Agent().IsEqual(agentID))
	suite.True(retrieved.IsPaid())
	suite.True(retrieved.IsDelivered())
	suite.True(retrieved.ReturnRequest().Exists())
	suite.Equal(order.Return, retrieved.ReturnRequest().Type())
	suite.Equal(order.ReturnPending, retrieved.ReturnRequest().Status())
	suite.Equal("stone missing", retrieved.ReturnRequest().Reason())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestOrder(order.Prepaid)

	err := suite.repository.Update(ctx, missing)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUnassigned_ReturnsBacklogOldestFirst() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	older := suite.createTestOrderAt(order.Prepaid, time.Now().Add(-time.Hour))
	newer := suite.createTestOrderAt(order.Prepaid, time.Now())
	assigned := suite.createTestOrder(order.Prepaid)
	suite.Require().NoError(assigned.AssignAgent(kernel.NewUUID()))

	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	backlog, err := suite.repository.GetAllUnassigned(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(backlog, 2)
	suite.Equal(older.ID(), backlog[0].ID())
	suite.Equal(newer.ID(), backlog[1].ID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountUndeliveredByAgent_CountsOnlyOpenOrders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	busyAgent := kernel.NewUUID()
	idleAgent := kernel.NewUUID()

	for range 2 {
		open := suite.createTestOrder(order.Prepaid)
		suite.Require().NoError(open.AssignAgent(busyAgent))
		suite.Require().NoError(suite.repository.Add(ctx, open))
	}

	delivered := suite.createTestOrder(order.Prepaid)
	suite.Require().NoError(delivered.AssignAgent(idleAgent))
	suite.Require().NoError(delivered.MarkPaid())
	suite.Require().NoError(delivered.MarkDelivered())
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	unassigned := suite.createTestOrder(order.Prepaid)
	suite.Require().NoError(suite.repository.Add(ctx, unassigned))

	loads, err := suite.repository.CountUndeliveredByAgent(ctx)
	suite.Require().NoError(err)

	suite.Equal(2, loads[busyAgent])
	suite.NotContains(loads, idleAgent)
	suite.Len(loads, 1)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a two-item order bound for Mumbai.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(method order.PaymentMethod) *order.Order {
	return suite.createTestOrderAt(method, time.Now())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderAt(
	method order.PaymentMethod, createdAt time.Time,
) *order.Order {
	ring, err := order.NewItem(kernel.NewUUID(), "Gold Ring", 1, 12500)
	suite.Require().NoError(err)
	chain, err := order.NewItem(kernel.NewUUID(), "Silver Chain", 2, 1800)
	suite.Require().NoError(err)

	destination, err := kernel.NewDestination("Mumbai", "400001")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{ring, chain},
		destination,
		method,
		order.RewardPointsUsed{},
		createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.ItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
