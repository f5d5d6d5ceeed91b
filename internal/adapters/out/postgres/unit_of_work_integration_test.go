package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres/agentrepo"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres/loyaltyrepo"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/agent"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{},
		&agentrepo.AgentDTO{}, &agentrepo.AgentPincodeDTO{},
		&loyaltyrepo.AccountDTO{}, &loyaltyrepo.EntryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, loyalty.DefaultConfig())
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE order_items, orders, agent_pincodes, agents, loyalty_entries, loyalty_accounts").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.AgentRepository())
	suite.NotNil(uow1.LoyaltyAccountRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)

	err = uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_CheckoutTransaction mirrors the checkout handler: order,
// agent and loyalty account all change within one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CheckoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	testAgent := createTestAgent()

	account, err := loyalty.NewAccount(testOrder.CustomerID(), loyalty.DefaultConfig())
	suite.Require().NoError(err)
	_, _, err = account.Award(testOrder.AmountPayable(), testOrder.ID(), time.Now())
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.AgentRepository().Add(ctx, testAgent)
	suite.Require().NoError(err)

	err = testOrder.AssignAgent(testAgent.ID())
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.LoyaltyAccountRepository().Add(ctx, account)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.Agent())
	suite.True(retrievedOrder.Agent().IsEqual(testAgent.ID()))

	retrievedAccount, err := newUow.LoyaltyAccountRepository().Get(ctx, testOrder.CustomerID())
	suite.Require().NoError(err)
	suite.Equal(account.Balance(), retrievedAccount.Balance())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	account, err := loyalty.NewAccount(testOrder.CustomerID(), loyalty.DefaultConfig())
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.LoyaltyAccountRepository().Add(ctx, account)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err, "Order should be visible inside the transaction")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.LoyaltyAccountRepository().Get(ctx, account.UserID())
	suite.Require().Error(err, "Account should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// createTestOrder creates a valid prepaid order bound for Mumbai.
func createTestOrder() *order.Order {
	ring, _ := order.NewItem(kernel.NewUUID(), "Gold Ring", 1, 12500)
	destination, _ := kernel.NewDestination("Mumbai", "400001")
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{ring},
		destination,
		order.Prepaid,
		order.RewardPointsUsed{},
		time.Now(),
	)
	return testOrder
}

// createTestAgent creates a valid agent covering Mumbai.
func createTestAgent() *agent.Agent {
	testAgent, _ := agent.NewAgent(kernel.NewUUID(), "Ravi", "Mumbai", []string{"400001"})
	return testAgent
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
