package commands_test

import (
	"testing"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/application/usecases/commands"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOrderPaidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ord := buildOrder(t, kernel.NewUUID(), order.Prepaid)
	cmd, err := commands.NewMarkOrderPaidCommand(ord.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		repo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderPaidCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, ord.IsPaid())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_CodOrderRejected(t *testing.T) {
	ctx := t.Context()
	ord := buildOrder(t, kernel.NewUUID(), order.CashOnDelivery)
	cmd, err := commands.NewMarkOrderPaidCommand(ord.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderPaidCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.False(t, ord.IsPaid())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkOrderPaidCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewMarkOrderPaidCommand(orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	repo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderPaidCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
