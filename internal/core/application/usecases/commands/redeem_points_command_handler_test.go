package commands_test

import (
	"testing"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/application/usecases/commands"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRedeemPointsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	account := accountWithBalance(t, userID, 300)
	cmd, err := commands.NewRedeemPointsCommand(userID, 200)
	require.NoError(t, err)

	repo := new(MockLoyaltyAccountRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("LoyaltyAccountRepository").Return(repo)
	repo.On("Get", mock.Anything, userID).Return(account, nil).Once()
	repo.On("Update", mock.Anything, account).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockLoyaltyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRedeemPointsCommandHandler(factory)
	discount, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 200.0, discount)
	assert.Equal(t, 100, account.Balance())
	uow.AssertExpectations(t)
}

func TestRedeemPointsCommandHandler_Handle_InsufficientBalance(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	account := accountWithBalance(t, userID, 150)
	cmd, err := commands.NewRedeemPointsCommand(userID, 200)
	require.NoError(t, err)

	repo := new(MockLoyaltyAccountRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("LoyaltyAccountRepository").Return(repo)
	repo.On("Get", mock.Anything, userID).Return(account, nil).Once()

	factory := new(MockLoyaltyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRedeemPointsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, loyalty.ErrInsufficientBalance)
	assert.Equal(t, 150, account.Balance())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRedeemPointsCommandHandler_Handle_NoAccount(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewRedeemPointsCommand(userID, 200)
	require.NoError(t, err)

	repo := new(MockLoyaltyAccountRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("LoyaltyAccountRepository").Return(repo)
	repo.On("Get", mock.Anything, userID).
		Return(nil, errs.NewObjectNotFoundError("loyalty account", userID.String())).Once()

	factory := new(MockLoyaltyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRedeemPointsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, loyalty.ErrInsufficientBalance)
}

func TestNewRedeemPointsCommand_NonPositivePoints(t *testing.T) {
	_, err := commands.NewRedeemPointsCommand(kernel.NewUUID(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewRedeemPointsCommand(kernel.NewUUID(), -5)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
