package commands_test

import (
	"errors"
	"testing"

	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/domain/model/bill"
	"pod/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateBillsCommand(t *testing.T) {
	_, err := commands.NewCreateBillsCommand(nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewCreateBillsCommand([]bill.Details{{AccountNumber: "A"}})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Len(t, cmd.Bills(), 1)
}

func TestCreateBillsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBillsCommand([]bill.Details{
		{AccountNumber: "ACC-1", CustomerName: "Maria", Address: "12 Rizal St"},
		{AccountNumber: "ACC-2", CustomerName: "Jose", Address: "4 Luna St", Type: bill.DisconnectionNotice},
	})
	require.NoError(t, err)

	first, second := newMockUoW(), newMockUoW()
	for _, uow := range []*MockUoW{first, second} {
		uow.expectTx(ctx)
		uow.bills.On("Add", ctx, mock.AnythingOfType("*bill.Bill")).Return(nil).Once()
	}

	factory := new(MockBillUoWFactory)
	factory.On("Create").Return(first).Once()
	factory.On("Create").Return(second).Once()

	result, err := commands.NewCreateBillsCommandHandler(factory, clock()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Count())
	assert.Empty(t, result.Failed)
	first.assertAll(t)
	second.assertAll(t)
	factory.AssertExpectations(t)
}

func TestCreateBillsCommandHandler_Handle_PartialFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBillsCommand([]bill.Details{
		{AccountNumber: "ACC-1", CustomerName: "Maria"},
		{AccountNumber: "ACC-2", CustomerName: "Jose", Address: "4 Luna St"},
		{AccountNumber: "ACC-3", CustomerName: "Ana", Address: "9 Mabini St"},
	})
	require.NoError(t, err)

	saved, broken := newMockUoW(), newMockUoW()
	saved.expectTx(ctx)
	saved.bills.On("Add", ctx, mock.AnythingOfType("*bill.Bill")).Return(nil).Once()
	broken.expectRollbackOnly(ctx)
	broken.bills.On("Add", ctx, mock.AnythingOfType("*bill.Bill")).Return(errors.New("disk full")).Once()

	factory := new(MockBillUoWFactory)
	factory.On("Create").Return(saved).Once()
	factory.On("Create").Return(broken).Once()

	result, err := commands.NewCreateBillsCommandHandler(factory, clock()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Count())
	require.Len(t, result.Failed, 2)

	assert.Equal(t, 0, result.Failed[0].Index)
	assert.Empty(t, result.Failed[0].ID)
	assert.Contains(t, result.Failed[0].Reason, "address")

	assert.Equal(t, 2, result.Failed[1].Index)
	assert.NotEmpty(t, result.Failed[1].ID)
	assert.Equal(t, "disk full", result.Failed[1].Reason)

	saved.assertAll(t)
	broken.assertAll(t)
}

func TestCreateBillsCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockBillUoWFactory)

	_, err := commands.NewCreateBillsCommandHandler(factory, clock()).Handle(t.Context(), commands.CreateBillsCommand{})

	require.ErrorIs(t, err, commands.ErrCreateBillsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
