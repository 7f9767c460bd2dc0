package commands_test

import (
	"errors"
	"testing"

	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testImage = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="

func TestNewAttachProofCommand(t *testing.T) {
	_, err := commands.NewAttachProofCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewAttachProofCommand(kernel.NewUUID(), kernel.NewUUID(), testImage)
	require.NoError(t, err)
	assert.Equal(t, testImage, cmd.ImageData())
}

func TestAttachProofCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	messengerID := kernel.NewUUID()
	_, d := newTestDelivery(t, messengerID)

	cmd, err := commands.NewAttachProofCommand(d.ID(), messengerID, testImage)
	require.NoError(t, err)

	uow := newMockUoW()
	storage := new(MockProofStorage)
	dispatcher, publisher := new(MockEventDispatcher), new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		storage.On("Store", ctx, d.ID(), testImage).Return("s3://proofs/p1", nil).Once(),
		uow.deliveries.On("Update", ctx, d).Return(nil).Once(),
		dispatcher.On("Dispatch", ctx, uow, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachProofCommandHandler(factory, storage, newEvents(dispatcher, publisher), clock())
	got, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, got.Status())
	require.Len(t, got.ProofImages(), 1)
	assert.Equal(t, "s3://proofs/p1", got.ProofImages()[0].URL())
	assert.Equal(t, len(testImage), got.ProofImages()[0].Size())
	assert.Equal(t, testNow, got.ProofImages()[0].Timestamp())
	uow.assertAll(t)
	storage.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAttachProofCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	_, d := newTestDelivery(t, kernel.NewUUID())

	cmd, err := commands.NewAttachProofCommand(d.ID(), kernel.NewUUID(), testImage)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectRollbackOnly(ctx)
	uow.deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	storage := new(MockProofStorage)

	handler := commands.NewAttachProofCommandHandler(factory, storage, newEvents(new(MockEventDispatcher), new(MockEventPublisher)), clock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrNotDeliveryOwner)
	storage.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
	assert.False(t, d.HasProof())
	uow.assertAll(t)
}

func TestAttachProofCommandHandler_Handle_StorageError(t *testing.T) {
	ctx := t.Context()
	messengerID := kernel.NewUUID()
	_, d := newTestDelivery(t, messengerID)

	cmd, err := commands.NewAttachProofCommand(d.ID(), messengerID, testImage)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectRollbackOnly(ctx)
	uow.deliveries.On("Get", ctx, d.ID()).Return(d, nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	storage := new(MockProofStorage)
	storage.On("Store", ctx, d.ID(), testImage).Return("", errors.New("bucket unavailable")).Once()

	handler := commands.NewAttachProofCommandHandler(factory, storage, newEvents(new(MockEventDispatcher), new(MockEventPublisher)), clock())
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "bucket unavailable")
	assert.Equal(t, delivery.Assigned, d.Status())
	uow.assertAll(t)
}

func TestAttachProofCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAttachProofCommand(id, kernel.NewUUID(), testImage)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectRollbackOnly(ctx)
	uow.deliveries.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("delivery", id.String())).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachProofCommandHandler(factory, new(MockProofStorage), newEvents(new(MockEventDispatcher), new(MockEventPublisher)), clock())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
