package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeleteHandler(f *fixture) commands.DeleteStatusCommandHandler {
	return commands.NewDeleteStatusCommandHandler(f.factory, f.publisher, logging.Discard())
}

func awaitingProof() *status.Status {
	return restoreStatus("AWAITING_PROOF", false, func(d *status.Definition) { d.Name = "Awaiting Proof" })
}

func TestNewDeleteStatusCommand(t *testing.T) {
	cmd, err := commands.NewDeleteStatusCommand(kernel.NewUUID(), "")
	require.NoError(t, err)
	assert.Nil(t, cmd.ReassignTo())

	cmd, err = commands.NewDeleteStatusCommand(kernel.NewUUID(), "processing")
	require.NoError(t, err)
	require.NotNil(t, cmd.ReassignTo())
	assert.Equal(t, status.Processing, *cmd.ReassignTo())

	_, err = commands.NewDeleteStatusCommand(kernel.NewUUID(), "!!")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeleteStatusCommandHandler_Handle_CoreIsRejected(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	paid := restoreStatus(status.Paid, true)
	cmd, _ := commands.NewDeleteStatusCommand(paid.ID(), "PROCESSING")

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.statuses.On("Get", ctx, paid.ID()).Return(paid, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := newDeleteHandler(f)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOperationRejected)
	f.orders.AssertNotCalled(t, "CountByStatus", mock.Anything, mock.Anything)
	f.statuses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestDeleteStatusCommandHandler_Handle_RequiresReassignment(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	st := awaitingProof()
	cmd, _ := commands.NewDeleteStatusCommand(st.ID(), "")

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.statuses.On("Get", ctx, st.ID()).Return(st, nil).Once()
	f.orders.On("CountByStatus", ctx, st.Slug()).Return(int64(3), nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := newDeleteHandler(f)
	_, err := h.Handle(ctx, cmd)

	var conflict *errs.ReassignmentRequiredError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(3), conflict.OrderCount)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestDeleteStatusCommandHandler_Handle_TargetNotFound(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	st := awaitingProof()
	cmd, _ := commands.NewDeleteStatusCommand(st.ID(), "NOWHERE")

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.statuses.On("Get", ctx, st.ID()).Return(st, nil).Once()
	f.orders.On("CountByStatus", ctx, st.Slug()).Return(int64(2), nil).Once()
	f.statuses.On("GetBySlug", ctx, status.Slug("NOWHERE")).Return(nil, errs.NewObjectNotFoundError("slug", "NOWHERE")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := newDeleteHandler(f)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrReassignTargetNotFound)
	f.orders.AssertNotCalled(t, "ReassignStatus", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestDeleteStatusCommandHandler_Handle_TargetIsSelf(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	st := awaitingProof()
	cmd, _ := commands.NewDeleteStatusCommand(st.ID(), "AWAITING_PROOF")

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.statuses.On("Get", ctx, st.ID()).Return(st, nil).Once()
	f.orders.On("CountByStatus", ctx, st.Slug()).Return(int64(1), nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := newDeleteHandler(f)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	f.assertExpectations(t)
}

func TestDeleteStatusCommandHandler_Handle_NoOrders(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	st := awaitingProof()
	cmd, _ := commands.NewDeleteStatusCommand(st.ID(), "")

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.statuses.On("Get", ctx, st.ID()).Return(st, nil).Once(),
		f.orders.On("CountByStatus", ctx, st.Slug()).Return(int64(0), nil).Once(),
		f.transitions.On("DeleteByStatus", ctx, st.ID()).Return(int64(2), nil).Once(),
		f.statuses.On("Delete", ctx, st.ID()).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := newDeleteHandler(f)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, st, result.DeletedStatus)
	assert.Nil(t, result.ReassignedTo)
	assert.Zero(t, result.ReassignedCount)
	assert.Equal(t, int64(2), result.RemovedTransitions)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestDeleteStatusCommandHandler_Handle_ReassignsOrders(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	st := awaitingProof()
	processing := restoreStatus(status.Processing, true)
	moved := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	cmd, _ := commands.NewDeleteStatusCommand(st.ID(), "PROCESSING")

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.statuses.On("Get", ctx, st.ID()).Return(st, nil).Once(),
		f.orders.On("CountByStatus", ctx, st.Slug()).Return(int64(3), nil).Once(),
		f.statuses.On("GetBySlug", ctx, status.Processing).Return(processing, nil).Once(),
		f.orders.On("ReassignStatus", ctx, st.Slug(), status.Processing).Return(moved, nil).Once(),
		f.history.On("Add", ctx, mock.MatchedBy(func(entries []*order.StatusChange) bool {
			if len(entries) != len(moved) {
				return false
			}
			for i, e := range entries {
				if !e.OrderID().IsEqual(moved[i]) ||
					e.ChangedBy() != order.ChangedBySystem ||
					*e.FromStatus() != st.Slug() ||
					e.ToStatus() != status.Processing ||
					e.Notes() != `Status "Awaiting Proof" was deleted; order reassigned` {
					return false
				}
			}
			return true
		})).Return(nil).Once(),
		f.transitions.On("DeleteByStatus", ctx, st.ID()).Return(int64(1), nil).Once(),
		f.statuses.On("Delete", ctx, st.ID()).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.publisher.On("Publish", ctx, mock.MatchedBy(func(events []ports.StatusEntered) bool {
			return len(events) == 3 && events[0].ChangedBy == order.ChangedBySystem
		})).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := newDeleteHandler(f)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 3, result.ReassignedCount)
	require.NotNil(t, result.ReassignedTo)
	assert.Equal(t, status.Processing, *result.ReassignedTo)
	assert.Equal(t, int64(1), result.RemovedTransitions)
	f.assertExpectations(t)
}

func TestDeleteStatusCommandHandler_Handle_FailureRollsBack(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	st := awaitingProof()
	processing := restoreStatus(status.Processing, true)
	cmd, _ := commands.NewDeleteStatusCommand(st.ID(), "PROCESSING")

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.statuses.On("Get", ctx, st.ID()).Return(st, nil).Once()
	f.orders.On("CountByStatus", ctx, st.Slug()).Return(int64(1), nil).Once()
	f.statuses.On("GetBySlug", ctx, status.Processing).Return(processing, nil).Once()
	f.orders.On("ReassignStatus", ctx, st.Slug(), status.Processing).Return([]kernel.UUID{kernel.NewUUID()}, nil).Once()
	f.history.On("Add", ctx, mock.Anything).Return(nil).Once()
	f.transitions.On("DeleteByStatus", ctx, st.ID()).Return(int64(0), errors.New("boom")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := newDeleteHandler(f)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.statuses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}
