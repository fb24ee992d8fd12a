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

var ada = order.Customer{Name: "Ada", Email: "ada@example.com"}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("defaults initial status", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "SF-1", ada, 100, "", "")

		require.NoError(t, err)
		assert.Equal(t, status.PendingPayment, cmd.InitialStatus())
	})

	t.Run("requires order number", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "  ", ada, 100, "", "")

		require.ErrorIs(t, err, commands.ErrOrderNumberIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(id, "SF-1", ada, 4599, "", "checkout")
	pending := restoreStatus(status.PendingPayment, true)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.statuses.On("GetBySlug", ctx, status.PendingPayment).Return(pending, nil).Once(),
		f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		f.history.On("Add", ctx, mock.MatchedBy(func(entries []*order.StatusChange) bool {
			return len(entries) == 1 && entries[0].FromStatus() == nil && entries[0].ToStatus() == status.PendingPayment
		})).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.publisher.On("Publish", ctx, mock.MatchedBy(func(events []ports.StatusEntered) bool {
			return len(events) == 1 && events[0].Previous == nil
		})).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(f.factory, f.publisher, logging.Discard())
	ord, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, ord.ID().IsEqual(id))
	assert.Equal(t, status.PendingPayment, ord.Status())
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InactiveInitialStatus(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "SF-1", ada, 1, "ON_HOLD", "")
	onHold := restoreStatus("ON_HOLD", false, func(d *status.Definition) { d.IsActive = false })

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.statuses.On("GetBySlug", ctx, onHold.Slug()).Return(onHold, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(f.factory, f.publisher, logging.Discard())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOperationRejected)
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InvalidCustomer(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "SF-1", order.Customer{Name: "Ada"}, 1, "", "")

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.statuses.On("GetBySlug", ctx, status.PendingPayment).Return(restoreStatus(status.PendingPayment, true), nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(f.factory, f.publisher, logging.Discard())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := testContext(t)
	f := newFixture()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "SF-1", ada, 1, "", "")

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.statuses.On("GetBySlug", ctx, status.PendingPayment).Return(restoreStatus(status.PendingPayment, true), nil).Once()
	f.orders.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(f.factory, f.publisher, logging.Discard())
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	f.history.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}
