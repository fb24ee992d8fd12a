package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// CreateOrderCommandHandler stores a new order together with its initial history row
// and announces the initial status.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.StatusEventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.StatusEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the order creation command. The initial status must exist and be
// active, otherwise errs.OperationRejectedError is returned.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	initial, err := loadTargetStatus(ctx, uow.StatusRepository(), cmd.InitialStatus())
	if err != nil {
		return nil, err
	}

	ord, entry, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		cmd.Customer(),
		cmd.TotalCents(),
		initial.Slug(),
		cmd.ChangedBy(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return nil, err
	}
	if err = uow.StatusHistoryRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEntered(ctx, h.publisher, h.logger, entry)
	return ord, nil
}
