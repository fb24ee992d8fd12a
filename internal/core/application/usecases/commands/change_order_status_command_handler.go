package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/domain/model/transition"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler is the workflow core: it validates a status change,
// stores the new status together with its history row in one transaction, and
// publishes a StatusEntered event once the transaction is committed.
//
// Publishing is best effort. A failing publisher is logged and never turns a
// committed change into an error.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
	publisher  ports.StatusEventPublisher
	logger     *slog.Logger
}

func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	policy services.TransitionPolicy,
	publisher ports.StatusEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle returns the stored history entry.
//
// Errors:
//   - errs.ObjectNotFoundError: unknown order
//   - errs.OperationRejectedError: target status missing or inactive
//   - errs.ValueIsInvalidError: order already in the target status
//   - errs.InvalidTransitionError: graph enforced and no edge exists
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.StatusChange, error) {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	target, err := loadTargetStatus(ctx, uow.StatusRepository(), cmd.ToStatus())
	if err != nil {
		return nil, err
	}

	if h.policy.Enforced() && ord.Status() != target.Slug() {
		if err = h.checkEdge(ctx, uow, ord.Status(), target); err != nil {
			return nil, err
		}
	}

	change, err := ord.ChangeStatus(target.Slug(), cmd.Notes(), cmd.ChangedBy(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().UpdateStatus(ctx, ord); err != nil {
		return nil, err
	}
	if err = uow.StatusHistoryRepository().Add(ctx, change); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEntered(ctx, h.publisher, h.logger, change)
	return change, nil
}

func (h *ChangeOrderStatusCommandHandler) checkEdge(ctx context.Context, uow UoW, from status.Slug, target *status.Status) error {
	current, err := uow.StatusRepository().GetBySlug(ctx, from)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewInvalidTransitionError(from.String(), target.Slug().String())
	}
	if err != nil {
		return err
	}

	outbound, err := uow.TransitionRepository().ListFrom(ctx, current.ID())
	if err != nil {
		return err
	}

	return h.policy.Check(current, target, transition.NewGraph(outbound))
}

// loadTargetStatus maps a missing or inactive target to errs.OperationRejectedError.
func loadTargetStatus(ctx context.Context, repo ports.StatusRepository, slug status.Slug) (*status.Status, error) {
	target, err := repo.GetBySlug(ctx, slug)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewOperationRejectedError(fmt.Sprintf("status %s does not exist", slug))
	}
	if err != nil {
		return nil, err
	}
	if !target.IsActive() {
		return nil, errs.NewOperationRejectedError(fmt.Sprintf("status %s is not active", slug))
	}
	return target, nil
}

func publishEntered(ctx context.Context, publisher ports.StatusEventPublisher, logger *slog.Logger, changes ...*order.StatusChange) {
	if publisher == nil || len(changes) == 0 {
		return
	}

	events := make([]ports.StatusEntered, 0, len(changes))
	for _, c := range changes {
		events = append(events, ports.StatusEntered{
			OrderID:    c.OrderID(),
			Status:     c.ToStatus(),
			Previous:   c.FromStatus(),
			Notes:      c.Notes(),
			ChangedBy:  c.ChangedBy(),
			OccurredAt: c.CreatedAt(),
		})
	}

	if err := publisher.Publish(ctx, events...); err != nil {
		logger.WarnContext(ctx, "failed to publish status entered events",
			slog.Int("count", len(events)),
			slog.String("error", err.Error()))
	}
}
