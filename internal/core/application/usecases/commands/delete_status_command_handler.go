package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// DeleteStatusResult describes what a deletion did.
type DeleteStatusResult struct {
	DeletedStatus      *status.Status
	ReassignedTo       *status.Slug
	ReassignedCount    int
	RemovedTransitions int64
}

// DeleteStatusCommandHandler runs the delete-and-reassign transaction script.
//
// Steps inside one transaction, in this order:
//  1. move every order on the status to the reassignment target
//  2. append one history row per moved order, changed by "System"
//  3. delete transition edges in both directions
//  4. delete the status row
//
// Any failure rolls back all of it. Events for moved orders are published after commit.
type DeleteStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.StatusEventPublisher
	logger     *slog.Logger
}

func NewDeleteStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.StatusEventPublisher,
	logger *slog.Logger,
) DeleteStatusCommandHandler {
	return DeleteStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle returns:
//   - errs.ObjectNotFoundError for an unknown status
//   - errs.OperationRejectedError for a core status
//   - errs.ReassignmentRequiredError when orders exist and no target was given
//   - errs.ReassignTargetNotFoundError when the target slug does not resolve
//   - errs.ValueIsInvalidError when the target is the status being deleted
func (h *DeleteStatusCommandHandler) Handle(ctx context.Context, cmd DeleteStatusCommand) (DeleteStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return DeleteStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DeleteStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statusRepo := uow.StatusRepository()
	st, err := statusRepo.Get(ctx, cmd.StatusID())
	if err != nil {
		return DeleteStatusResult{}, err
	}
	if st.IsCore() {
		return DeleteStatusResult{}, errs.NewOperationRejectedError(
			fmt.Sprintf("core status %s cannot be deleted", st.Slug()))
	}

	orderCount, err := uow.OrderRepository().CountByStatus(ctx, st.Slug())
	if err != nil {
		return DeleteStatusResult{}, err
	}

	target := cmd.ReassignTo()
	if orderCount > 0 && target == nil {
		return DeleteStatusResult{}, errs.NewReassignmentRequiredError(st.Slug().String(), orderCount)
	}
	if target != nil {
		if err = h.checkTarget(ctx, statusRepo, st, *target); err != nil {
			return DeleteStatusResult{}, err
		}
	}

	var moved []*order.StatusChange
	if target != nil && orderCount > 0 {
		moved, err = h.reassign(ctx, uow, st, *target)
		if err != nil {
			return DeleteStatusResult{}, err
		}
	}

	removed, err := uow.TransitionRepository().DeleteByStatus(ctx, st.ID())
	if err != nil {
		return DeleteStatusResult{}, err
	}

	if err = statusRepo.Delete(ctx, st.ID()); err != nil {
		return DeleteStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DeleteStatusResult{}, err
	}

	publishEntered(ctx, h.publisher, h.logger, moved...)

	return DeleteStatusResult{
		DeletedStatus:      st,
		ReassignedTo:       target,
		ReassignedCount:    len(moved),
		RemovedTransitions: removed,
	}, nil
}

func (h *DeleteStatusCommandHandler) checkTarget(
	ctx context.Context,
	repo ports.StatusRepository,
	deleting *status.Status,
	target status.Slug,
) error {
	if target == deleting.Slug() {
		return errs.NewValueIsInvalidErrorWithCause("reassignTo",
			fmt.Errorf("cannot reassign orders to the status being deleted (%s)", target))
	}

	_, err := repo.GetBySlug(ctx, target)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewReassignTargetNotFoundError(target.String())
	}
	return err
}

func (h *DeleteStatusCommandHandler) reassign(
	ctx context.Context,
	uow UoW,
	deleting *status.Status,
	target status.Slug,
) ([]*order.StatusChange, error) {
	ids, err := uow.OrderRepository().ReassignStatus(ctx, deleting.Slug(), target)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	notes := fmt.Sprintf("Status %q was deleted; order reassigned", deleting.Name())
	from := deleting.Slug()

	entries := make([]*order.StatusChange, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, order.NewReassignment(id, from, target, notes, now))
	}

	if len(entries) > 0 {
		if err = uow.StatusHistoryRepository().Add(ctx, entries...); err != nil {
			return nil, err
		}
	}

	return entries, nil
}
