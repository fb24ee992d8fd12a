package commands

import (
	"context"
)

// DeleteTransitionCommandHandler removes one edge. Unknown ids yield errs.ObjectNotFoundError.
type DeleteTransitionCommandHandler struct {
	uowFactory StatusUoWFactory
}

func NewDeleteTransitionCommandHandler(uowFactory StatusUoWFactory) DeleteTransitionCommandHandler {
	return DeleteTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteTransitionCommandHandler) Handle(ctx context.Context, cmd DeleteTransitionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	transitionRepo := uow.TransitionRepository()
	edge, err := transitionRepo.Get(ctx, cmd.TransitionID())
	if err != nil {
		return err
	}

	if err = transitionRepo.Delete(ctx, edge.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
