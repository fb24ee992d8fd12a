package commands

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/transition"
	"storefront/internal/pkg/errs"
)

// CreateTransitionCommandHandler stores a new edge after checking that both ends
// exist and that the pair is not already present.
type CreateTransitionCommandHandler struct {
	uowFactory StatusUoWFactory
}

func NewCreateTransitionCommandHandler(uowFactory StatusUoWFactory) CreateTransitionCommandHandler {
	return CreateTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateTransitionCommandHandler) Handle(ctx context.Context, cmd CreateTransitionCommand) (*transition.Transition, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	edge, err := transition.NewTransition(cmd.TransitionID(), cmd.FromStatusID(), cmd.ToStatusID(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statusRepo := uow.StatusRepository()
	if _, err = statusRepo.Get(ctx, edge.From()); err != nil {
		return nil, err
	}
	if _, err = statusRepo.Get(ctx, edge.To()); err != nil {
		return nil, err
	}

	transitionRepo := uow.TransitionRepository()
	exists, err := transitionRepo.Exists(ctx, edge.From(), edge.To())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewValueIsInvalidErrorWithCause("transition",
			fmt.Errorf("edge %s -> %s already exists", edge.From(), edge.To()))
	}

	if err = transitionRepo.Add(ctx, edge); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return edge, nil
}
