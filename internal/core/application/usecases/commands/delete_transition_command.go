package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeleteTransitionCommandIsNotConstructed = errors.New(
	"DeleteTransitionCommand must be created via NewDeleteTransitionCommand constructor",
)

type DeleteTransitionCommand struct { //nolint:recvcheck //using for validation
	transitionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteTransitionCommand(transitionID kernel.UUID) (DeleteTransitionCommand, error) {
	if err := transitionID.Validate(); err != nil {
		return DeleteTransitionCommand{}, err
	}

	return DeleteTransitionCommand{
		transitionID: transitionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteTransitionCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTransitionCommandIsNotConstructed)
}

func (c DeleteTransitionCommand) TransitionID() kernel.UUID {
	return c.transitionID
}
