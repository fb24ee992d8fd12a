package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCreateTransitionCommandIsNotConstructed = errors.New(
	"CreateTransitionCommand must be created via NewCreateTransitionCommand constructor",
)

// CreateTransitionCommand adds a directed edge between two statuses.
type CreateTransitionCommand struct { //nolint:recvcheck //using for validation
	transitionID kernel.UUID
	fromStatusID kernel.UUID
	toStatusID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateTransitionCommand(transitionID, fromStatusID, toStatusID kernel.UUID) (CreateTransitionCommand, error) {
	if err := errors.Join(
		transitionID.Validate(),
		fromStatusID.Validate(),
		toStatusID.Validate(),
	); err != nil {
		return CreateTransitionCommand{}, err
	}

	return CreateTransitionCommand{
		transitionID: transitionID,
		fromStatusID: fromStatusID,
		toStatusID:   toStatusID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTransitionCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransitionCommandIsNotConstructed)
}

func (c CreateTransitionCommand) TransitionID() kernel.UUID {
	return c.transitionID
}

func (c CreateTransitionCommand) FromStatusID() kernel.UUID {
	return c.fromStatusID
}

func (c CreateTransitionCommand) ToStatusID() kernel.UUID {
	return c.toStatusID
}
