package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand carries a partial update for one status.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	statusID kernel.UUID
	patch    status.Patch

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand rejects an empty patch up front.
func NewUpdateStatusCommand(statusID kernel.UUID, patch status.Patch) (UpdateStatusCommand, error) {
	cmd := UpdateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStatusID(statusID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

func (c UpdateStatusCommand) StatusID() kernel.UUID {
	return c.statusID
}

func (c UpdateStatusCommand) Patch() status.Patch {
	return c.patch
}

func (c *UpdateStatusCommand) setStatusID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.statusID = id
	return nil
}

func (c *UpdateStatusCommand) setPatch(p status.Patch) error {
	if p.IsEmpty() {
		return errs.NewValueIsRequiredError("patch must touch at least one field")
	}
	c.patch = p
	return nil
}
