package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/pkg/guard"
)

var ErrDeleteStatusCommandIsNotConstructed = errors.New(
	"DeleteStatusCommand must be created via NewDeleteStatusCommand constructor",
)

// DeleteStatusCommand retires a custom status, optionally moving its orders to
// another status.
type DeleteStatusCommand struct { //nolint:recvcheck //using for validation
	statusID   kernel.UUID
	reassignTo *status.Slug

	guard guard.ConstructorGuard
}

// NewDeleteStatusCommand treats a blank reassignTo as absent. A non-blank value is
// normalized like a slug on creation.
func NewDeleteStatusCommand(statusID kernel.UUID, reassignTo string) (DeleteStatusCommand, error) {
	cmd := DeleteStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStatusID(statusID),
		cmd.setReassignTo(reassignTo),
	); err != nil {
		return DeleteStatusCommand{}, err
	}

	return cmd, nil
}

func (c DeleteStatusCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStatusCommandIsNotConstructed)
}

func (c DeleteStatusCommand) StatusID() kernel.UUID {
	return c.statusID
}

// ReassignTo is nil when no target was given.
func (c DeleteStatusCommand) ReassignTo() *status.Slug {
	return c.reassignTo
}

func (c *DeleteStatusCommand) setStatusID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.statusID = id
	return nil
}

func (c *DeleteStatusCommand) setReassignTo(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	slug, err := status.NormalizeSlug(raw, "")
	if err != nil {
		return err
	}
	c.reassignTo = &slug
	return nil
}
