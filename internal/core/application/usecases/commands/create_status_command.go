package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/pkg/guard"
)

var ErrCreateStatusCommandIsNotConstructed = errors.New(
	"CreateStatusCommand must be created via NewCreateStatusCommand constructor",
)

// CreateStatusCommand registers a custom status.
//
// Example:
//
//	def := status.DefaultDefinition("Awaiting Proof")
//	def.Color = "#F59E0B"
//	cmd, err := NewCreateStatusCommand(kernel.NewUUID(), "", def)
//	// cmd.Slug() == "AWAITING_PROOF"
type CreateStatusCommand struct { //nolint:recvcheck //using for validation
	statusID   kernel.UUID
	slug       status.Slug
	definition status.Definition

	guard guard.ConstructorGuard
}

// NewCreateStatusCommand normalizes rawSlug, deriving it from the name when blank.
func NewCreateStatusCommand(statusID kernel.UUID, rawSlug string, def status.Definition) (CreateStatusCommand, error) {
	cmd := CreateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStatusID(statusID),
		cmd.setSlug(rawSlug, def.Name),
		cmd.setDefinition(def),
	); err != nil {
		return CreateStatusCommand{}, err
	}

	return cmd, nil
}

func (c CreateStatusCommand) Validate() error {
	return c.guard.Validate(ErrCreateStatusCommandIsNotConstructed)
}

func (c CreateStatusCommand) StatusID() kernel.UUID {
	return c.statusID
}

func (c CreateStatusCommand) Slug() status.Slug {
	return c.slug
}

func (c CreateStatusCommand) Definition() status.Definition {
	return c.definition
}

func (c *CreateStatusCommand) setStatusID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.statusID = id
	return nil
}

func (c *CreateStatusCommand) setSlug(raw, name string) error {
	slug, err := status.NormalizeSlug(raw, name)
	if err != nil {
		return err
	}
	c.slug = slug
	return nil
}

func (c *CreateStatusCommand) setDefinition(def status.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	c.definition = def
	return nil
}
