package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves one order to another status.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, "PAID", "captured by PSP", "")
//	if err != nil {
//	    return err
//	}
//	change, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	toStatus  status.Slug
	notes     string
	changedBy string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand normalizes toSlug the same way reassignment targets
// are ("processing" becomes PROCESSING). A blank changedBy becomes order.ChangedByAdmin.
func NewChangeOrderStatusCommand(orderID kernel.UUID, toSlug, notes, changedBy string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		notes:     strings.TrimSpace(notes),
		changedBy: strings.TrimSpace(changedBy),
		guard:     guard.NewConstructorGuard(),
	}
	if cmd.changedBy == "" {
		cmd.changedBy = order.ChangedByAdmin
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setToStatus(toSlug),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) ToStatus() status.Slug {
	return c.toStatus
}

func (c ChangeOrderStatusCommand) Notes() string {
	return c.notes
}

func (c ChangeOrderStatusCommand) ChangedBy() string {
	return c.changedBy
}

func (c *ChangeOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setToStatus(raw string) error {
	slug, err := status.NormalizeSlug(raw, "")
	if err != nil {
		return err
	}
	c.toStatus = slug
	return nil
}
