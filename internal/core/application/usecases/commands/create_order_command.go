package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
)

// CreateOrderCommand is the entry point used by the order subsystem to register a new
// order with the workflow engine.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "SF-1001",
//	    order.Customer{Name: "Ada", Email: "ada@example.com"}, 4599, "", "checkout")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	orderNumber   string
	customer      order.Customer
	totalCents    int64
	initialStatus status.Slug
	changedBy     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand defaults a blank initial status to PENDING_PAYMENT.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customer order.Customer,
	totalCents int64,
	initialSlug string,
	changedBy string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customer:   customer,
		totalCents: totalCents,
		changedBy:  changedBy,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setInitialStatus(initialSlug),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) TotalCents() int64 {
	return c.totalCents
}

func (c CreateOrderCommand) InitialStatus() status.Slug {
	return c.initialStatus
}

func (c CreateOrderCommand) ChangedBy() string {
	return c.changedBy
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = number
	return nil
}

func (c *CreateOrderCommand) setInitialStatus(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		c.initialStatus = status.PendingPayment
		return nil
	}

	slug, err := status.ParseSlug(raw)
	if err != nil {
		return err
	}
	c.initialStatus = slug
	return nil
}
