package order

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/pkg/errs"
)

const maxOrderNumberLength = 64

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Customer is the contact data used when notifying about status changes.
type Customer struct {
	Name  string
	Email string
}

// Tracking holds optional shipment tracking data.
type Tracking struct {
	Number string
	URL    string
}

// Order is the aggregate root whose status the workflow engine controls.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Total is never negative
//   - Status always holds a valid slug
//   - Can only be created through NewOrder or RestoreOrder
//
// The current status is a denormalized copy of the latest StatusChange; callers must
// persist the StatusChange returned by NewOrder/ChangeStatus together with the order.
type Order struct {
	id          kernel.UUID
	orderNumber string
	status      status.Slug
	customer    Customer
	totalCents  int64
	tracking    Tracking
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates an order in its initial status and returns the history entry
// recording that status.
//
// Example:
//
//	o, initial, err := order.NewOrder(kernel.NewUUID(), "SF-1001",
//	    order.Customer{Name: "Ada", Email: "ada@example.com"}, 4599, status.PendingPayment, "", time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//	// persist o and initial in one transaction
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	totalCents int64,
	initial status.Slug,
	changedBy string,
	now time.Time,
) (*Order, *StatusChange, error) {
	o := &Order{
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomer(customer),
		o.setTotal(totalCents),
		o.setStatus(initial),
	); err != nil {
		return nil, nil, err
	}

	return o, newStatusChange(o.id, nil, o.status, "", changedBy, o.createdAt), nil
}

// RestoreOrder rebuilds an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	current status.Slug,
	customer Customer,
	totalCents int64,
	tracking Tracking,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		status:        current,
		customer:      customer,
		totalCents:    totalCents,
		tracking:      tracking,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the slug of the current status.
func (o *Order) Status() status.Slug {
	return o.status
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) TotalCents() int64 {
	return o.totalCents
}

func (o *Order) Tracking() Tracking {
	return o.tracking
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to another status and returns the history entry that
// must be stored with it.
//
// This method enforces the following business rules:
//   - The target slug must be valid
//   - The target must differ from the current status
//
// Whether the target exists, is active, or is reachable through the transition graph
// is checked by the caller, which has access to the status registry.
//
// Example:
//
//	change, err := o.ChangeStatus(status.Paid, "payment captured", "", time.Now())
//	if err != nil {
//	    // Same status or malformed slug
//	}
func (o *Order) ChangeStatus(to status.Slug, notes, changedBy string, now time.Time) (*StatusChange, error) {
	if _, err := status.ParseSlug(to.String()); err != nil {
		return nil, err
	}
	if to == o.status {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order %s is already in status %s", o.orderNumber, to))
	}

	from := o.status
	o.status = to
	o.updatedAt = now.UTC()

	return newStatusChange(o.id, &from, to, notes, changedBy, o.updatedAt), nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if len(number) > maxOrderNumberLength {
		return errs.NewValueIsOutOfRangeError("orderNumber length", len(number), 1, maxOrderNumberLength)
	}
	o.orderNumber = number
	return nil
}

// setCustomer requires a name and a parseable email address.
func (o *Order) setCustomer(c Customer) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)

	if c.Name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerEmail", err)
	}
	o.customer = c
	return nil
}

func (o *Order) setTotal(totalCents int64) error {
	if totalCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalCents", fmt.Errorf("%d is negative", totalCents))
	}
	o.totalCents = totalCents
	return nil
}

func (o *Order) setStatus(slug status.Slug) error {
	parsed, err := status.ParseSlug(slug.String())
	if err != nil {
		return err
	}
	o.status = parsed
	return nil
}
