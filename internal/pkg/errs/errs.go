package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrForbiddenFieldEdit     = errors.New("field is not editable")
	ErrInvalidTransition      = errors.New("status transition is not allowed")
	ErrReassignmentRequired   = errors.New("status has orders and requires a reassignment target")
	ErrReassignTargetNotFound = errors.New("reassignment target status not found")
	ErrOperationRejected      = errors.New("operation rejected")
)

// ObjectNotFoundError reports a lookup that produced no row.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(fmt.Sprintf("%s", e.ID)), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(fmt.Sprintf("%s", e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a malformed input value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprintf("%v", e.Value)), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ForbiddenFieldEditError lists the fields a patch touched that the target does not allow.
type ForbiddenFieldEditError struct {
	Entity string
	Fields []string
}

func NewForbiddenFieldEditError(entity string, fields []string) *ForbiddenFieldEditError {
	return &ForbiddenFieldEditError{Entity: entity, Fields: fields}
}

func (e *ForbiddenFieldEditError) Error() string {
	return fmt.Sprintf("%s: %s fields [%s]", ErrForbiddenFieldEdit, e.Entity, strings.Join(e.Fields, ", "))
}

func (e *ForbiddenFieldEditError) Unwrap() error {
	return ErrForbiddenFieldEdit
}

// InvalidTransitionError reports a missing edge while the transition graph is enforced.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ReassignmentRequiredError carries the number of orders that block a deletion.
type ReassignmentRequiredError struct {
	Slug       string
	OrderCount int64
}

func NewReassignmentRequiredError(slug string, orderCount int64) *ReassignmentRequiredError {
	return &ReassignmentRequiredError{Slug: slug, OrderCount: orderCount}
}

func (e *ReassignmentRequiredError) Error() string {
	return fmt.Sprintf("%s: %s has %d orders", ErrReassignmentRequired, e.Slug, e.OrderCount)
}

func (e *ReassignmentRequiredError) Unwrap() error {
	return ErrReassignmentRequired
}

// ReassignTargetNotFoundError names the reassignment slug that did not resolve.
type ReassignTargetNotFoundError struct {
	Slug string
}

func NewReassignTargetNotFoundError(slug string) *ReassignTargetNotFoundError {
	return &ReassignTargetNotFoundError{Slug: slug}
}

func (e *ReassignTargetNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrReassignTargetNotFound, sanitize(e.Slug))
}

func (e *ReassignTargetNotFoundError) Unwrap() error {
	return ErrReassignTargetNotFound
}

// OperationRejectedError reports a well-formed request the current state refuses.
type OperationRejectedError struct {
	Reason string
}

func NewOperationRejectedError(reason string) *OperationRejectedError {
	return &OperationRejectedError{Reason: reason}
}

func (e *OperationRejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOperationRejected, e.Reason)
}

func (e *OperationRejectedError) Unwrap() error {
	return ErrOperationRejected
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
