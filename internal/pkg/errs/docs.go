// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the generic validation scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// and for the order status workflow:
//   - ForbiddenFieldEditError: a core status patch touched a protected field
//   - InvalidTransitionError: no edge exists while the transition graph is enforced
//   - ReassignmentRequiredError: a status with orders was deleted without a target
//   - ReassignTargetNotFoundError: the reassignment target slug does not exist
//   - OperationRejectedError: the current state refuses an otherwise valid request
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the error
//
// The HTTP adapter maps sentinels to response kinds and status codes.
package errs
