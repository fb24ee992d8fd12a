// Package kernel provides the identity primitive shared by every storefront aggregate.
//
// UUID wraps github.com/google/uuid so that statuses, transitions, orders and history
// entries cannot be created with the nil identifier. The zero value is invalid and is
// rejected by Validate, which repositories call before persisting anything.
package kernel
