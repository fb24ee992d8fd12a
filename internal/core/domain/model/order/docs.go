// Package order provides the Order aggregate as seen by the status workflow engine.
//
// Orders are owned by the storefront's order subsystem; this package models only the
// part the workflow needs: identity, customer contact data used in notifications, and
// the current status slug. Every change of that slug produces a StatusChange, the
// append-only audit entry that must be persisted in the same transaction as the order.
//
// Key rules:
//   - An order always has exactly one current status.
//   - Moving an order to the status it already has is rejected.
//   - The initial status is recorded as a StatusChange with no previous status.
package order
