package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle. Repositories obtained
// after Begin use the transaction; before Begin they run on the plain connection.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// It is a no-op when nothing is active, so it can always be deferred.
	Rollback(ctx context.Context) error

	StatusRepository() StatusRepository
	OrderRepository() OrderRepository
	StatusHistoryRepository() StatusHistoryRepository
	TransitionRepository() TransitionRepository
	EmailTemplateRepository() EmailTemplateRepository
}
