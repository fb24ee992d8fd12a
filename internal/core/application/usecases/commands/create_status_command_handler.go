package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CreateStatusCommandHandler persists a new custom status. Core statuses only come
// from migrations, so everything created here is non-core.
type CreateStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

func NewCreateStatusCommandHandler(uowFactory StatusUoWFactory) CreateStatusCommandHandler {
	return CreateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stored status. A duplicate slug or an unknown email template is
// reported as a validation error.
func (h *CreateStatusCommandHandler) Handle(ctx context.Context, cmd CreateStatusCommand) (*status.Status, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := ensureTemplateExists(ctx, uow.EmailTemplateRepository(), cmd.Definition().EmailTemplateID); err != nil {
		return nil, err
	}

	st, err := status.NewStatus(cmd.StatusID(), cmd.Slug(), cmd.Definition(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.StatusRepository().Add(ctx, st); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return st, nil
}

func ensureTemplateExists(ctx context.Context, repo ports.EmailTemplateRepository, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	_, err := repo.Get(ctx, *id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause("emailTemplateId", err)
	}
	return err
}
