package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/status"
)

// UpdateStatusCommandHandler applies a partial update to a status.
//
// Core statuses accept only the editable whitelist; any other touched field fails
// the whole update with errs.ForbiddenFieldEditError and nothing is written.
type UpdateStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

func NewUpdateStatusCommandHandler(uowFactory StatusUoWFactory) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateStatusCommandHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (*status.Status, error) {
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

	statusRepo := uow.StatusRepository()
	st, err := statusRepo.Get(ctx, cmd.StatusID())
	if err != nil {
		return nil, err
	}

	if err = st.ApplyPatch(cmd.Patch(), time.Now()); err != nil {
		return nil, err
	}

	if tplID, touched := cmd.Patch().EmailTemplateID.Get(); touched {
		if err = ensureTemplateExists(ctx, uow.EmailTemplateRepository(), tplID); err != nil {
			return nil, err
		}
	}

	if err = statusRepo.Update(ctx, st); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return st, nil
}
