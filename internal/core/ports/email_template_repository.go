package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/template"
)

// EmailTemplateRepository reads templates maintained by another subsystem.
type EmailTemplateRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*template.EmailTemplate, error)
}
