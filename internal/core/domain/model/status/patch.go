package status

import (
	"storefront/internal/core/domain/model/kernel"
)

// Patch field names as exposed to API clients.
const (
	FieldName             = "name"
	FieldDescription      = "description"
	FieldIcon             = "icon"
	FieldColor            = "color"
	FieldBadgeColor       = "badgeColor"
	FieldIsPaid           = "isPaid"
	FieldIncludeInReports = "includeInReports"
	FieldAllowDownloads   = "allowDownloads"
	FieldSortOrder        = "sortOrder"
	FieldIsActive         = "isActive"
	FieldEmailTemplateID  = "emailTemplateId"
	FieldSendEmailOnEnter = "sendEmailOnEnter"
)

var coreEditable = map[string]struct{}{
	FieldDescription:      {},
	FieldEmailTemplateID:  {},
	FieldSendEmailOnEnter: {},
	FieldSortOrder:        {},
}

// IsCoreEditable reports whether field may be changed on a core status.
func IsCoreEditable(field string) bool {
	_, ok := coreEditable[field]
	return ok
}

// Patch is a partial update of a status definition. It never carries a slug.
// EmailTemplateID holds a nil pointer to unbind the template.
type Patch struct {
	Name             Optional[string]
	Description      Optional[string]
	Icon             Optional[string]
	Color            Optional[string]
	BadgeColor       Optional[string]
	IsPaid           Optional[bool]
	IncludeInReports Optional[bool]
	AllowDownloads   Optional[bool]
	SortOrder        Optional[int]
	IsActive         Optional[bool]
	EmailTemplateID  Optional[*kernel.UUID]
	SendEmailOnEnter Optional[bool]
}

// TouchedFields lists the provided fields in declaration order.
func (p Patch) TouchedFields() []string {
	touched := make([]string, 0, 12)
	add := func(set bool, name string) {
		if set {
			touched = append(touched, name)
		}
	}

	add(p.Name.IsSet(), FieldName)
	add(p.Description.IsSet(), FieldDescription)
	add(p.Icon.IsSet(), FieldIcon)
	add(p.Color.IsSet(), FieldColor)
	add(p.BadgeColor.IsSet(), FieldBadgeColor)
	add(p.IsPaid.IsSet(), FieldIsPaid)
	add(p.IncludeInReports.IsSet(), FieldIncludeInReports)
	add(p.AllowDownloads.IsSet(), FieldAllowDownloads)
	add(p.SortOrder.IsSet(), FieldSortOrder)
	add(p.IsActive.IsSet(), FieldIsActive)
	add(p.EmailTemplateID.IsSet(), FieldEmailTemplateID)
	add(p.SendEmailOnEnter.IsSet(), FieldSendEmailOnEnter)

	return touched
}

// IsEmpty reports whether the patch touches nothing.
func (p Patch) IsEmpty() bool {
	return len(p.TouchedFields()) == 0
}

// ForbiddenOnCore returns the touched fields that a core status does not allow.
func (p Patch) ForbiddenOnCore() []string {
	var forbidden []string
	for _, f := range p.TouchedFields() {
		if !IsCoreEditable(f) {
			forbidden = append(forbidden, f)
		}
	}
	return forbidden
}

func (p Patch) applyTo(d Definition) Definition {
	d.Name = p.Name.OrElse(d.Name)
	d.Description = p.Description.OrElse(d.Description)
	d.Icon = p.Icon.OrElse(d.Icon)
	d.Color = p.Color.OrElse(d.Color)
	d.BadgeColor = p.BadgeColor.OrElse(d.BadgeColor)
	d.IsPaid = p.IsPaid.OrElse(d.IsPaid)
	d.IncludeInReports = p.IncludeInReports.OrElse(d.IncludeInReports)
	d.AllowDownloads = p.AllowDownloads.OrElse(d.AllowDownloads)
	d.SortOrder = p.SortOrder.OrElse(d.SortOrder)
	d.IsActive = p.IsActive.OrElse(d.IsActive)
	d.EmailTemplateID = p.EmailTemplateID.OrElse(d.EmailTemplateID)
	d.SendEmailOnEnter = p.SendEmailOnEnter.OrElse(d.SendEmailOnEnter)
	return d
}
