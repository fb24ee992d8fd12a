package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapitypes "github.com/oapi-codegen/runtime/types"
)

// NewStatusRequest is the body of POST /statuses. Absent booleans take the creation
// defaults.
type NewStatusRequest struct {
	Slug             string       `json:"slug"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Icon             string       `json:"icon"`
	Color            string       `json:"color"`
	BadgeColor       string       `json:"badgeColor"`
	IsPaid           *bool        `json:"isPaid"`
	IncludeInReports *bool        `json:"includeInReports"`
	AllowDownloads   *bool        `json:"allowDownloads"`
	SortOrder        *int         `json:"sortOrder"`
	IsActive         *bool        `json:"isActive"`
	EmailTemplateID  *kernel.UUID `json:"emailTemplateId"`
	SendEmailOnEnter *bool        `json:"sendEmailOnEnter"`
}

// Definition applies the request over status.DefaultDefinition.
func (r NewStatusRequest) Definition() status.Definition {
	def := status.DefaultDefinition(r.Name)
	def.Description = r.Description
	def.Icon = r.Icon
	def.Color = r.Color
	def.BadgeColor = r.BadgeColor
	def.EmailTemplateID = r.EmailTemplateID

	setIf(&def.IsPaid, r.IsPaid)
	setIf(&def.IncludeInReports, r.IncludeInReports)
	setIf(&def.AllowDownloads, r.AllowDownloads)
	setIf(&def.SortOrder, r.SortOrder)
	setIf(&def.IsActive, r.IsActive)
	setIf(&def.SendEmailOnEnter, r.SendEmailOnEnter)
	return def
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// NewTransitionRequest is the body of POST /transitions.
type NewTransitionRequest struct {
	FromStatusID kernel.UUID `json:"fromStatusId"`
	ToStatusID   kernel.UUID `json:"toStatusId"`
}

// NewOrderRequest is the body of POST /orders.
type NewOrderRequest struct {
	OrderNumber   string `json:"orderNumber"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	TotalCents    int64  `json:"totalCents"`
	Status        string `json:"status"`
	ChangedBy     string `json:"changedBy"`
}

// StatusChangeRequest is the body of POST /orders/{id}/status.
type StatusChangeRequest struct {
	Status    string `json:"status"`
	Notes     string `json:"notes"`
	ChangedBy string `json:"changedBy"`
}

var patchFields = []string{
	status.FieldName,
	status.FieldDescription,
	status.FieldIcon,
	status.FieldColor,
	status.FieldBadgeColor,
	status.FieldIsPaid,
	status.FieldIncludeInReports,
	status.FieldAllowDownloads,
	status.FieldSortOrder,
	status.FieldIsActive,
	status.FieldEmailTemplateID,
	status.FieldSendEmailOnEnter,
}

const fieldSlug = "slug"

// StatusPatchRequest keeps the raw body of PATCH /statuses/{id} so that absent fields
// can be told apart from zero values and null.
type StatusPatchRequest struct {
	fields map[string]json.RawMessage
}

func (r *StatusPatchRequest) UnmarshalJSON(data []byte) error {
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	r.fields = fields
	return nil
}

// Slug returns the slug sent by the client, if any.
func (r StatusPatchRequest) Slug() (string, bool, error) {
	raw, ok := r.fields[fieldSlug]
	if !ok {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", true, errs.NewValueIsInvalidErrorWithCause(fieldSlug, err)
	}
	return s, true, nil
}

// Patch converts the body into a status.Patch. Unknown fields are rejected.
func (r StatusPatchRequest) Patch() (status.Patch, error) {
	var unknown []string
	for name := range r.fields {
		if name != fieldSlug && !slices.Contains(patchFields, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return status.Patch{}, errs.NewValueIsInvalidErrorWithCause("patch",
			fmt.Errorf("unknown fields [%s]", strings.Join(unknown, ", ")))
	}

	var (
		p       status.Patch
		errList []error
	)
	collect := func(err error) {
		if err != nil {
			errList = append(errList, err)
		}
	}

	p.Name = optionalField[string](r.fields, status.FieldName, collect)
	p.Description = optionalField[string](r.fields, status.FieldDescription, collect)
	p.Icon = optionalField[string](r.fields, status.FieldIcon, collect)
	p.Color = optionalField[string](r.fields, status.FieldColor, collect)
	p.BadgeColor = optionalField[string](r.fields, status.FieldBadgeColor, collect)
	p.IsPaid = optionalField[bool](r.fields, status.FieldIsPaid, collect)
	p.IncludeInReports = optionalField[bool](r.fields, status.FieldIncludeInReports, collect)
	p.AllowDownloads = optionalField[bool](r.fields, status.FieldAllowDownloads, collect)
	p.SortOrder = optionalField[int](r.fields, status.FieldSortOrder, collect)
	p.IsActive = optionalField[bool](r.fields, status.FieldIsActive, collect)
	p.EmailTemplateID = optionalField[*kernel.UUID](r.fields, status.FieldEmailTemplateID, collect)
	p.SendEmailOnEnter = optionalField[bool](r.fields, status.FieldSendEmailOnEnter, collect)

	if len(errList) > 0 {
		return status.Patch{}, errors.Join(errList...)
	}
	return p, nil
}

func optionalField[T any](fields map[string]json.RawMessage, name string, collect func(error)) status.Optional[T] {
	raw, ok := fields[name]
	if !ok {
		return status.Optional[T]{}
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		collect(errs.NewValueIsInvalidErrorWithCause(name, err))
		return status.Optional[T]{}
	}
	return status.Some(v)
}

// pathID binds a uuid path parameter.
func pathID(c echo.Context, name string) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// queryString binds an optional query parameter; absent and blank both return "".
func queryString(c echo.Context, name string) (string, error) {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if v == nil {
		return "", nil
	}
	return strings.TrimSpace(*v), nil
}

// queryDate binds an optional YYYY-MM-DD query parameter.
func queryDate(c echo.Context, name string) (*time.Time, error) {
	var d *openapitypes.Date
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &d); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if d == nil {
		return nil, nil
	}
	t := d.Time
	return &t, nil
}
