package status

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const (
	maxNameLength      = 100
	maxDescriptionLen  = 1000
	maxPresentationLen = 100
)

var (
	// ErrStatusIsNotConstructed is returned when a Status was not created via NewStatus or RestoreStatus.
	ErrStatusIsNotConstructed = errors.New("Status must be created via NewStatus constructor")

	hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Definition holds the mutable attributes of a status.
type Definition struct {
	Name             string
	Description      string
	Icon             string
	Color            string
	BadgeColor       string
	IsPaid           bool
	IncludeInReports bool
	AllowDownloads   bool
	SortOrder        int
	IsActive         bool
	EmailTemplateID  *kernel.UUID
	SendEmailOnEnter bool
}

// DefaultDefinition returns a definition with the creation defaults applied.
func DefaultDefinition(name string) Definition {
	return Definition{
		Name:             name,
		IncludeInReports: true,
		IsActive:         true,
	}
}

// Validate checks the attribute constraints shared by create and update.
func (d Definition) Validate() error {
	var errList []error

	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	case utf8.RuneCountInString(name) > maxNameLength:
		errList = append(errList, errs.NewValueIsOutOfRangeError("name length",
			utf8.RuneCountInString(name), 1, maxNameLength))
	}

	if utf8.RuneCountInString(d.Description) > maxDescriptionLen {
		errList = append(errList, errs.NewValueIsOutOfRangeError("description length",
			utf8.RuneCountInString(d.Description), 0, maxDescriptionLen))
	}

	if d.Color != "" && !hexColorPattern.MatchString(d.Color) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("color",
			fmt.Errorf("%q is not a #RRGGBB value", d.Color)))
	}

	for _, f := range []struct{ name, value string }{{FieldIcon, d.Icon}, {FieldBadgeColor, d.BadgeColor}} {
		if n := utf8.RuneCountInString(f.value); n > maxPresentationLen {
			errList = append(errList, errs.NewValueIsOutOfRangeError(f.name+" length", n, 0, maxPresentationLen))
		}
	}

	if d.EmailTemplateID != nil {
		if err := d.EmailTemplateID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("emailTemplateId", err))
		}
	}

	return errors.Join(errList...)
}

// Status is a named order lifecycle stage.
//
// The slug and the core flag are fixed at creation; everything else lives in the
// Definition and changes only through ApplyPatch, which enforces the core whitelist.
type Status struct {
	id        kernel.UUID
	slug      Slug
	def       Definition
	isCore    bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewStatus creates a custom (non-core) status.
//
// Example:
//
//	slug, err := status.NormalizeSlug("", "Awaiting Proof") // AWAITING_PROOF
//	def := status.DefaultDefinition("Awaiting Proof")
//	st, err := status.NewStatus(kernel.NewUUID(), slug, def, time.Now())
func NewStatus(id kernel.UUID, slug Slug, def Definition, now time.Time) (*Status, error) {
	if err := errors.Join(
		id.Validate(),
		validateSlug(slug),
		def.Validate(),
	); err != nil {
		return nil, err
	}

	def.Name = strings.TrimSpace(def.Name)
	return &Status{
		id:            id,
		slug:          slug,
		def:           def,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreStatus rebuilds a status from persistence without re-running definition checks.
func RestoreStatus(id kernel.UUID, slug Slug, def Definition, isCore bool, createdAt, updatedAt time.Time) *Status {
	return &Status{
		id:            id,
		slug:          slug,
		def:           def,
		isCore:        isCore,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

// Validate ensures the Status was created through a constructor.
func (s *Status) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}

// ID returns the status identifier.
func (s *Status) ID() kernel.UUID {
	return s.id
}

// Slug returns the immutable slug.
func (s *Status) Slug() Slug {
	return s.slug
}

// Definition returns a copy of the mutable attributes.
func (s *Status) Definition() Definition {
	return s.def
}

func (s *Status) Name() string {
	return s.def.Name
}

func (s *Status) IsCore() bool {
	return s.isCore
}

func (s *Status) IsActive() bool {
	return s.def.IsActive
}

func (s *Status) SendEmailOnEnter() bool {
	return s.def.SendEmailOnEnter
}

// EmailTemplateID returns the bound template or nil.
func (s *Status) EmailTemplateID() *kernel.UUID {
	return s.def.EmailTemplateID
}

func (s *Status) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Status) UpdatedAt() time.Time {
	return s.updatedAt
}

// ApplyPatch applies a partial update.
//
// An empty patch is a validation error. On a core status any touched field outside
// the whitelist fails the whole patch with errs.ForbiddenFieldEditError listing those
// fields; nothing is applied in that case.
func (s *Status) ApplyPatch(p Patch, now time.Time) error {
	if p.IsEmpty() {
		return errs.NewValueIsRequiredError("patch must touch at least one field")
	}

	if s.isCore {
		if forbidden := p.ForbiddenOnCore(); len(forbidden) > 0 {
			return errs.NewForbiddenFieldEditError("core status "+s.slug.String(), forbidden)
		}
	}

	next := p.applyTo(s.def)
	if err := next.Validate(); err != nil {
		return err
	}

	next.Name = strings.TrimSpace(next.Name)
	s.def = next
	s.updatedAt = now.UTC()
	return nil
}

// CanDelete reports whether the status may be removed without reassignment.
func (s *Status) CanDelete(orderCount int64) bool {
	return CanDelete(s.isCore, orderCount)
}

// CanDelete is the deletion rule for a status described only by its core flag and
// live order count, as read models see it.
func CanDelete(isCore bool, orderCount int64) bool {
	return !isCore && orderCount == 0
}

func validateSlug(slug Slug) error {
	_, err := ParseSlug(slug.String())
	return err
}
