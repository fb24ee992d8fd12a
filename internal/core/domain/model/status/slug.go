package status

import (
	"fmt"
	"regexp"
	"strings"

	"storefront/internal/pkg/errs"
)

// Slug is the immutable identity of a status as referenced by orders and history rows.
type Slug string

// Seeded core slugs.
const (
	PendingPayment Slug = "PENDING_PAYMENT"
	Paid           Slug = "PAID"
	Processing     Slug = "PROCESSING"
	Printing       Slug = "PRINTING"
	Shipped        Slug = "SHIPPED"
	Delivered      Slug = "DELIVERED"
	Cancelled      Slug = "CANCELLED"
	Refunded       Slug = "REFUNDED"
)

var (
	slugPattern  = regexp.MustCompile(`^[A-Z][A-Z0-9_]{1,49}$`)
	slugReplacer = strings.NewReplacer(" ", "_", "-", "_")
)

// NormalizeSlug builds a slug from raw input. When raw is blank the slug is derived
// from fallbackName. The result is upper-cased with spaces and hyphens turned into
// underscores and must match ^[A-Z][A-Z0-9_]{1,49}$.
func NormalizeSlug(raw, fallbackName string) (Slug, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		candidate = strings.TrimSpace(fallbackName)
	}
	if candidate == "" {
		return "", errs.NewValueIsRequiredError("slug")
	}

	candidate = slugReplacer.Replace(strings.ToUpper(candidate))
	return ParseSlug(candidate)
}

// ParseSlug validates s as-is without normalization.
func ParseSlug(s string) (Slug, error) {
	if !slugPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("slug",
			fmt.Errorf("%q does not match %s", s, slugPattern.String()))
	}
	return Slug(s), nil
}

func (s Slug) String() string {
	return string(s)
}

// IsZero reports whether the slug is empty.
func (s Slug) IsZero() bool {
	return s == ""
}
