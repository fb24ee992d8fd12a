package notification

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// Variables are the values templates may reference.
const (
	VarOrderNumber    = "orderNumber"
	VarCustomerName   = "customerName"
	VarStatusName     = "statusName"
	VarTrackingNumber = "trackingNumber"
	VarTrackingURL    = "trackingUrl"
	VarOrderURL       = "orderUrl"
	VarNotes          = "notes"
	VarTotal          = "total"
)

// Both {{name}} (with optional inner spaces) and {name} are placeholders.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z][A-Za-z0-9_]*)\s*\}\}|\{([A-Za-z][A-Za-z0-9_]*)\}`)

// Variables maps placeholder names to values.
type Variables map[string]string

// Render substitutes known placeholders. Unknown ones are left as written.
func Render(text string, vars Variables) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := placeholderPattern.FindStringSubmatch(match)
		name := sub[1]
		if name == "" {
			name = sub[2]
		}
		if v, ok := vars[name]; ok {
			return v
		}
		return match
	})
}

// ForHTML returns a copy with every value passed through policy, so user-entered
// text such as notes cannot inject markup into an HTML body.
func (v Variables) ForHTML(policy *bluemonday.Policy) Variables {
	out := make(Variables, len(v))
	for k, val := range v {
		out[k] = policy.Sanitize(val)
	}
	return out
}
