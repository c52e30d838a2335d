// Package validate rejects malformed or incomplete entity payloads before
// they reach the store. Conditional requirements are resolved discriminator
// first (customerType, barcodeType), then the selected variant's required
// set, then format rules. The first violation wins and is returned as a
// domain.ValidationError naming the field; nothing is partially persisted.
package validate

import (
	"regexp"
	"time"

	"github.com/gulfwms/wms-api/internal/domain"
)

// Format rules shared across entities.
var (
	emiratesIDRe = regexp.MustCompile(`^784-\d{4}-\d{7}-\d$`)
	trnRe        = regexp.MustCompile(`^\d{15}$`)
	uaeMobileRe  = regexp.MustCompile(`^\+971\d{9}$`)
	emailRe      = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
)

// field pairs a payload field name with its (already trimmed) value.
type field struct {
	name  string
	value string
}

// requireAll returns the first missing field of a variant's required set.
func requireAll(fields []field) error {
	for _, f := range fields {
		if f.value == "" {
			return domain.Required(f.name)
		}
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
