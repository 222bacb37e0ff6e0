package validation

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// FieldErrors maps a field path to a human-readable message. Cross-field
// rules report under virtual paths ("financingDetails", "datesValid").
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

func (e FieldErrors) add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// OrNil returns nil when no rule failed, so callers can use the usual
// `if err := in.Validate(); err != nil` shape without a typed-nil trap.
func (e FieldErrors) OrNil() FieldErrors {
	if len(e) == 0 {
		return nil
	}
	return e
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// parseDate accepts full RFC 3339 timestamps or bare YYYY-MM-DD dates.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
