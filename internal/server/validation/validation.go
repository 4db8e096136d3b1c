// Package validation contains the typed input validators used by the
// services. Validators run before any database call; a failed validation
// never reaches the store.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodtrack/internal/common"
)

// DateLayout is the only accepted calendar-date form.
const DateLayout = "2006-01-02"

// Violation describes a single failed check on a named field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations collects failed checks. It wraps common.ErrorValidation so
// callers can match it with errors.Is and still read individual messages.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", violation.Field, violation.Message))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (v Violations) Unwrap() error { return common.ErrorValidation }

// Add appends a violation for the given field.
func (v *Violations) Add(field, message string) {
	*v = append(*v, Violation{Field: field, Message: message})
}

// Err returns the collected violations as an error, or nil if none.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// ParseDate parses a canonical YYYY-MM-DD calendar date. Partial or
// ambiguous forms ("2024-8-1", "08/01/2024", RFC3339 timestamps) are
// rejected, as are dates that only normalize into a real calendar day.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil || t.Format(DateLayout) != value {
		var v Violations
		v.Add(field, "must be a calendar date in YYYY-MM-DD form")
		return time.Time{}, v
	}
	return t, nil
}

// CheckDateRange validates both bounds of an inclusive date range and
// rejects ranges where the start is after the end.
func CheckDateRange(startDate, endDate string) error {
	var v Violations

	start, err := time.Parse(DateLayout, startDate)
	if err != nil || start.Format(DateLayout) != startDate {
		v.Add("start_date", "must be a calendar date in YYYY-MM-DD form")
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil || end.Format(DateLayout) != endDate {
		v.Add("end_date", "must be a calendar date in YYYY-MM-DD form")
	}
	if len(v) == 0 && start.After(end) {
		v.Add("start_date", "must not be after end_date")
	}

	return v.Err()
}

// CheckIntRange validates that value lies in [min, max] inclusive.
func CheckIntRange(v *Violations, field string, value, min, max int) {
	if value < min || value > max {
		v.Add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
}

// CheckRequired validates that a trimmed string value is non-empty.
func CheckRequired(v *Violations, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

// CheckEmail performs a minimal shape check on an already-normalized email.
func CheckEmail(v *Violations, field, value string) {
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 || !strings.Contains(value[at+1:], ".") {
		v.Add(field, "must be a valid email address")
	}
}

// NormalizeEmail lower-cases and trims an email for case-insensitive
// uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
