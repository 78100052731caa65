package dateutil

import (
	"fmt"
	"time"

	"github.com/payportal/go-selfservice/internal/common"
)

// ParseISO parses an ISO-8601 timestamp as produced by the downstream
// services (RFC3339 with optional fractional seconds).
func ParseISO(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", common.ErrInvalidFormatDate, value)
	}
	return t, nil
}

// FormatDisplay renders an ISO-8601 timestamp in UK local time, e.g.
// "12 May 2016 — 17:37:29".
func FormatDisplay(value string) (string, error) {
	t, err := ParseISO(value)
	if err != nil {
		return "", err
	}
	return t.In(common.GetLocation()).Format(common.DateFormatDisplay), nil
}

// ExportFilename builds the attachment filename for a transaction export
// taken at the given instant.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("GOVUK Pay %s.csv", now.In(common.GetLocation()).Format(common.DateFormatYYYYMMDDWithTime))
}
