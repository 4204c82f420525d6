package export

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// TimeFormat is the temporal representation expected by the destination.
const TimeFormat = "2006-01-02 15:04:05"

// FormatTime renders the time in the destination temporal format, normalized to UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// normalizeValue converts a resolved value to a destination friendly representation.
// Times are normalized to UTC strings, UUIDs to the canonical string form,
// nested structures and other values are passed through untouched.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		return FormatTime(v)
	case *time.Time:
		if v == nil {
			return nil
		}
		return FormatTime(*v)
	case uuid.UUID:
		return v.String()
	case []byte:
		return string(v)
	default:
		return value
	}
}
