package content

import (
	"fmt"
	"strings"
	"time"
)

const dateOnly = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateOnly,
}

// ParseDate parses the date formats accepted in front-matter: RFC 3339,
// "2006-01-02T15:04:05", "2006-01-02 15:04:05" and "2006-01-02".
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// dateString normalises a decoded front-matter date. YAML and TOML decoders
// hand back either the raw string or a time.Time.
func dateString(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(d)
	case time.Time:
		if d.Hour() == 0 && d.Minute() == 0 && d.Second() == 0 && d.Nanosecond() == 0 {
			return d.Format(dateOnly)
		}
		return d.Format(time.RFC3339)
	case fmt.Stringer:
		return strings.TrimSpace(d.String())
	default:
		return strings.TrimSpace(fmt.Sprint(d))
	}
}
