package response

import (
	"fmt"
	"time"

	"github.com/Guyuepp/sentence-chain/domain"
)

const (
	LongDateFormat = "Monday, January 2, 2006"
	ClockFormat    = "03:04 PM"
)

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// TimeAgo renders how long ago ts was, relative to now
func TimeAgo(ts, now time.Time) string {
	diff := now.Sub(ts)
	mins := int64(diff / time.Minute)
	hours := mins / 60

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return plural(mins, "min") + " ago"
	case hours < 24:
		return plural(hours, "hour") + " ago"
	default:
		return ts.In(now.Location()).Format(ClockFormat)
	}
}

// LongDate renders a YYYY-MM-DD date as "Monday, January 1, 2024".
// Unparseable input is returned unchanged.
func LongDate(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(LongDateFormat)
}
