package analytics

import "time"

// RangeFor resolves a named period into a concrete date range.
// Unknown periods default to the last 30 days.
func RangeFor(period string, now time.Time) *DateRange {
	var start, end time.Time

	switch period {
	case "today":
		start = startOfDay(now)
		end = now

	case "this_week":
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = startOfDay(now.AddDate(0, 0, -weekday+1))
		end = now

	case "this_month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = now

	case "last_month":
		start = time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Add(-time.Second)

	case "this_year":
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		end = now

	case "last_90_days":
		start = now.AddDate(0, 0, -90)
		end = now

	default: // last_30_days
		start = now.AddDate(0, 0, -30)
		end = now
	}

	return &DateRange{Start: start, End: end, Field: "created_at"}
}

// PreviousRange returns the period of the same length right before r,
// used for percentage-change comparisons.
func PreviousRange(r *DateRange) *DateRange {
	length := r.End.Sub(r.Start)
	return &DateRange{
		Start: r.Start.Add(-length),
		End:   r.Start,
		Field: r.Field,
	}
}

// MonthlyRanges splits [start, end] into calendar-month buckets.
func MonthlyRanges(start, end time.Time) []DateRange {
	ranges := []DateRange{}
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())

	for !current.After(end) {
		monthEnd := current.AddDate(0, 1, 0).Add(-time.Second)
		if monthEnd.After(end) {
			monthEnd = end
		}

		ranges = append(ranges, DateRange{Start: current, End: monthEnd, Field: "created_at"})
		current = current.AddDate(0, 1, 0)
	}

	return ranges
}

// DailyRanges splits [start, end] into day buckets.
func DailyRanges(start, end time.Time) []DateRange {
	ranges := []DateRange{}
	current := startOfDay(start)

	for !current.After(end) {
		dayEnd := current.AddDate(0, 0, 1).Add(-time.Nanosecond)
		if dayEnd.After(end) {
			dayEnd = end
		}

		ranges = append(ranges, DateRange{Start: current, End: dayEnd, Field: "created_at"})
		current = current.AddDate(0, 0, 1)
	}

	return ranges
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
