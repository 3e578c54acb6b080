// Package stats derives dashboard metrics the backend does not serve,
// computed client-side over a window of fetched calls.
package stats

import (
	"fmt"
	"time"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// PickupStats summarizes how many dispatched calls members answered.
// Initiated calls are still in flight and excluded from the rate.
type PickupStats struct {
	Answered   int // completed calls
	Unanswered int // failed calls
	Pending    int // initiated, no outcome yet
	Total      int
}

// Rate returns the answered fraction of decided calls, and false when no
// call has a terminal status yet.
func (p PickupStats) Rate() (float64, bool) {
	decided := p.Answered + p.Unanswered
	if decided == 0 {
		return 0, false
	}
	return float64(p.Answered) / float64(decided), true
}

// FormatRate renders the pickup rate as a percentage, or "n/a".
func (p PickupStats) FormatRate() string {
	rate, ok := p.Rate()
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", rate*100)
}

// Pickup computes pickup stats over a window of calls.
func Pickup(calls []types.Call) PickupStats {
	var s PickupStats
	for _, c := range calls {
		s.Total++
		switch c.Status {
		case types.StatusCompleted:
			s.Answered++
		case types.StatusFailed:
			s.Unanswered++
		default:
			s.Pending++
		}
	}
	return s
}

// DayCount is the number of calls created on one day.
type DayCount struct {
	Date  time.Time
	Count int
}

// DailyVolume buckets calls per day over the last days days, ending at now.
// Days without calls appear with a zero count so chart widths stay stable.
// The series runs oldest first.
func DailyVolume(calls []types.Call, days int, now time.Time) []DayCount {
	if days < 1 {
		days = 1
	}

	end := now.UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(days - 1))

	counts := make(map[time.Time]int, days)
	for _, c := range calls {
		if c.CreatedAt.IsZero() {
			continue
		}
		day := c.CreatedAt.UTC().Truncate(24 * time.Hour)
		if day.Before(start) || day.After(end) {
			continue
		}
		counts[day]++
	}

	series := make([]DayCount, 0, days)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		series = append(series, DayCount{Date: day, Count: counts[day]})
	}
	return series
}

// AverageDuration returns the mean duration of calls that reported one.
func AverageDuration(calls []types.Call) (time.Duration, bool) {
	var total time.Duration
	var n int
	for _, c := range calls {
		if d, ok := c.Duration(); ok {
			total += d
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return total / time.Duration(n), true
}
