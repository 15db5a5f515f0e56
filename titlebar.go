package flexchrome

import (
	"context"
	"fmt"
	"time"
)

// DefaultTitle is shown when the title is set to an empty string.
const DefaultTitle = "Application"

// WeekLabel formats the ISO-8601 week of t, e.g. "Week 42". ISO weeks start
// on Monday and week 1 is the first week with four days in the new year.
func WeekLabel(t time.Time) string {
	_, week := t.ISOWeek()
	return fmt.Sprintf("Week %d", week)
}

// RunClock publishes WeekLabel(now()) to sink immediately and on every
// tick until ctx is cancelled. The sink is only called when the label
// changes. An interval of zero means one second.
func RunClock(ctx context.Context, interval time.Duration, now func() time.Time, sink func(string)) {
	if interval <= 0 {
		interval = time.Second
	}
	if now == nil {
		now = time.Now
	}

	last := WeekLabel(now())
	sink(last)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if label := WeekLabel(now()); label != last {
				last = label
				sink(label)
			}
		}
	}
}
