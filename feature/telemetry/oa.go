package telemetry

import (
	"sort"
	"time"
)

// ScanGaps scans a fixed-interval series for missing slots.
// Readings are sorted by timestamp first; duplicate timestamps count as one.
func ScanGaps(series *Series, interval time.Duration) []Gap {
	if interval <= 0 || len(series.Readings) < 2 {
		return nil
	}

	times := make([]time.Time, 0, len(series.Readings))
	for _, r := range series.Readings {
		times = append(times, r.Timestamp)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	var gaps []Gap
	prev := times[0]
	for _, t := range times[1:] {
		if t.Equal(prev) {
			continue
		}
		delta := t.Sub(prev)
		if delta > interval {
			gaps = append(gaps, Gap{
				From:    prev,
				To:      t,
				Missing: int(delta/interval) - 1,
			})
		}
		prev = t
	}

	return gaps
}

// CheckStart verifies that a series begins on the expected calendar date.
// It returns the first timestamp and whether its date matches start.
func CheckStart(series *Series, start time.Time) (first time.Time, ok bool) {
	if len(series.Readings) == 0 {
		return time.Time{}, false
	}

	first = series.Readings[0].Timestamp
	for _, r := range series.Readings[1:] {
		if r.Timestamp.Before(first) {
			first = r.Timestamp
		}
	}

	y1, m1, d1 := first.Date()
	y2, m2, d2 := start.Date()
	return first, y1 == y2 && m1 == m2 && d1 == d2
}
