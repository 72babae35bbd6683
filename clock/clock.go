// Package clock provides date and time helpers: strftime-style formatting,
// durations parsed from plain decimal strings (handy for flag values) and
// human-readable renderings of times, durations and sizes.
package clock

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
)

// Format renders t using strftime syntax, e.g. "%Y-%m-%d %H:%M:%S".
func Format(layout string, t time.Time) string {
	return strftime.Format(layout, t)
}

// FormatUTC renders t in UTC using strftime syntax.
func FormatUTC(layout string, t time.Time) string {
	return strftime.Format(layout, t.UTC())
}

// Today returns the current local date in YYYYMMDD format, e.g. 20201009.
func Today() string {
	return strftime.Format("%Y%m%d", time.Now())
}

// TodayUTC returns the current UTC date in YYYYMMDD format.
func TodayUTC() string {
	return strftime.Format("%Y%m%d", time.Now().UTC())
}

// ParseSeconds constructs a Duration from a string parsed as a decimal number
// of seconds, e.g. "1.5" is 1500ms. Useful as a flag value parser.
func ParseSeconds(val string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// ParseMillis constructs a Duration from a string parsed as a decimal number
// of milliseconds.
func ParseMillis(val string) (time.Duration, error) {
	millis, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(millis * float64(time.Millisecond)), nil
}

// Sleep pauses the current goroutine for the duration.
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// SleepSec pauses the current goroutine for the given number of seconds.
func SleepSec(seconds float64) {
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}

// HumanTime renders a time relative to now, e.g. "3 minutes ago".
func HumanTime(t time.Time) string {
	return humanize.Time(t)
}

// HumanDuration renders a duration in round human terms, e.g. "3 minutes".
func HumanDuration(d time.Duration) string {
	now := time.Now()
	return strings.TrimSpace(humanize.RelTime(now.Add(-d), now, "", ""))
}

// HumanBytes renders a byte count with an IEC-ish unit, e.g. "2.3 MB".
func HumanBytes(n uint64) string {
	return humanize.Bytes(n)
}
