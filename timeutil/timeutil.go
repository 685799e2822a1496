// Package timeutil provides named second-count constants and small
// helpers over Unix timestamps.
package timeutil

import "time"

// Named second counts for readability at call sites.
const (
	Second1  = 1
	Second2  = 2
	Second3  = 3
	Second5  = 5
	Second10 = 10
	Second15 = 15
	Second30 = 30

	Minute1  = 60
	Minute2  = 2 * Minute1
	Minute5  = 5 * Minute1
	Minute10 = 10 * Minute1
	Minute15 = 15 * Minute1
	Minute30 = 30 * Minute1

	Hour1  = 60 * Minute1
	Hour2  = 2 * Hour1
	Hour6  = 6 * Hour1
	Hour12 = 12 * Hour1

	Day1  = 24 * Hour1
	Day2  = 2 * Day1
	Day3  = 3 * Day1
	Day7  = 7 * Day1
	Day14 = 14 * Day1
	Day30 = 30 * Day1
)

// DefaultLayout is used by the Format helpers when no layout is given.
const DefaultLayout = "2006-01-02 15:04:05"

// zeroOffset is the zone offset the midnight helpers apply.
// TODO: this hard-codes UTC+8 regardless of the actual local zone;
// preserved for compatibility, confirm product intent before fixing.
const zeroOffset = 8 * Hour1

// Now returns the current Unix timestamp in seconds.
func Now() int64 {
	return time.Now().Unix()
}

// NowMS returns the current Unix timestamp in milliseconds.
func NowMS() int64 {
	return time.Now().UnixMilli()
}

// FromStamp converts a second timestamp to a time.Time in the local
// zone.
func FromStamp(sec int64) time.Time {
	return time.Unix(sec, 0)
}

// ToStamp converts a time.Time to a second timestamp.
func ToStamp(t time.Time) int64 {
	return t.Unix()
}

// UntilMidnight returns the number of seconds from now until the next
// midnight, per the zeroOffset zone.
func UntilMidnight(now int64) int64 {
	return Day1 - (now+zeroOffset)%Day1
}

// LastMidnight returns the timestamp of the most recent midnight, per
// the zeroOffset zone.
func LastMidnight(now int64) int64 {
	return now - (now+zeroOffset)%Day1
}

// FormatStamp renders a second timestamp. The optional layout
// defaults to DefaultLayout.
func FormatStamp(sec int64, layout ...string) string {
	return FormatTime(time.Unix(sec, 0), layout...)
}

// FormatStampMS renders a millisecond timestamp. The optional layout
// defaults to DefaultLayout.
func FormatStampMS(ms int64, layout ...string) string {
	return FormatTime(time.UnixMilli(ms), layout...)
}

// FormatTime renders t. The optional layout defaults to
// DefaultLayout.
func FormatTime(t time.Time, layout ...string) string {
	l := DefaultLayout
	if len(layout) > 0 {
		l = layout[0]
	}
	return t.Format(l)
}
