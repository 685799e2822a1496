package timeutil

import (
	"testing"
	"time"
)

func TestConstants(t *testing.T) {
	if Minute1 != 60 || Hour1 != 3600 || Day1 != 86400 {
		t.Errorf("base constants wrong: %d %d %d", Minute1, Hour1, Day1)
	}
	if Minute30 != 1800 || Hour12 != 43200 || Day7 != 604800 {
		t.Errorf("derived constants wrong: %d %d %d", Minute30, Hour12, Day7)
	}
}

func TestMidnightHelpers(t *testing.T) {
	// the midnight helpers work in UTC+8: epoch zero is 08:00 there,
	// so the most recent midnight is 8 hours before the epoch
	if got := LastMidnight(0); got != -8*Hour1 {
		t.Errorf("LastMidnight(0) = %d, want %d", got, -8*Hour1)
	}
	if got := UntilMidnight(0); got != 16*Hour1 {
		t.Errorf("UntilMidnight(0) = %d, want %d", got, 16*Hour1)
	}

	// 2023-06-01 10:30:00 +08:00
	now := time.Date(2023, 6, 1, 10, 30, 0, 0, time.FixedZone("", 8*Hour1)).Unix()
	midnight := time.Date(2023, 6, 1, 0, 0, 0, 0, time.FixedZone("", 8*Hour1)).Unix()
	if got := LastMidnight(now); got != midnight {
		t.Errorf("LastMidnight = %d, want %d", got, midnight)
	}
	if got := UntilMidnight(now); got != midnight+Day1-now {
		t.Errorf("UntilMidnight = %d, want %d", got, midnight+Day1-now)
	}
}

func TestMidnightIdentity(t *testing.T) {
	// the two helpers always describe the same day boundary
	for _, now := range []int64{0, 1, Day1 - 1, Day1, 1685590200, -100} {
		if got := LastMidnight(now) + Day1; got != now+UntilMidnight(now) {
			t.Errorf("boundary mismatch at %d: %d vs %d", now, got, now+UntilMidnight(now))
		}
	}
}

func TestStampRoundTrip(t *testing.T) {
	now := Now()
	if got := ToStamp(FromStamp(now)); got != now {
		t.Errorf("round trip = %d, want %d", got, now)
	}
}

func TestNowMS(t *testing.T) {
	sec := Now()
	ms := NowMS()
	if ms/1000-sec > 1 {
		t.Errorf("NowMS and Now disagree: %d vs %d", ms, sec)
	}
}

func TestFormat(t *testing.T) {
	tm := time.Date(2023, 6, 1, 10, 30, 15, 0, time.Local)
	if got := FormatTime(tm); got != "2023-06-01 10:30:15" {
		t.Errorf("FormatTime = %q", got)
	}
	if got := FormatTime(tm, "2006/01/02"); got != "2023/06/01" {
		t.Errorf("FormatTime layout = %q", got)
	}
	if got := FormatStamp(tm.Unix()); got != "2023-06-01 10:30:15" {
		t.Errorf("FormatStamp = %q", got)
	}
	if got := FormatStampMS(tm.UnixMilli()); got != "2023-06-01 10:30:15" {
		t.Errorf("FormatStampMS = %q", got)
	}
}
