package streak

import (
	"testing"
	"time"
)

const graceDays = 5

var now = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return now.AddDate(0, 0, -d)
}

func TestAdvance_SameDay(t *testing.T) {
	info := Advance(now.Add(-2*time.Hour), now, 10, graceDays)
	if info.Count != 10 || info.IsGracePeriod {
		t.Errorf("same day: got %+v, want count 10, no grace", info)
	}
}

func TestAdvance_NextDay(t *testing.T) {
	info := Advance(daysAgo(1), now, 10, graceDays)
	if info.Count != 11 || info.IsGracePeriod {
		t.Errorf("next day: got %+v, want count 11, no grace", info)
	}
}

func TestAdvance_GracePeriod(t *testing.T) {
	info := Advance(daysAgo(2), now, 10, graceDays)
	if info.Count != 10 {
		t.Errorf("grace: count = %d, want 10", info.Count)
	}
	if !info.IsGracePeriod {
		t.Error("grace: IsGracePeriod = false, want true")
	}
	if info.GraceDaysRemaining != 3 {
		t.Errorf("grace: GraceDaysRemaining = %d, want 3", info.GraceDaysRemaining)
	}
}

func TestAdvance_GracePeriodLastDay(t *testing.T) {
	info := Advance(daysAgo(graceDays), now, 10, graceDays)
	if info.Count != 10 || !info.IsGracePeriod || info.GraceDaysRemaining != 0 {
		t.Errorf("last grace day: got %+v, want count 10, grace, 0 remaining", info)
	}
}

func TestAdvance_Reset(t *testing.T) {
	info := Advance(daysAgo(6), now, 10, graceDays)
	if info.Count != 1 || info.IsGracePeriod {
		t.Errorf("reset: got %+v, want count 1, no grace", info)
	}
}

func TestAdvance_FirstActivity(t *testing.T) {
	info := Advance(time.Time{}, now, 0, graceDays)
	if info.Count != 1 {
		t.Errorf("first activity: count = %d, want 1", info.Count)
	}
}

func TestAdvance_CalendarDayBoundary(t *testing.T) {
	// 23:50 yesterday to 00:10 today is 20 minutes of wall clock but
	// one calendar day, so the streak increments.
	last := time.Date(2026, 3, 9, 23, 50, 0, 0, time.UTC)
	cur := time.Date(2026, 3, 10, 0, 10, 0, 0, time.UTC)
	info := Advance(last, cur, 4, graceDays)
	if info.Count != 5 {
		t.Errorf("midnight boundary: count = %d, want 5", info.Count)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b time.Time
		want int
	}{
		{now, now, 0},
		{daysAgo(1), now, 1},
		{daysAgo(7), now, 7},
		{now, daysAgo(1), -1},
	}

	for _, tt := range tests {
		if got := DaysBetween(tt.a, tt.b); got != tt.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
