package repositories

import (
	"testing"
	"time"
)

func TestDayWindowIsHalfOpenUTC(t *testing.T) {
	start, end := DayWindow(time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC))

	wantStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestDayWindowNormalizesToUTC(t *testing.T) {
	// 2024-03-01 22:00 at UTC-6 is already 2024-03-02 in UTC.
	loc := time.FixedZone("UTC-6", -6*60*60)
	start, _ := DayWindow(time.Date(2024, 3, 1, 22, 0, 0, 0, loc))

	want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
}

func TestDayWindowMidnightInput(t *testing.T) {
	midnight := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	start, end := DayWindow(midnight)
	if !start.Equal(midnight) {
		t.Errorf("start = %v, want %v", start, midnight)
	}
	if got := end.Sub(start); got != 24*time.Hour {
		t.Errorf("window length = %v, want 24h", got)
	}
}
