package util

import (
	"testing"
	"time"
)

func TestMonthInterval(t *testing.T) {
	tests := []struct {
		key       string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"2025-06", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"2025-12", time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-02", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		start, end, err := MonthInterval(tt.key)
		if err != nil {
			t.Fatalf("MonthInterval(%q) returned error: %v", tt.key, err)
		}
		if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
			t.Errorf("MonthInterval(%q) = (%v, %v), want (%v, %v)",
				tt.key, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestMonthInterval_Invalid(t *testing.T) {
	for _, key := range []string{"2025", "2025-13", "June 2025", ""} {
		if _, _, err := MonthInterval(key); err == nil {
			t.Errorf("MonthInterval(%q) expected error, got nil", key)
		}
	}
}

func TestDaysBetweenCeil(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "ten day span",
			start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
			want:  10,
		},
		{
			name:  "partial day rounds up",
			start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 1, 2, 6, 0, 0, 0, time.UTC),
			want:  2,
		},
		{
			name:  "same instant",
			start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
		{
			name:  "negative interval stays negative",
			start: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  -10,
		},
	}

	for _, tt := range tests {
		if got := DaysBetweenCeil(tt.start, tt.end); got != tt.want {
			t.Errorf("%s: DaysBetweenCeil = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"deadline today at midnight", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 0},
		{"deadline today with time component", time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC), 0},
		{"deadline tomorrow", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), 1},
		{"deadline in three days", time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC), 3},
		{"deadline yesterday", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), -1},
	}

	for _, tt := range tests {
		if got := DaysUntil(tt.deadline, today); got != tt.want {
			t.Errorf("%s: DaysUntil = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMidnight_TruncatesToUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 01:30 on June 16 in UTC+5 is still June 15 in UTC.
	in := time.Date(2025, 6, 16, 1, 30, 0, 0, loc)
	got := Midnight(in)
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Midnight(%v) = %v, want %v", in, got, want)
	}
}
