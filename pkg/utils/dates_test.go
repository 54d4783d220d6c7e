package utils

import (
	"testing"
	"time"
)

func TestDateString(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)
	if got := DateString(ts); got != "2024-03-10" {
		t.Fatalf("expected 2024-03-10, got %q", got)
	}
}

func TestOpenEndedRange(t *testing.T) {
	t.Parallel()
	ts := time.Date(2021, 6, 2, 0, 0, 0, 0, time.UTC)
	if got := OpenEndedRange(ts); got != "[2021-06-02,)" {
		t.Fatalf("expected [2021-06-02,), got %q", got)
	}
}

func TestLaterDate(t *testing.T) {
	t.Parallel()
	a := time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 12, 1, 0, 0, 0, time.UTC)
	if got := LaterDate(a, b); !got.Equal(DateOnly(b)) {
		t.Fatalf("expected %v, got %v", DateOnly(b), got)
	}
	if got := LaterDate(b, a); !got.Equal(DateOnly(b)) {
		t.Fatalf("expected %v, got %v", DateOnly(b), got)
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "three days",
			start: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			want:  3,
		},
		{
			name:  "single day",
			start: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			want:  1,
		},
		{
			name:  "inverted range",
			start: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DaysBetween(tc.start, tc.end); len(got) != tc.want {
				t.Fatalf("expected %d days, got %d", tc.want, len(got))
			}
		})
	}
}
