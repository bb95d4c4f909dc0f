package utils

import (
	"testing"
	"time"
)

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("2025-06-10"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	if _, err := ParseDate(" 2025-06-10 "); err != nil {
		t.Fatalf("padded date rejected: %v", err)
	}
	for _, bad := range []string{"", "10-06-2025", "2025/06/10", "2025-13-01", "tomorrow"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected parse error for %q", bad)
		}
	}
}

func TestNightsHalfOpen(t *testing.T) {
	in, _ := ParseDate("2025-06-10")
	out, _ := ParseDate("2025-06-12")
	if n := Nights(in, out); n != 2 {
		t.Fatalf("two-night stay counted as %d", n)
	}
	if n := Nights(in, in.AddDate(0, 0, 1)); n != 1 {
		t.Fatalf("one-night stay counted as %d", n)
	}
}

func TestDateRangeExcludesCheckout(t *testing.T) {
	start, _ := ParseDate("2025-06-10")
	end, _ := ParseDate("2025-06-13")
	got := DateRange(start, end)
	want := []string{"2025-06-10", "2025-06-11", "2025-06-12"}
	if len(got) != len(want) {
		t.Fatalf("range length mismatch: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range mismatch at %d: got %s want %s", i, got[i], want[i])
		}
	}
	if len(DateRange(start, start)) != 0 {
		t.Fatalf("empty range should produce no dates")
	}
}

func TestDateRangeCrossesMonthBoundary(t *testing.T) {
	start, _ := ParseDate("2025-06-29")
	end, _ := ParseDate("2025-07-02")
	got := DateRange(start, end)
	want := []string{"2025-06-29", "2025-06-30", "2025-07-01"}
	if len(got) != 3 {
		t.Fatalf("range length mismatch: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range mismatch at %d: got %s want %s", i, got[i], want[i])
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2025, 6, 3, 14, 5, 9, 0, time.UTC)
	if s := FormatDateTime(ts); s != "2025-06-03 14:05:09" {
		t.Fatalf("unexpected format: %s", s)
	}
}
