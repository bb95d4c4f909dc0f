package utils

import "testing"

func TestRoundMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{100.006, 100.01},
		{100.004, 100.0},
		{33.333333, 33.33},
		{0, 0},
		{2 * 120.505, 241.01},
	}
	for _, tc := range cases {
		if got := RoundMoney(tc.in); got != tc.want {
			t.Fatalf("RoundMoney(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if s := FormatMoney(241); s != "241.00" {
		t.Fatalf("unexpected format: %s", s)
	}
	if s := FormatMoney(33.333); s != "33.33" {
		t.Fatalf("unexpected format: %s", s)
	}
}
