package utils

import "testing"

func TestCycleDays_SevenConsecutiveDays(t *testing.T) {
	days, err := CycleDays("2026-01-05")
	if err != nil {
		t.Fatalf("CycleDays failed: %v", err)
	}

	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].ISO != "2026-01-05" {
		t.Errorf("expected first day 2026-01-05, got %s", days[0].ISO)
	}
	if days[6].ISO != "2026-01-11" {
		t.Errorf("expected last day 2026-01-11, got %s", days[6].ISO)
	}
	if days[0].DayName != "Mon" {
		t.Errorf("expected Mon for 2026-01-05, got %s", days[0].DayName)
	}
	if days[0].Month != 1 || days[0].Day != 5 {
		t.Errorf("expected month/day 1/5, got %d/%d", days[0].Month, days[0].Day)
	}
}

func TestCycleDays_RejectsBadDate(t *testing.T) {
	if _, err := CycleDays("not-a-date"); err == nil {
		t.Error("expected error for an unparseable start date")
	}
}

func TestDisplayHour_WrapsPastMidnight(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{7, 7},
		{23, 23},
		{24, 0},
		{25, 1},
	}
	for _, c := range cases {
		if got := DisplayHour(c.in); got != c.want {
			t.Errorf("DisplayHour(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestWrapTemplateEnd_CollapsesOntoSameDay(t *testing.T) {
	if got := WrapTemplateEnd(31); got != 7 {
		t.Errorf("WrapTemplateEnd(31) = %d, want 7", got)
	}
	// 24 is a valid same-day end and stays untouched.
	if got := WrapTemplateEnd(24); got != 24 {
		t.Errorf("WrapTemplateEnd(24) = %d, want 24", got)
	}
	if got := WrapTemplateEnd(18); got != 18 {
		t.Errorf("WrapTemplateEnd(18) = %d, want 18", got)
	}
}

func TestWithinCycle_InclusiveBounds(t *testing.T) {
	start, end := "2026-01-05", "2026-01-11"

	if !WithinCycle("2026-01-05", start, end) {
		t.Error("start date should be inside the cycle")
	}
	if !WithinCycle("2026-01-11", start, end) {
		t.Error("end date should be inside the cycle")
	}
	if WithinCycle("2026-01-04", start, end) {
		t.Error("day before the cycle should be outside")
	}
	if WithinCycle("2026-01-12", start, end) {
		t.Error("day after the cycle should be outside")
	}
}

func TestParseISO_RoundTrips(t *testing.T) {
	d, err := ParseISO("2026-03-09")
	if err != nil {
		t.Fatalf("ParseISO failed: %v", err)
	}
	if got := FormatISO(d); got != "2026-03-09" {
		t.Errorf("round trip gave %s", got)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("expected local midnight, got %v", d)
	}
}
