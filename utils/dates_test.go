package utils

import "testing"

func TestValidDay(t *testing.T) {
	valid := []string{"2026-08-30", "2026-01-01", "2024-02-29"}
	for _, s := range valid {
		if !ValidDay(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	invalid := []string{"", "2026-8-30", "30.08.2026", "2026-13-01", "2025-02-29", "yesterday"}
	for _, s := range invalid {
		if ValidDay(s) {
			t.Errorf("%s should be invalid", s)
		}
	}
}

func TestDaysBefore(t *testing.T) {
	if got := DaysBefore("2026-08-30", 6); got != "2026-08-24" {
		t.Errorf("got %s", got)
	}
	if got := DaysBefore("2026-03-01", 1); got != "2026-02-28" {
		t.Errorf("month boundary: got %s", got)
	}
	if got := DaysBefore("not-a-date", 7); got != "not-a-date" {
		t.Errorf("malformed input must come back unchanged, got %s", got)
	}
}

func TestPrettyGarnitures(t *testing.T) {
	cases := map[string]string{
		"":                             "",
		"soğan, turşu":                 "Çıkarılacaklar: soğan, turşu",
		"Çıkarılacaklar: soğan":        "Çıkarılacaklar: soğan",
		"çıkarılacaklar:  turşu ":      "Çıkarılacaklar: turşu",
		"  Çıkarılacaklar:   domates ": "Çıkarılacaklar: domates",
	}
	for in, want := range cases {
		if got := PrettyGarnitures(in); got != want {
			t.Errorf("PrettyGarnitures(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(90); got != "90.00 ₺" {
		t.Errorf("got %q", got)
	}
	if got := FormatAmount(85.5); got != "85.50 ₺" {
		t.Errorf("got %q", got)
	}
}
