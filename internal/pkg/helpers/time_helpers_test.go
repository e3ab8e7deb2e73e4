package helpers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-02")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 2 {
		t.Errorf("ParseDate = %v, want 2024-03-02", d)
	}

	if _, err := ParseDate("02-03-2024"); err == nil {
		t.Error("wrong layout should fail")
	}
	if _, err := ParseDate("2024-13-40"); err == nil {
		t.Error("impossible date should fail")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("empty string should fail")
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2024-03-02" {
		t.Errorf("FormatDate = %q, want 2024-03-02", got)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("ParseDuration(90m) = %v, want 90m", got)
	}
	if got := ParseDuration("not-a-duration", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration fallback = %v, want 1h", got)
	}
}
