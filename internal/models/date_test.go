package models

import (
	"testing"
	"time"
)

func TestDay(t *testing.T) {
	karachi := time.FixedZone("PKT", 5*60*60)
	in := time.Date(2026, 10, 19, 2, 30, 0, 0, karachi)

	got := Day(in)
	want := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", got.Location())
	}
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2026-01-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Format(DateLayout) != "2026-01-05" {
		t.Errorf("round trip mismatch: %s", got.Format(DateLayout))
	}

	if _, err := ParseDay("05/01/2026"); err == nil {
		t.Error("expected error for non ISO date")
	}
}
