package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"nomix/internal/logger"
	"nomix/internal/marketdata"
	"nomix/internal/services"
)

func init() {
	logger.Init("test")
}

type stubSeeder struct {
	calls   atomic.Int32
	anchors chan time.Time
	err     error
}

func (s *stubSeeder) Seed(marketdata.Window) (*services.SeedResult, error) {
	return &services.SeedResult{}, nil
}

func (s *stubSeeder) SeedFull(time.Time) (*services.SeedResult, error) {
	return &services.SeedResult{}, nil
}

func (s *stubSeeder) SeedWeek(anchor time.Time) (*services.SeedResult, error) {
	s.calls.Add(1)
	if s.anchors != nil {
		s.anchors <- anchor
	}
	if s.err != nil {
		return nil, s.err
	}
	return &services.SeedResult{StocksCreated: 70, IndexCreated: 7}, nil
}

func TestNewRejectsBadSpec(t *testing.T) {
	if _, err := New(&stubSeeder{}, "not a cron spec"); err == nil {
		t.Fatal("expected error for invalid spec")
	}
}

func TestRunNowSeedsCurrentWeek(t *testing.T) {
	seeder := &stubSeeder{anchors: make(chan time.Time, 1)}
	s, err := New(seeder, "0 1 * * *")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fixed := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.RunNow()

	if got := <-seeder.anchors; !got.Equal(fixed) {
		t.Errorf("expected anchor %v, got %v", fixed, got)
	}
}

func TestRunNowSurvivesFailure(t *testing.T) {
	seeder := &stubSeeder{err: errors.New("db down")}
	s, err := New(seeder, "@daily")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.RunNow()
	s.RunNow()

	if n := seeder.calls.Load(); n != 2 {
		t.Errorf("expected 2 attempts, got %d", n)
	}
}

func TestStartStop(t *testing.T) {
	seeder := &stubSeeder{}
	s, err := New(seeder, "0 1 * * *")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

	want := time.Date(2026, 10, 20, 1, 0, 0, 0, time.UTC)
	if next := s.Next(); !next.Equal(want) {
		t.Errorf("expected next run %v, got %v", want, next)
	}

	s.Start()
	s.Stop()

	if seeder.calls.Load() != 0 {
		t.Error("seed must not run before its schedule fires")
	}
}
