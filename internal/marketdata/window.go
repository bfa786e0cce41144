package marketdata

import (
	"fmt"
	"time"

	"nomix/internal/models"
)

// Window is an inclusive range of day offsets around an anchor date.
type Window struct {
	Anchor time.Time
	From   int
	To     int
}

// FullWindow covers 30 days of history through 10 days of forecast.
func FullWindow(anchor time.Time) Window {
	return Window{Anchor: models.Day(anchor), From: -30, To: 10}
}

// WeekWindow covers the anchor day and the six days after it.
func WeekWindow(anchor time.Time) Window {
	return Window{Anchor: models.Day(anchor), From: 0, To: 6}
}

// Validate rejects inverted windows.
func (w Window) Validate() error {
	if w.From > w.To {
		return fmt.Errorf("window start offset %d is after end offset %d", w.From, w.To)
	}
	return nil
}

// Dates returns the consecutive days of the window in ascending order.
func (w Window) Dates() []time.Time {
	if w.From > w.To {
		return nil
	}
	anchor := models.Day(w.Anchor)
	dates := make([]time.Time, 0, w.To-w.From+1)
	for off := w.From; off <= w.To; off++ {
		dates = append(dates, anchor.AddDate(0, 0, off))
	}
	return dates
}

// Start returns the first day of the window.
func (w Window) Start() time.Time {
	return models.Day(w.Anchor).AddDate(0, 0, w.From)
}

// End returns the last day of the window.
func (w Window) End() time.Time {
	return models.Day(w.Anchor).AddDate(0, 0, w.To)
}
