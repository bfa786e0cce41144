// Package marketdata produces the synthetic price history served by the API.
//
// Prices follow a multiplicative random walk: each day's last price is the
// previous one times (1+f) for f drawn uniformly from Bounds. Open, high and
// low are fixed offsets of last, so a candle is not guaranteed to be
// internally consistent (low can exceed open). The forecast fields are noise
// around last. A real forecasting model can replace RandomWalk by implementing
// Generator.
package marketdata

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// Offsets used to derive the rest of a candle from its last price.
const (
	openFactor = 0.99
	highFactor = 1.02
	lowFactor  = 0.98

	predLo         = -0.01
	predHi         = 0.015
	confidenceBand = 0.03

	minVolume = 100_000
	maxVolume = 5_000_000
)

// IndexSymbol names the single synthetic market index series.
const IndexSymbol = "KSE100"

// IndexBaseline is the index level the walk starts from.
const IndexBaseline = 65000.0

var (
	// StockBounds is the daily fluctuation range for company prices.
	StockBounds = Bounds{Lo: -0.025, Hi: 0.035}
	// IndexBounds is the narrower daily range for the market index.
	IndexBounds = Bounds{Lo: -0.01, Hi: 0.015}
)

// Seed is a series' symbol and starting price.
type Seed struct {
	Symbol    string
	BasePrice float64
}

// IndexSeed returns the seed of the market index series.
func IndexSeed() Seed {
	return Seed{Symbol: IndexSymbol, BasePrice: IndexBaseline}
}

// Bounds is a daily fractional fluctuation range [Lo, Hi].
type Bounds struct {
	Lo float64
	Hi float64
}

// Validate requires finite -1 < Lo <= Hi, which keeps every price strictly positive.
func (b Bounds) Validate() error {
	if !isFinite(b.Lo) || !isFinite(b.Hi) {
		return fmt.Errorf("bounds [%v, %v] must be finite", b.Lo, b.Hi)
	}
	if b.Lo <= -1 {
		return fmt.Errorf("lower bound %v must be greater than -1", b.Lo)
	}
	if b.Lo > b.Hi {
		return fmt.Errorf("lower bound %v is above upper bound %v", b.Lo, b.Hi)
	}
	return nil
}

// Candle is one generated day.
type Candle struct {
	Date            time.Time
	Last            float64
	Open            float64
	High            float64
	Low             float64
	Volume          int64
	PredClose       float64
	ConfidenceUpper float64
	ConfidenceLower float64
	// Fluctuation is the f that moved the previous last price to this one.
	Fluctuation float64
}

// Rounded returns c with prices rounded to two decimals for storage.
func (c Candle) Rounded() Candle {
	c.Last = roundToDecimal(c.Last, 2)
	c.Open = roundToDecimal(c.Open, 2)
	c.High = roundToDecimal(c.High, 2)
	c.Low = roundToDecimal(c.Low, 2)
	c.PredClose = roundToDecimal(c.PredClose, 2)
	c.ConfidenceUpper = roundToDecimal(c.ConfidenceUpper, 2)
	c.ConfidenceLower = roundToDecimal(c.ConfidenceLower, 2)
	return c
}

// Generator produces one candle per date for a seed, in date order.
type Generator interface {
	Series(seed Seed, dates []time.Time) []Candle
}

// RandomWalk is the Generator backed by a bounded multiplicative random walk.
// It is safe for concurrent use.
type RandomWalk struct {
	bounds Bounds

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomWalk creates a RandomWalk drawing from rng. A nil rng gets a
// randomly seeded PCG source.
func NewRandomWalk(bounds Bounds, rng *rand.Rand) (*RandomWalk, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomWalk{bounds: bounds, rng: rng}, nil
}

// Bounds returns the walk's fluctuation range.
func (w *RandomWalk) Bounds() Bounds {
	return w.bounds
}

// Series walks seed.BasePrice across dates. The walk advances on every date,
// so callers that skip already-stored dates still get the same shape.
func (w *RandomWalk) Series(seed Seed, dates []time.Time) []Candle {
	w.mu.Lock()
	defer w.mu.Unlock()

	candles := make([]Candle, 0, len(dates))
	price := seed.BasePrice
	for _, date := range dates {
		f := w.uniform(w.bounds.Lo, w.bounds.Hi)
		price *= 1 + f

		pred := price * (1 + w.uniform(predLo, predHi))
		candles = append(candles, Candle{
			Date:            date,
			Last:            price,
			Open:            price * openFactor,
			High:            price * highFactor,
			Low:             price * lowFactor,
			Volume:          minVolume + w.rng.Int64N(maxVolume-minVolume),
			PredClose:       pred,
			ConfidenceUpper: pred * (1 + confidenceBand),
			ConfidenceLower: pred * (1 - confidenceBand),
			Fluctuation:     f,
		})
	}
	return candles
}

func (w *RandomWalk) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*w.rng.Float64()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func roundToDecimal(value float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(value*factor) / factor
}
