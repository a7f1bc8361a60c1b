package engine

import (
	"math"
	"time"

	"TokenPulse/internal/domain/models"
)

// Engine is the multi-tier evidence-fusion core. It is a pure computation:
// no I/O, no shared state, safe for concurrent use. Every call allocates its
// own accumulators and returns a fresh result.
type Engine struct {
	cfg Config
}

// New creates an engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// NewDefault creates an engine with production constants.
func NewDefault() *Engine {
	return New(DefaultConfig())
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Inputs is one evaluation's worth of caller-supplied market data.
// Now pins the lookback-window filters; identical Inputs produce identical
// output.
type Inputs struct {
	TokenID      string
	Now          time.Time
	Transactions []models.Transaction
	PriceChanges models.PriceChangeSet
	Volume       models.VolumeData
	Sentiment    *models.SentimentRecord
	Social       *models.SocialRecord
	Votes        *models.CommunityVotes
	Dev          *models.DevActivity
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sign returns -1, 0 or 1.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func round(v float64) float64 {
	return math.Round(v)
}
