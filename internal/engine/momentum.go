package engine

import (
	"math"

	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/util"
)

// AnalyzeMomentum scores multi-timeframe price momentum with volume-intensity
// confirmation. Each timeframe saturates through tanh with a divisor that
// widens for longer horizons, then the bounded momenta blend with
// recency-leaning weights.
//
// Factor keys: change_1h, change_6h, change_24h, change_7d, change_30d,
// momentum_score, vol_ratio, volume_confirms.
func (e *Engine) AnalyzeMomentum(pc models.PriceChangeSet, vol models.VolumeData) models.TierResult {
	cfg := e.cfg.Momentum

	c1h := util.Finite(pc.Change1h)
	c6h := util.Finite(pc.Change6h)
	c24h := util.Finite(pc.Change24h)
	c7d := util.Finite(pc.Change7d)
	c30d := util.Finite(pc.Change30d)
	volume24h := util.Finite(vol.Volume24h)
	avgVolume7d := util.Finite(vol.AvgVolume7d)

	if c1h == 0 && c6h == 0 && c24h == 0 && c7d == 0 && c30d == 0 && volume24h == 0 {
		return models.TierResult{Available: false}
	}

	m1h := math.Tanh(c1h/cfg.Divisor1h) * 100
	m6h := math.Tanh(c6h/cfg.Divisor6h) * 100
	m24h := math.Tanh(c24h/cfg.Divisor24h) * 100
	m7d := math.Tanh(c7d/cfg.Divisor7d) * 100
	m30d := math.Tanh(c30d/cfg.Divisor30d) * 100

	momentum := m1h*cfg.Weight1h + m6h*cfg.Weight6h + m24h*cfg.Weight24h +
		m7d*cfg.Weight7d + m30d*cfg.Weight30d

	volRatio := 1.0
	if avgVolume7d > 0 {
		volRatio = volume24h / avgVolume7d
	}
	volSignal := math.Tanh((volRatio - 1) * 2)

	// Zero counts as neither direction, so it never matches.
	sameDirection := sign(momentum) != 0 && sign(momentum) == sign(volSignal)
	confirmation := cfg.ConfirmPenalty
	if sameDirection {
		confirmation = cfg.ConfirmBoost
	}

	score := round(clamp(momentum*confirmation, -100, 100))

	nonZero := 0
	for _, c := range []float64{c1h, c6h, c24h, c7d, c30d} {
		if c != 0 {
			nonZero++
		}
	}
	volPart := 0.0
	if volRatio > 0 {
		volPart = 20
	}
	confidence := round(math.Min(100, float64(nonZero)/5*80+volPart))

	return models.TierResult{
		Score:      score,
		Confidence: confidence,
		Available:  true,
		Factors: map[string]any{
			"change_1h":       c1h,
			"change_6h":       c6h,
			"change_24h":      c24h,
			"change_7d":       c7d,
			"change_30d":      c30d,
			"momentum_score":  momentum,
			"vol_ratio":       volRatio,
			"volume_confirms": sameDirection,
		},
	}
}
