package engine

import (
	"math"
	"sort"
	"time"

	"TokenPulse/internal/domain/models"
)

// Evaluate runs all four tiers and the trap detector and composes one
// UnifiedSignal. Weight of unavailable tiers is redistributed
// proportionally across available ones so effective weights always sum to
// 1; tier agreement with the composite direction scales confidence.
func (e *Engine) Evaluate(in Inputs) models.UnifiedSignal {
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	whale := e.AnalyzeWhaleFlow(in.Transactions, now)
	momentum := e.AnalyzeMomentum(in.PriceChanges, in.Volume)
	sentiment := e.AnalyzeSentiment(in.Sentiment, in.Social)
	weak := e.AnalyzeWeakSignals(in.Transactions, in.Votes, in.Dev, now)

	tiers := []struct {
		name   string
		weight float64
		result models.TierResult
	}{
		{models.TierWhaleFlow, e.cfg.Weights.WhaleFlow, whale},
		{models.TierMomentum, e.cfg.Weights.Momentum, momentum},
		{models.TierSentiment, e.cfg.Weights.Sentiment, sentiment},
		{models.TierWeakSignals, e.cfg.Weights.WeakSignals, weak},
	}

	perTier := make(map[string]models.TierResult, len(tiers))
	availBaseSum := 0.0
	unavailSum := 0.0
	availableCount := 0
	for _, t := range tiers {
		perTier[t.name] = t.result
		if t.result.Available {
			availBaseSum += t.weight
			availableCount++
		} else {
			unavailSum += t.weight
		}
	}

	// The only early-return path: nothing to fuse.
	if availableCount == 0 {
		return models.UnifiedSignal{
			TokenID:       in.TokenID,
			Label:         models.LabelNeutral,
			Score:         50,
			Confidence:    0,
			RawScore:      0,
			TopFactors:    []models.FactorContribution{},
			Traps:         []models.Trap{},
			TierResults:   perTier,
			TimeframeHint: "insufficient_data",
			EvaluatedAt:   now,
		}
	}

	effective := make(map[string]float64, len(tiers))
	rawScore := 0.0
	baseConfidence := 0.0
	for _, t := range tiers {
		if !t.result.Available {
			continue
		}
		w := t.weight + unavailSum*(t.weight/availBaseSum)
		effective[t.name] = w
		rawScore += t.result.Score * w
		baseConfidence += t.result.Confidence * w
	}

	traps := e.DetectTraps(whale, momentum, sentiment, in.Volume)
	trapAdjustment := 0.0
	confidenceReduction := 0.0
	for _, trap := range traps {
		trapAdjustment += trap.ScoreAdjustment
		confidenceReduction += trap.ConfidenceReduction
	}
	rawScore = clamp(rawScore+trapAdjustment, -100, 100)

	agreement := 0
	for _, t := range tiers {
		if t.result.Available && sign(t.result.Score) == sign(rawScore) {
			agreement++
		}
	}
	confluence := e.cfg.Confluence.Floor +
		float64(agreement)/float64(availableCount)*e.cfg.Confluence.Span

	confidence := round(clamp(baseConfidence*confluence-confidenceReduction, 0, 100))
	score := round(clamp((rawScore+100)/2, 0, 100))

	factors := make([]models.FactorContribution, 0, len(tiers))
	for _, t := range tiers {
		if !t.result.Available {
			continue
		}
		factors = append(factors, models.FactorContribution{
			Tier:         t.name,
			Score:        t.result.Score,
			Weight:       effective[t.name],
			Contribution: round(t.result.Score * effective[t.name]),
		})
	}
	sort.SliceStable(factors, func(i, j int) bool {
		return math.Abs(factors[i].Contribution) > math.Abs(factors[j].Contribution)
	})
	if len(factors) > 3 {
		factors = factors[:3]
	}

	if traps == nil {
		traps = []models.Trap{}
	}

	return models.UnifiedSignal{
		TokenID:       in.TokenID,
		Label:         e.assignLabel(score, confidence),
		Score:         score,
		Confidence:    confidence,
		RawScore:      rawScore,
		TopFactors:    factors,
		Traps:         traps,
		TierResults:   perTier,
		TimeframeHint: e.timeframeHint(whale, momentum),
		EvaluatedAt:   now,
	}
}

// assignLabel maps score and confidence to the final label. Rule order is
// load-bearing: the strong-sell branch must be checked before sell since
// both conditions hold at low scores, and scores of exactly 40 or 60 fall
// through the neutral gap to the sell/buy branches.
func (e *Engine) assignLabel(score, confidence float64) models.SignalLabel {
	cfg := e.cfg.Labels
	switch {
	case confidence < cfg.MinConfidence:
		return models.LabelNeutral
	case score >= cfg.StrongBuy:
		return models.LabelStrongBuy
	case score >= cfg.Buy:
		return models.LabelBuy
	case score > cfg.Sell && score < cfg.Buy:
		return models.LabelNeutral
	case score <= cfg.StrongSell:
		return models.LabelStrongSell
	case score <= cfg.Sell:
		return models.LabelSell
	default:
		return models.LabelNeutral
	}
}

// timeframeHint picks the horizon the signal is expected to play out over:
// strong whale flow leads price by days, strong momentum resolves sooner.
func (e *Engine) timeframeHint(whale, momentum models.TierResult) string {
	switch {
	case whale.Available && math.Abs(whale.Score) > 50:
		return "3d-7d"
	case momentum.Available && math.Abs(momentum.Score) > 50:
		return "24h-3d"
	default:
		return "24h-7d"
	}
}
