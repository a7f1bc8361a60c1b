package engine

import (
	"math"
	"time"

	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/util"
)

const eoaWindow = 24 * time.Hour

// AnalyzeWeakSignals aggregates the low-trust confirmation signals: EOA
// transfer volume trend, community vote skew and developer activity. An EOA
// volume surge is read as attention, a mildly bullish proxy, not direction;
// dev activity is a non-directional health bonus.
//
// Factor keys: eoa_volume_change_pct, eoa_tx_count, vote_total, vote_signal,
// dev_commits, dev_bonus.
func (e *Engine) AnalyzeWeakSignals(txs []models.Transaction, votes *models.CommunityVotes, dev *models.DevActivity, now time.Time) models.TierResult {
	cfg := e.cfg.WeakSignals
	winStart := now.Add(-eoaWindow)
	prevStart := now.Add(-2 * eoaWindow)

	var (
		curVolume, prevVolume float64
		eoaCount              int
	)
	for _, tx := range txs {
		if tx.CounterpartyType != models.CounterpartyEOA {
			continue
		}
		value := util.Finite(tx.USDValue)
		switch {
		case !tx.Timestamp.Before(winStart) && !tx.Timestamp.After(now):
			curVolume += value
			eoaCount++
		case !tx.Timestamp.Before(prevStart) && tx.Timestamp.Before(winStart):
			prevVolume += value
			eoaCount++
		}
	}
	hasEOA := eoaCount > 0

	eoaVolumeChange := 0.0
	if prevVolume > 0 {
		eoaVolumeChange = (curVolume - prevVolume) / prevVolume
	}
	eoaSignal := 0.0
	if hasEOA {
		eoaSignal = math.Tanh(eoaVolumeChange) * cfg.EOAGain
	}

	var (
		voteSignal, voteConf float64
		hasVotes             bool
		voteTotal            int
	)
	if votes != nil {
		voteTotal = votes.Bullish + votes.Bearish + votes.Neutral
		if voteTotal >= cfg.MinVotes {
			hasVotes = true
			voteSignal = float64(votes.Bullish-votes.Bearish) / float64(voteTotal) * cfg.VoteGain
			voteConf = math.Min(100, float64(voteTotal)*cfg.VotePerCount)
		}
	}

	var (
		devBonus float64
		hasDev   bool
	)
	if dev != nil {
		hasDev = true
		switch {
		case dev.Commits > cfg.DevHighBar:
			devBonus = cfg.DevHighBonus
		case dev.Commits > cfg.DevMidBar:
			devBonus = cfg.DevMidBonus
		case dev.Commits > cfg.DevLowBar:
			devBonus = cfg.DevLowBonus
		}
	}

	if !hasEOA && !hasVotes && !hasDev {
		return models.TierResult{Available: false}
	}

	confidence := 0.0
	if hasEOA {
		confidence += 30
	}
	confidence += voteConf * 0.4
	if hasDev {
		confidence += 20
	}

	factors := map[string]any{
		"eoa_volume_change_pct": eoaVolumeChange * 100,
		"eoa_tx_count":          eoaCount,
		"vote_total":            voteTotal,
		"vote_signal":           voteSignal,
	}
	if dev != nil {
		factors["dev_commits"] = dev.Commits
		factors["dev_bonus"] = devBonus
	}

	return models.TierResult{
		Score:      clamp(eoaSignal+voteSignal+devBonus, -100, 100),
		Confidence: round(math.Min(100, confidence)),
		Available:  true,
		Factors:    factors,
	}
}
