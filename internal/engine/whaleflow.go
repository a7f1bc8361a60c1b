package engine

import (
	"math"
	"strings"
	"time"

	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/util"
)

// AnalyzeWhaleFlow scores net exchange flow from CEX-classified buy/sell
// transactions inside the lookback window ending at now. The period of equal
// length immediately before it supplies the volume-change baseline.
//
// Factor keys: buy_ratio_pct, net_flow_usd, buy_count, sell_count,
// buy_volume_usd, sell_volume_usd, unique_whales, volume_change_pct.
func (e *Engine) AnalyzeWhaleFlow(txs []models.Transaction, now time.Time) models.TierResult {
	cfg := e.cfg.WhaleFlow
	winStart := now.Add(-cfg.Lookback)
	prevStart := now.Add(-2 * cfg.Lookback)

	var (
		buyCount, sellCount   int
		buyVolume, sellVolume float64
		prevVolume            float64
		whales                = map[string]struct{}{}
	)

	for _, tx := range txs {
		if tx.CounterpartyType != models.CounterpartyCEX {
			continue
		}
		if tx.Classification != models.TxBuy && tx.Classification != models.TxSell {
			continue
		}
		value := util.Finite(tx.USDValue)

		switch {
		case !tx.Timestamp.Before(winStart) && !tx.Timestamp.After(now):
			if tx.Classification == models.TxBuy {
				buyCount++
				buyVolume += value
			} else {
				sellCount++
				sellVolume += value
			}
			if addr := strings.ToLower(tx.WhaleAddress); addr != "" {
				whales[addr] = struct{}{}
			}
		case !tx.Timestamp.Before(prevStart) && tx.Timestamp.Before(winStart):
			prevVolume += value
		}
	}

	totalCount := buyCount + sellCount
	if totalCount == 0 {
		return models.TierResult{Available: false}
	}

	// Guarded even though totalCount > 0 here.
	buyRatio := 0.5
	if totalCount > 0 {
		buyRatio = float64(buyCount) / float64(totalCount)
	}

	netFlow := buyVolume - sellVolume
	totalVolume := buyVolume + sellVolume

	volumeChange := 0.0
	if prevVolume > 0 {
		volumeChange = (totalVolume - prevVolume) / prevVolume
	}

	ratioSignal := (buyRatio - 0.5) * 2

	flowSignal := 0.0
	if totalVolume > 0 {
		flowSignal = math.Tanh(netFlow / (totalVolume * 0.5))
	}

	volumeSurge := clamp(volumeChange, 0, 1)
	breadthSignal := math.Min(1, float64(len(whales))/cfg.BreadthTarget)

	rawScore := ratioSignal*cfg.RatioWeight + flowSignal*cfg.FlowWeight
	amplifier := 1 + volumeSurge*cfg.SurgeGain + breadthSignal*cfg.BreadthGain
	score := round(clamp(rawScore*amplifier*100, -100, 100))

	countConf := math.Min(1, float64(totalCount)/cfg.TxTarget)
	breadthConf := math.Min(1, float64(len(whales))/cfg.WhaleTarget)
	confidence := round((countConf*0.6 + breadthConf*0.4) * 100)

	return models.TierResult{
		Score:      score,
		Confidence: confidence,
		Available:  true,
		Factors: map[string]any{
			"buy_ratio_pct":     buyRatio * 100,
			"net_flow_usd":      netFlow,
			"buy_count":         buyCount,
			"sell_count":        sellCount,
			"buy_volume_usd":    buyVolume,
			"sell_volume_usd":   sellVolume,
			"unique_whales":     len(whales),
			"volume_change_pct": volumeChange * 100,
		},
	}
}
