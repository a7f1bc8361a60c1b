package engine

import (
	"math"

	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/util"
)

// DetectTraps runs the cross-tier divergence heuristics over the whale flow,
// momentum and sentiment results plus liquidity data. The five rules are
// independent and may all fire on the same evaluation; the composer sums
// their adjustments additively.
func (e *Engine) DetectTraps(whale, momentum, sentiment models.TierResult, vol models.VolumeData) []models.Trap {
	cfg := e.cfg.Traps
	var traps []models.Trap

	// Price rising while whales net-sell on exchanges.
	if momentum.Score > 20 && whale.Available && whale.Score < -20 {
		traps = append(traps, models.Trap{
			Type:            models.TrapBullish,
			Severity:        models.SeverityHigh,
			Description:     "price rising while whales distribute on exchanges",
			ScoreAdjustment: cfg.BullishAdjustment,
		})
	}

	// Short-term pop inside a deep weekly decline without volume backing.
	change1h := util.Num(momentum.Factors, "change_1h")
	change7d := util.Num(momentum.Factors, "change_7d")
	if change1h > 3 && change7d < -15 && !util.Flag(momentum.Factors, "volume_confirms") {
		traps = append(traps, models.Trap{
			Type:            models.TrapDeadCatBounce,
			Severity:        models.SeverityMedium,
			Description:     "bounce within a downtrend lacks volume confirmation",
			ScoreAdjustment: cfg.DeadCatAdjustment,
		})
	}

	// Social hype with no matching exchange flow.
	if sentiment.Available && sentiment.Score > 40 && whale.Available && math.Abs(whale.Score) < 10 {
		traps = append(traps, models.Trap{
			Type:            models.TrapSocialPumpDivergent,
			Severity:        models.SeverityMedium,
			Description:     "social excitement without supporting whale flow",
			ScoreAdjustment: cfg.SocialPumpAdjustment,
		})
	}

	// Price falling while whales net-buy; the positive adjustment softens
	// the bearish read.
	if momentum.Score < -20 && whale.Available && whale.Score > 20 {
		traps = append(traps, models.Trap{
			Type:            models.TrapBearish,
			Severity:        models.SeverityHigh,
			Description:     "price falling while whales accumulate on exchanges",
			ScoreAdjustment: cfg.BearishAdjustment,
		})
	}

	marketCap := util.Finite(vol.MarketCap)
	if marketCap > 0 && util.Finite(vol.Volume24h)/marketCap < cfg.LiquidityFloor {
		traps = append(traps, models.Trap{
			Type:                models.TrapLowLiquidity,
			Severity:            models.SeverityLow,
			Description:         "thin 24h volume relative to market cap",
			ConfidenceReduction: cfg.LowLiquidityPenalty,
		})
	}

	return traps
}
