package engine

import (
	"testing"

	"TokenPulse/internal/domain/models"
)

func tier(score float64) models.TierResult {
	return models.TierResult{Score: score, Confidence: 50, Available: true}
}

func unavailableTier() models.TierResult {
	return models.TierResult{Available: false}
}

func TestDetectBullishTrap(t *testing.T) {
	e := NewDefault()

	traps := e.DetectTraps(tier(-30), tier(30), unavailableTier(), models.VolumeData{})
	if len(traps) != 1 {
		t.Fatalf("want exactly 1 trap, got %d: %+v", len(traps), traps)
	}
	trap := traps[0]
	if trap.Type != models.TrapBullish {
		t.Fatalf("want %s, got %s", models.TrapBullish, trap.Type)
	}
	if trap.Severity != models.SeverityHigh {
		t.Fatalf("want HIGH severity, got %s", trap.Severity)
	}
	if trap.ScoreAdjustment != -30 {
		t.Fatalf("want adjustment -30, got %v", trap.ScoreAdjustment)
	}
}

func TestDetectBearishTrap(t *testing.T) {
	e := NewDefault()

	traps := e.DetectTraps(tier(30), tier(-30), unavailableTier(), models.VolumeData{})
	if len(traps) != 1 || traps[0].Type != models.TrapBearish {
		t.Fatalf("want bearish trap, got %+v", traps)
	}
	if traps[0].ScoreAdjustment != 20 {
		t.Fatalf("want adjustment +20, got %v", traps[0].ScoreAdjustment)
	}
}

func TestDetectDeadCatBounce(t *testing.T) {
	e := NewDefault()

	momentum := models.TierResult{
		Score:     10,
		Available: true,
		Factors: map[string]any{
			"change_1h":       5.0,
			"change_7d":       -20.0,
			"volume_confirms": false,
		},
	}
	traps := e.DetectTraps(unavailableTier(), momentum, unavailableTier(), models.VolumeData{})
	if len(traps) != 1 || traps[0].Type != models.TrapDeadCatBounce {
		t.Fatalf("want dead cat bounce, got %+v", traps)
	}

	// Volume confirmation suppresses the rule.
	momentum.Factors["volume_confirms"] = true
	if traps := e.DetectTraps(unavailableTier(), momentum, unavailableTier(), models.VolumeData{}); len(traps) != 0 {
		t.Fatalf("confirmed bounce must not fire, got %+v", traps)
	}
}

func TestDetectSocialPumpDivergence(t *testing.T) {
	e := NewDefault()

	traps := e.DetectTraps(tier(5), tier(0), tier(50), models.VolumeData{})
	if len(traps) != 1 || traps[0].Type != models.TrapSocialPumpDivergent {
		t.Fatalf("want social pump divergence, got %+v", traps)
	}
	if traps[0].ScoreAdjustment != -15 {
		t.Fatalf("want adjustment -15, got %v", traps[0].ScoreAdjustment)
	}

	// Whale flow agreeing with the hype is not a divergence.
	if traps := e.DetectTraps(tier(40), tier(0), tier(50), models.VolumeData{}); len(traps) != 0 {
		t.Fatalf("aligned whale flow must not fire, got %+v", traps)
	}
}

func TestDetectLowLiquidity(t *testing.T) {
	e := NewDefault()

	vol := models.VolumeData{Volume24h: 1_000, MarketCap: 1_000_000}
	traps := e.DetectTraps(unavailableTier(), unavailableTier(), unavailableTier(), vol)
	if len(traps) != 1 || traps[0].Type != models.TrapLowLiquidity {
		t.Fatalf("want low liquidity trap, got %+v", traps)
	}
	if traps[0].ConfidenceReduction != 30 {
		t.Fatalf("want confidence reduction 30, got %v", traps[0].ConfidenceReduction)
	}
	if traps[0].ScoreAdjustment != 0 {
		t.Fatalf("low liquidity must not adjust score, got %v", traps[0].ScoreAdjustment)
	}

	// Unknown market cap: rule stays silent.
	if traps := e.DetectTraps(unavailableTier(), unavailableTier(), unavailableTier(), models.VolumeData{Volume24h: 1_000}); len(traps) != 0 {
		t.Fatalf("zero market cap must not fire, got %+v", traps)
	}
}

func TestDetectTrapsAccumulate(t *testing.T) {
	e := NewDefault()

	momentum := models.TierResult{
		Score:     30,
		Available: true,
		Factors: map[string]any{
			"change_1h":       5.0,
			"change_7d":       -20.0,
			"volume_confirms": false,
		},
	}
	vol := models.VolumeData{Volume24h: 1_000, MarketCap: 1_000_000}
	traps := e.DetectTraps(tier(-30), momentum, unavailableTier(), vol)
	if len(traps) != 3 {
		t.Fatalf("want bullish + dead cat + low liquidity, got %+v", traps)
	}
}
