package engine

import (
	"math"
	"reflect"
	"testing"
	"time"

	"TokenPulse/internal/domain/models"
)

func TestEvaluateDegenerateResult(t *testing.T) {
	e := NewDefault()

	out := e.Evaluate(Inputs{TokenID: "pepe", Now: testNow})
	if out.Label != models.LabelNeutral {
		t.Fatalf("want NEUTRAL, got %s", out.Label)
	}
	if out.Score != 50 || out.Confidence != 0 || out.RawScore != 0 {
		t.Fatalf("want {50, 0, 0}, got {%v, %v, %v}", out.Score, out.Confidence, out.RawScore)
	}
	if out.TimeframeHint != "insufficient_data" {
		t.Fatalf("want insufficient_data, got %s", out.TimeframeHint)
	}
	if len(out.TopFactors) != 0 || len(out.Traps) != 0 {
		t.Fatalf("want empty factors and traps, got %+v / %+v", out.TopFactors, out.Traps)
	}
	if len(out.TierResults) != 4 {
		t.Fatalf("want all 4 tier results reported, got %d", len(out.TierResults))
	}
	for name, res := range out.TierResults {
		if res.Available {
			t.Fatalf("tier %s unexpectedly available", name)
		}
	}
}

func TestEvaluateWeightRedistribution(t *testing.T) {
	e := NewDefault()

	// Whale flow and momentum available; sentiment and weak signals not.
	in := Inputs{
		TokenID: "pepe",
		Now:     testNow,
		Transactions: []models.Transaction{
			cexTx(models.TxBuy, 100_000, "0x1", testNow.Add(-time.Hour)),
			cexTx(models.TxSell, 50_000, "0x2", testNow.Add(-time.Hour)),
		},
		PriceChanges: models.PriceChangeSet{Change24h: 3},
		Volume:       models.VolumeData{Volume24h: 1_000_000},
	}
	out := e.Evaluate(in)

	sum := 0.0
	for _, f := range out.TopFactors {
		sum += f.Weight
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("effective weights must sum to 1, got %v", sum)
	}

	w := e.Config().Weights
	wantWhale := w.WhaleFlow + (w.Sentiment+w.WeakSignals)*(w.WhaleFlow/(w.WhaleFlow+w.Momentum))
	for _, f := range out.TopFactors {
		if f.Tier == models.TierWhaleFlow && math.Abs(f.Weight-wantWhale) > 1e-9 {
			t.Fatalf("whale weight: want %v, got %v", wantWhale, f.Weight)
		}
	}
}

func TestEvaluateEndToEndWithBullishTrap(t *testing.T) {
	e := NewDefault()

	// Whales dump into a rising market: six CEX sells against positive
	// 24h/7d momentum with confirming volume.
	var txs []models.Transaction
	addrs := []string{"0xs1", "0xs2", "0xs3", "0xs4", "0xs5", "0xs6"}
	for _, a := range addrs {
		txs = append(txs, cexTx(models.TxSell, 100_000, a, testNow.Add(-time.Hour)))
	}
	in := Inputs{
		TokenID:      "pepe",
		Now:          testNow,
		Transactions: txs,
		PriceChanges: models.PriceChangeSet{Change24h: 5, Change7d: 10},
		Volume:       models.VolumeData{Volume24h: 2_000_000, AvgVolume7d: 1_000_000},
	}

	whale := e.AnalyzeWhaleFlow(txs, testNow)
	momentum := e.AnalyzeMomentum(in.PriceChanges, in.Volume)
	if !whale.Available || whale.Score >= -20 {
		t.Fatalf("scenario setup: whale score %v", whale.Score)
	}
	if !momentum.Available || momentum.Score <= 20 {
		t.Fatalf("scenario setup: momentum score %v", momentum.Score)
	}

	out := e.Evaluate(in)

	if len(out.Traps) != 1 || out.Traps[0].Type != models.TrapBullish {
		t.Fatalf("want single bullish trap, got %+v", out.Traps)
	}

	// Recompute the composition from the published formulas rather than
	// hard-coding values, so redistribution arithmetic regressions surface.
	w := e.Config().Weights
	availSum := w.WhaleFlow + w.Momentum
	unavail := w.Sentiment + w.WeakSignals
	wWhale := w.WhaleFlow + unavail*(w.WhaleFlow/availSum)
	wMomentum := w.Momentum + unavail*(w.Momentum/availSum)

	wantRaw := clamp(whale.Score*wWhale+momentum.Score*wMomentum+e.Config().Traps.BullishAdjustment, -100, 100)
	if math.Abs(out.RawScore-wantRaw) > 1e-9 {
		t.Fatalf("raw score: want %v, got %v", wantRaw, out.RawScore)
	}

	agree := 0
	for _, s := range []float64{whale.Score, momentum.Score} {
		if sign(s) == sign(wantRaw) {
			agree++
		}
	}
	confluence := 0.6 + float64(agree)/2*0.4
	wantConf := round(clamp((whale.Confidence*wWhale+momentum.Confidence*wMomentum)*confluence, 0, 100))
	if out.Confidence != wantConf {
		t.Fatalf("confidence: want %v, got %v", wantConf, out.Confidence)
	}

	wantScore := round(clamp((wantRaw+100)/2, 0, 100))
	if out.Score != wantScore {
		t.Fatalf("score: want %v, got %v", wantScore, out.Score)
	}
	if want := e.assignLabel(wantScore, wantConf); out.Label != want {
		t.Fatalf("label: want %s, got %s", want, out.Label)
	}

	if len(out.TopFactors) != 2 {
		t.Fatalf("want 2 factors, got %+v", out.TopFactors)
	}
	if math.Abs(out.TopFactors[0].Contribution) < math.Abs(out.TopFactors[1].Contribution) {
		t.Fatalf("factors not sorted by |contribution|: %+v", out.TopFactors)
	}
	if math.Abs(whale.Score) > 50 && out.TimeframeHint != "3d-7d" {
		t.Fatalf("want whale-led hint 3d-7d, got %s", out.TimeframeHint)
	}
}

func TestEvaluateLowConfidenceForcesNeutral(t *testing.T) {
	e := NewDefault()

	// Three bullish votes push the score high while confidence stays tiny.
	in := Inputs{
		TokenID: "pepe",
		Now:     testNow,
		Votes:   &models.CommunityVotes{Bullish: 3},
	}
	out := e.Evaluate(in)
	if out.Confidence >= e.Config().Labels.MinConfidence {
		t.Fatalf("scenario setup: confidence %v not below override", out.Confidence)
	}
	if out.Score < e.Config().Labels.StrongBuy {
		t.Fatalf("scenario setup: score %v should reach strong-buy range", out.Score)
	}
	if out.Label != models.LabelNeutral {
		t.Fatalf("low confidence must force NEUTRAL, got %s", out.Label)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	e := NewDefault()

	in := Inputs{
		TokenID: "pepe",
		Now:     testNow,
		Transactions: []models.Transaction{
			cexTx(models.TxBuy, 250_000, "0xa", testNow.Add(-time.Hour)),
			cexTx(models.TxSell, 100_000, "0xb", testNow.Add(-2*time.Hour)),
			eoaTx(80_000, testNow.Add(-3*time.Hour)),
			eoaTx(40_000, testNow.Add(-28*time.Hour)),
		},
		PriceChanges: models.PriceChangeSet{Change1h: 1, Change24h: 4, Change7d: -2},
		Volume:       models.VolumeData{Volume24h: 900_000, AvgVolume7d: 750_000, MarketCap: 60_000_000},
		Sentiment:    &models.SentimentRecord{Score: 0.62, Count: 7},
		Social:       &models.SocialRecord{GalaxyScore: 61, AltRank: 40, Sentiment: 66, Interactions24h: 42_000},
		Votes:        &models.CommunityVotes{Bullish: 14, Bearish: 5, Neutral: 2},
		Dev:          &models.DevActivity{Commits: 34},
	}

	first := e.Evaluate(in)
	second := e.Evaluate(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must produce identical output:\n%+v\n%+v", first, second)
	}
}

func TestAssignLabelBoundaries(t *testing.T) {
	e := NewDefault()

	cases := []struct {
		score      float64
		confidence float64
		want       models.SignalLabel
	}{
		{80, 50, models.LabelStrongBuy},
		{75, 50, models.LabelStrongBuy},
		{74, 50, models.LabelBuy},
		{60, 50, models.LabelBuy},
		{59, 50, models.LabelNeutral},
		{41, 50, models.LabelNeutral},
		{40, 50, models.LabelSell}, // falls through the 40<s<60 gap
		{26, 50, models.LabelSell},
		{25, 50, models.LabelStrongSell},
		{10, 50, models.LabelStrongSell},
		{80, 14, models.LabelNeutral}, // confidence override beats score
		{10, 14, models.LabelNeutral},
	}
	for _, tc := range cases {
		if got := e.assignLabel(tc.score, tc.confidence); got != tc.want {
			t.Fatalf("score=%v conf=%v: want %s, got %s", tc.score, tc.confidence, tc.want, got)
		}
	}
}

func TestTimeframeHint(t *testing.T) {
	e := NewDefault()

	if got := e.timeframeHint(tier(60), tier(80)); got != "3d-7d" {
		t.Fatalf("whale flow should lead: got %s", got)
	}
	if got := e.timeframeHint(tier(10), tier(-60)); got != "24h-3d" {
		t.Fatalf("momentum fallback: got %s", got)
	}
	if got := e.timeframeHint(tier(10), tier(10)); got != "24h-7d" {
		t.Fatalf("default hint: got %s", got)
	}
	if got := e.timeframeHint(unavailableTier(), tier(-60)); got != "24h-3d" {
		t.Fatalf("unavailable whale tier must not pick 3d-7d: got %s", got)
	}
}
