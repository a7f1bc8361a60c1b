package engine

import (
	"math"
	"testing"
	"time"

	"TokenPulse/internal/domain/models"
)

func eoaTx(usd float64, at time.Time) models.Transaction {
	return models.Transaction{
		Classification:   models.TxTransfer,
		CounterpartyType: models.CounterpartyEOA,
		USDValue:         usd,
		Timestamp:        at,
	}
}

func TestWeakSignalsUnavailableWithoutData(t *testing.T) {
	e := NewDefault()

	res := e.AnalyzeWeakSignals(nil, nil, nil, testNow)
	if res.Available {
		t.Fatalf("expected unavailable, got %+v", res)
	}

	// Fewer than the vote minimum is no data.
	res = e.AnalyzeWeakSignals(nil, &models.CommunityVotes{Bullish: 2}, nil, testNow)
	if res.Available {
		t.Fatalf("expected unavailable below vote minimum, got %+v", res)
	}
}

func TestWeakSignalsEOAVolumeTrend(t *testing.T) {
	e := NewDefault()

	txs := []models.Transaction{
		eoaTx(300_000, testNow.Add(-2*time.Hour)),
		eoaTx(100_000, testNow.Add(-30*time.Hour)),
	}
	res := e.AnalyzeWeakSignals(txs, nil, nil, testNow)
	if !res.Available {
		t.Fatalf("expected available")
	}
	// change = (300k-100k)/100k = 2; signal capped at tanh(2)*30.
	want := clamp(math.Tanh(2)*30, -100, 100)
	if res.Score != want {
		t.Fatalf("want score %v, got %v", want, res.Score)
	}
	if res.Confidence != 30 {
		t.Fatalf("want confidence 30, got %v", res.Confidence)
	}
}

func TestWeakSignalsVoteSkew(t *testing.T) {
	e := NewDefault()

	votes := &models.CommunityVotes{Bullish: 8, Bearish: 2, Neutral: 0}
	res := e.AnalyzeWeakSignals(nil, votes, nil, testNow)
	// (8-2)/10 * 50 = 30; confidence min(100,10*5)*0.4 = 20.
	if res.Score != 30 {
		t.Fatalf("want score 30, got %v", res.Score)
	}
	if res.Confidence != 20 {
		t.Fatalf("want confidence 20, got %v", res.Confidence)
	}
}

func TestWeakSignalsDevActivityBuckets(t *testing.T) {
	e := NewDefault()

	cases := []struct {
		commits int
		bonus   float64
	}{
		{150, 15},
		{80, 10},
		{30, 5},
		{5, 0},
		{0, 0},
	}
	for _, tc := range cases {
		res := e.AnalyzeWeakSignals(nil, nil, &models.DevActivity{Commits: tc.commits}, testNow)
		if !res.Available {
			t.Fatalf("commits=%d: expected available", tc.commits)
		}
		if res.Score != tc.bonus {
			t.Fatalf("commits=%d: want score %v, got %v", tc.commits, tc.bonus, res.Score)
		}
		if res.Confidence != 20 {
			t.Fatalf("commits=%d: want confidence 20, got %v", tc.commits, res.Confidence)
		}
	}
}

func TestWeakSignalsCombined(t *testing.T) {
	e := NewDefault()

	txs := []models.Transaction{
		eoaTx(200_000, testNow.Add(-time.Hour)),
		eoaTx(100_000, testNow.Add(-26*time.Hour)),
	}
	votes := &models.CommunityVotes{Bullish: 10, Bearish: 10}
	dev := &models.DevActivity{Commits: 120}

	res := e.AnalyzeWeakSignals(txs, votes, dev, testNow)
	want := clamp(math.Tanh(1)*30+0+15, -100, 100)
	if res.Score != want {
		t.Fatalf("want score %v, got %v", want, res.Score)
	}
	// 30 (eoa) + min(100,20*5)*0.4 (votes) + 20 (dev) = 90.
	if res.Confidence != 90 {
		t.Fatalf("want confidence 90, got %v", res.Confidence)
	}
}
