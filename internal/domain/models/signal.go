package models

import "time"

// TxClassification is the upstream-resolved direction of a whale transaction.
type TxClassification string

const (
	TxBuy      TxClassification = "BUY"
	TxSell     TxClassification = "SELL"
	TxTransfer TxClassification = "TRANSFER"
)

// CounterpartyType is the upstream-resolved counterparty class of a transaction.
type CounterpartyType string

const (
	CounterpartyCEX     CounterpartyType = "CEX"
	CounterpartyDEX     CounterpartyType = "DEX"
	CounterpartyEOA     CounterpartyType = "EOA"
	CounterpartyUnknown CounterpartyType = "UNKNOWN"
)

// Transaction is an immutable, externally classified whale transaction.
// The engine never mutates or persists these.
type Transaction struct {
	Classification   TxClassification `json:"classification"`
	CounterpartyType CounterpartyType `json:"counterpartyType"`
	USDValue         float64          `json:"usdValue"`
	WhaleAddress     string           `json:"whaleAddress"`
	Timestamp        time.Time        `json:"timestamp"`
}

// PriceChangeSet holds percentage price changes per timeframe. Absent values are 0.
type PriceChangeSet struct {
	Change1h  float64 `json:"change1h"`
	Change6h  float64 `json:"change6h"`
	Change24h float64 `json:"change24h"`
	Change7d  float64 `json:"change7d"`
	Change30d float64 `json:"change30d"`
}

// VolumeData holds 24h volume, 7d average volume and market cap in USD.
type VolumeData struct {
	Volume24h   float64 `json:"volume24h"`
	AvgVolume7d float64 `json:"avgVolume7d"`
	MarketCap   float64 `json:"marketCap"`
}

// SentimentRecord is an aggregated news sentiment reading.
// Score is 0..1 where 0 is fully bearish and 1 fully bullish.
type SentimentRecord struct {
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

// SocialRecord holds social intelligence metrics (LunarCrush-style).
type SocialRecord struct {
	GalaxyScore     float64 `json:"galaxyScore"`     // 0..100
	AltRank         int     `json:"altRank"`         // positive, lower is better
	Sentiment       float64 `json:"sentiment"`       // 0..100
	Interactions24h float64 `json:"interactions24h"` // >= 0
}

// CommunityVotes holds community poll counts.
type CommunityVotes struct {
	Bullish int `json:"bullish"`
	Bearish int `json:"bearish"`
	Neutral int `json:"neutral"`
}

// DevActivity holds developer activity over a 4-week window.
type DevActivity struct {
	Commits int `json:"commits"`
}

// TierResult is the self-contained output of a single tier analyzer.
// Score is clamped to [-100,100] and Confidence to [0,100] before the
// result leaves the analyzer. Factors is a per-tier diagnostic bag with a
// fixed key set documented on each analyzer.
type TierResult struct {
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Available  bool           `json:"available"`
	Factors    map[string]any `json:"factors,omitempty"`
}

// TrapType identifies a detected market trap pattern.
type TrapType string

const (
	TrapBullish             TrapType = "BULLISH_TRAP"
	TrapDeadCatBounce       TrapType = "DEAD_CAT_BOUNCE"
	TrapSocialPumpDivergent TrapType = "SOCIAL_PUMP_DIVERGENCE"
	TrapBearish             TrapType = "BEARISH_TRAP"
	TrapLowLiquidity        TrapType = "LOW_LIQUIDITY"
)

// TrapSeverity grades how strongly a trap should be distrusted.
type TrapSeverity string

const (
	SeverityLow    TrapSeverity = "LOW"
	SeverityMedium TrapSeverity = "MEDIUM"
	SeverityHigh   TrapSeverity = "HIGH"
)

// Trap is a detected divergence between tiers. ScoreAdjustment shifts the
// composite raw score; ConfidenceReduction lowers the final confidence.
// Multiple traps accumulate additively in the composer.
type Trap struct {
	Type                TrapType     `json:"type"`
	Severity            TrapSeverity `json:"severity"`
	Description         string       `json:"description"`
	ScoreAdjustment     float64      `json:"scoreAdjustment,omitempty"`
	ConfidenceReduction float64      `json:"confidenceReduction,omitempty"`
}

// SignalLabel is the final actionable direction.
type SignalLabel string

const (
	LabelStrongBuy  SignalLabel = "STRONG BUY"
	LabelBuy        SignalLabel = "BUY"
	LabelNeutral    SignalLabel = "NEUTRAL"
	LabelSell       SignalLabel = "SELL"
	LabelStrongSell SignalLabel = "STRONG SELL"
)

// Tier names used as keys in UnifiedSignal.TierResults and in factor summaries.
const (
	TierWhaleFlow   = "whale_flow"
	TierMomentum    = "momentum"
	TierSentiment   = "sentiment"
	TierWeakSignals = "weak_signals"
)

// FactorContribution is one tier's weighted contribution to the raw score.
type FactorContribution struct {
	Tier         string  `json:"tier"`
	Score        float64 `json:"score"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// UnifiedSignal is the composed output of one evaluation. Score is the
// affine remap of RawScore from [-100,100] to [0,100]; TopFactors holds at
// most three contributions ordered by absolute magnitude.
type UnifiedSignal struct {
	TokenID       string                `json:"tokenId"`
	Label         SignalLabel           `json:"label"`
	Score         float64               `json:"score"`
	Confidence    float64               `json:"confidence"`
	RawScore      float64               `json:"rawScore"`
	TopFactors    []FactorContribution  `json:"topFactors"`
	Traps         []Trap                `json:"traps"`
	TierResults   map[string]TierResult `json:"tierResults"`
	TimeframeHint string                `json:"timeframeHint"`
	EvaluatedAt   time.Time             `json:"evaluatedAt"`
}
