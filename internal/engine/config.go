package engine

import "time"

// Config gathers every tunable constant of the fusion engine in one
// injectable place: base tier weights, momentum divisors, trap thresholds
// and adjustment magnitudes, label cut-offs. Tests probe boundary behavior
// by overriding individual values; production uses DefaultConfig with
// optional overrides from the config file.
type Config struct {
	Weights     TierWeights       `yaml:"weights"`
	WhaleFlow   WhaleFlowConfig   `yaml:"whale_flow"`
	Momentum    MomentumConfig    `yaml:"momentum"`
	Sentiment   SentimentConfig   `yaml:"sentiment"`
	WeakSignals WeakSignalsConfig `yaml:"weak_signals"`
	Traps       TrapConfig        `yaml:"traps"`
	Labels      LabelConfig       `yaml:"labels"`
	Confluence  ConfluenceConfig  `yaml:"confluence"`
}

// TierWeights are the base composer weights. They must sum to 1; weight of
// unavailable tiers is redistributed proportionally at compose time.
type TierWeights struct {
	WhaleFlow   float64 `yaml:"whale_flow"`
	Momentum    float64 `yaml:"momentum"`
	Sentiment   float64 `yaml:"sentiment"`
	WeakSignals float64 `yaml:"weak_signals"`
}

type WhaleFlowConfig struct {
	Lookback      time.Duration `yaml:"lookback"`
	RatioWeight   float64       `yaml:"ratio_weight"`
	FlowWeight    float64       `yaml:"flow_weight"`
	SurgeGain     float64       `yaml:"surge_gain"`
	BreadthGain   float64       `yaml:"breadth_gain"`
	BreadthTarget float64       `yaml:"breadth_target"` // whales for full breadth signal
	TxTarget      float64       `yaml:"tx_target"`      // transactions for full count confidence
	WhaleTarget   float64       `yaml:"whale_target"`   // whales for full breadth confidence
}

type MomentumConfig struct {
	// Divisors widen with the horizon: larger swings are normal over longer windows.
	Divisor1h  float64 `yaml:"divisor_1h"`
	Divisor6h  float64 `yaml:"divisor_6h"`
	Divisor24h float64 `yaml:"divisor_24h"`
	Divisor7d  float64 `yaml:"divisor_7d"`
	Divisor30d float64 `yaml:"divisor_30d"`

	// Recency-leaning timeframe weights; 24h carries the largest single weight.
	Weight1h  float64 `yaml:"weight_1h"`
	Weight6h  float64 `yaml:"weight_6h"`
	Weight24h float64 `yaml:"weight_24h"`
	Weight7d  float64 `yaml:"weight_7d"`
	Weight30d float64 `yaml:"weight_30d"`

	ConfirmBoost   float64 `yaml:"confirm_boost"`   // volume agrees with price direction
	ConfirmPenalty float64 `yaml:"confirm_penalty"` // volume disagrees
}

type SentimentConfig struct {
	NewsWeight        float64 `yaml:"news_weight"`
	SocialWeight      float64 `yaml:"social_weight"`
	InteractionTarget float64 `yaml:"interaction_target"` // interactions for full weight
}

type WeakSignalsConfig struct {
	EOAGain       float64 `yaml:"eoa_gain"`  // cap of the EOA activity signal
	VoteGain      float64 `yaml:"vote_gain"` // cap of the community vote signal
	MinVotes      int     `yaml:"min_votes"`
	VotePerCount  float64 `yaml:"vote_per_count"` // confidence per vote
	DevHighBar    int     `yaml:"dev_high_bar"`
	DevHighBonus  float64 `yaml:"dev_high_bonus"`
	DevMidBar     int     `yaml:"dev_mid_bar"`
	DevMidBonus   float64 `yaml:"dev_mid_bonus"`
	DevLowBar     int     `yaml:"dev_low_bar"`
	DevLowBonus   float64 `yaml:"dev_low_bonus"`
}

type TrapConfig struct {
	BullishAdjustment    float64 `yaml:"bullish_adjustment"`
	DeadCatAdjustment    float64 `yaml:"dead_cat_adjustment"`
	SocialPumpAdjustment float64 `yaml:"social_pump_adjustment"`
	BearishAdjustment    float64 `yaml:"bearish_adjustment"`
	LowLiquidityPenalty  float64 `yaml:"low_liquidity_penalty"` // confidence reduction
	LiquidityFloor       float64 `yaml:"liquidity_floor"`       // volume24h / marketCap
}

// LabelConfig holds the score cut-offs for label assignment. Rule order in
// the composer is load-bearing (see assignLabel); these are only magnitudes.
type LabelConfig struct {
	StrongBuy     float64 `yaml:"strong_buy"`
	Buy           float64 `yaml:"buy"`
	Sell          float64 `yaml:"sell"`
	StrongSell    float64 `yaml:"strong_sell"`
	MinConfidence float64 `yaml:"min_confidence"` // below this, label forced NEUTRAL
}

type ConfluenceConfig struct {
	Floor float64 `yaml:"floor"` // multiplier when no tier agrees
	Span  float64 `yaml:"span"`  // added when all tiers agree
}

// DefaultConfig returns the production constants.
func DefaultConfig() Config {
	return Config{
		Weights: TierWeights{
			WhaleFlow:   0.40,
			Momentum:    0.30,
			Sentiment:   0.20,
			WeakSignals: 0.10,
		},
		WhaleFlow: WhaleFlowConfig{
			Lookback:      24 * time.Hour,
			RatioWeight:   0.5,
			FlowWeight:    0.5,
			SurgeGain:     0.3,
			BreadthGain:   0.2,
			BreadthTarget: 10,
			TxTarget:      10,
			WhaleTarget:   5,
		},
		Momentum: MomentumConfig{
			Divisor1h:  5,
			Divisor6h:  8,
			Divisor24h: 10,
			Divisor7d:  20,
			Divisor30d: 30,
			Weight1h:   0.15,
			Weight6h:   0.20,
			Weight24h:  0.30,
			Weight7d:   0.25,
			Weight30d:  0.10,

			ConfirmBoost:   1.2,
			ConfirmPenalty: 0.85,
		},
		Sentiment: SentimentConfig{
			NewsWeight:        0.4,
			SocialWeight:      0.6,
			InteractionTarget: 100_000,
		},
		WeakSignals: WeakSignalsConfig{
			EOAGain:      30,
			VoteGain:     50,
			MinVotes:     3,
			VotePerCount: 5,
			DevHighBar:   100,
			DevHighBonus: 15,
			DevMidBar:    50,
			DevMidBonus:  10,
			DevLowBar:    10,
			DevLowBonus:  5,
		},
		Traps: TrapConfig{
			BullishAdjustment:    -30,
			DeadCatAdjustment:    -20,
			SocialPumpAdjustment: -15,
			BearishAdjustment:    20,
			LowLiquidityPenalty:  30,
			LiquidityFloor:       0.02,
		},
		Labels: LabelConfig{
			StrongBuy:     75,
			Buy:           60,
			Sell:          40,
			StrongSell:    25,
			MinConfidence: 15,
		},
		Confluence: ConfluenceConfig{
			Floor: 0.6,
			Span:  0.4,
		},
	}
}
