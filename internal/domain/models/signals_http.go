package models

// Requests for signal HTTP endpoints. Defined in domain for consistency and reuse.

// SignalRequest carries everything one evaluation needs. Upstream
// collaborators supply freshly queried transactions, price changes, sentiment
// and social data; the engine itself fetches nothing.
type SignalRequest struct {
	TokenID      string          `json:"tokenId" validate:"required"`
	Transactions []Transaction   `json:"transactions"`
	PriceChanges PriceChangeSet  `json:"priceChanges"`
	VolumeData   VolumeData      `json:"volumeData"`
	Sentiment    *SentimentRecord `json:"sentiment,omitempty"`
	Social       *SocialRecord    `json:"social,omitempty"`
	Votes        *CommunityVotes  `json:"communityVotes,omitempty"`
	Dev          *DevActivity     `json:"devActivity,omitempty"`

	// AsOf pins "now" for the lookback-window filters so replayed requests
	// are deterministic. RFC3339 or unix seconds; empty means wall clock.
	AsOf string `json:"asOf,omitempty"`
}
