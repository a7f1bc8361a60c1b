package engine

import (
	"math"

	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/util"
)

// AnalyzeSentiment combines the news-sentiment score with social
// intelligence metrics. Social is favored in the blend as the more
// real-time component. Either input may be absent; with neither the tier is
// unavailable.
//
// Factor keys: news_score, news_count, social_score, galaxy_score,
// social_sentiment, interaction_weight.
func (e *Engine) AnalyzeSentiment(news *models.SentimentRecord, social *models.SocialRecord) models.TierResult {
	cfg := e.cfg.Sentiment

	var (
		newsScore, newsConf     float64
		socialScore, socialConf float64
		hasNews, hasSocial      bool
	)

	factors := map[string]any{}

	if news != nil {
		hasNews = true
		score := util.Finite(news.Score)
		newsScore = (score - 0.5) * 200
		newsConf = math.Min(100, float64(news.Count)*10)
		factors["news_score"] = newsScore
		factors["news_count"] = news.Count
	}

	if social != nil && util.Finite(social.GalaxyScore) > 0 {
		hasSocial = true
		galaxy := util.Finite(social.GalaxyScore)
		sentiment := util.Finite(social.Sentiment)
		interactions := util.Finite(social.Interactions24h)

		galaxySignal := (galaxy - 50) * 2
		sentSignal := (sentiment - 50) * 2
		interactionWeight := math.Min(1, interactions/cfg.InteractionTarget)

		socialScore = (galaxySignal*0.5 + sentSignal*0.5) * (0.5 + interactionWeight*0.5)
		socialConf = round(math.Min(100, interactionWeight*70+30))

		factors["social_score"] = socialScore
		factors["galaxy_score"] = galaxy
		factors["social_sentiment"] = sentiment
		factors["interaction_weight"] = interactionWeight
	}

	if !hasNews && !hasSocial {
		return models.TierResult{Available: false}
	}

	var score, confidence float64
	switch {
	case hasNews && hasSocial:
		score = cfg.NewsWeight*newsScore + cfg.SocialWeight*socialScore
		confidence = cfg.NewsWeight*newsConf + cfg.SocialWeight*socialConf
	case hasNews:
		score = newsScore
		confidence = newsConf
	default:
		score = socialScore
		confidence = socialConf
	}

	return models.TierResult{
		Score:      round(clamp(score, -100, 100)),
		Confidence: round(clamp(confidence, 0, 100)),
		Available:  true,
		Factors:    factors,
	}
}
