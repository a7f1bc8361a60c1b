package usecase

import (
	"context"
	"time"

	"TokenPulse/internal/domain/models"
	"TokenPulse/internal/engine"
	"TokenPulse/pkg/logger"
	"TokenPulse/pkg/metrics"
	"TokenPulse/pkg/util"
)

// SignalEvaluator drives the fusion engine for one request and records
// observability around the pure computation.
type SignalEvaluator struct {
	engine  *engine.Engine
	metrics *metrics.Recorder
	logger  *logger.Logger
}

func NewSignalEvaluator(eng *engine.Engine, rec *metrics.Recorder, l *logger.Logger) *SignalEvaluator {
	return &SignalEvaluator{engine: eng, metrics: rec, logger: l}
}

// Evaluate maps the request onto engine inputs and composes the unified
// signal. The engine itself cannot fail; malformed numerics degrade to
// zero-defaults inside the analyzers.
func (s *SignalEvaluator) Evaluate(ctx context.Context, req *models.SignalRequest) models.UnifiedSignal {
	_ = ctx // the engine is synchronous and non-blocking

	now := util.ParseTimeDefault(req.AsOf, time.Now().UTC())
	start := time.Now()

	out := s.engine.Evaluate(engine.Inputs{
		TokenID:      req.TokenID,
		Now:          now,
		Transactions: req.Transactions,
		PriceChanges: req.PriceChanges,
		Volume:       req.VolumeData,
		Sentiment:    req.Sentiment,
		Social:       req.Social,
		Votes:        req.Votes,
		Dev:          req.Dev,
	})

	if s.metrics != nil {
		s.metrics.RecordLatency("evaluate", time.Since(start).Seconds())
		s.metrics.RecordEvaluation(string(out.Label))
		s.metrics.RecordLastScore(out.TokenID, out.Score)
		for _, trap := range out.Traps {
			s.metrics.RecordTrap(string(trap.Type))
		}
		for tier, res := range out.TierResults {
			if !res.Available {
				s.metrics.RecordTierUnavailable(tier)
			}
		}
	}

	if s.logger != nil {
		s.logger.Debug("signal evaluated",
			logger.String("token", out.TokenID),
			logger.String("label", string(out.Label)),
			logger.Float64("score", out.Score),
			logger.Float64("confidence", out.Confidence),
			logger.Int("traps", len(out.Traps)),
		)
	}

	return out
}
