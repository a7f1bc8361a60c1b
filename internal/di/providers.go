package di

import (
	"fmt"

	"TokenPulse/internal/engine"
	"TokenPulse/internal/handler/api"
	"TokenPulse/internal/usecase"
	"TokenPulse/pkg/config"
	xhttp "TokenPulse/pkg/http"
	applogger "TokenPulse/pkg/logger"
	"TokenPulse/pkg/metrics"
	"TokenPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	level := cfg.Logging.Level
	if level == "" {
		level = "info"
	}
	format := cfg.Logging.Format
	if format == "" {
		format = "console"
	}
	output := cfg.Logging.Output
	if output == "" {
		output = "stdout"
	}

	l, err := applogger.New(&applogger.Config{Level: level, Format: format, Output: output})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideEngine builds the fusion engine, applying config-file overrides on
// top of the built-in constants.
func ProvideEngine(cfg *config.Config) *engine.Engine {
	ec := engine.DefaultConfig()

	weightSum := cfg.Engine.WhaleFlowWeight + cfg.Engine.MomentumWeight +
		cfg.Engine.SentimentWeight + cfg.Engine.WeakSignalsWeight
	if weightSum > 0 {
		ec.Weights = engine.TierWeights{
			WhaleFlow:   cfg.Engine.WhaleFlowWeight,
			Momentum:    cfg.Engine.MomentumWeight,
			Sentiment:   cfg.Engine.SentimentWeight,
			WeakSignals: cfg.Engine.WeakSignalsWeight,
		}
	}
	if cfg.Engine.WhaleLookback > 0 {
		ec.WhaleFlow.Lookback = cfg.Engine.WhaleLookback
	}

	return engine.New(ec)
}

// ProvideEvaluator wires the engine with metrics and logging.
func ProvideEvaluator(eng *engine.Engine, rec *metrics.Recorder, l *applogger.Logger) *usecase.SignalEvaluator {
	return usecase.NewSignalEvaluator(eng, rec, l)
}

// ProvideHandler creates the HTTP handler for the signal endpoints.
func ProvideHandler(l *applogger.Logger, ev *usecase.SignalEvaluator) xhttp.Handler {
	return api.NewSignalsHandler(l, ev)
}

// ProvideApp assembles the application.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler) *server.App {
	return server.New(cfg, l, h)
}
