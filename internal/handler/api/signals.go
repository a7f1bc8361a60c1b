package api

import (
	"net/http"
	"time"

	models "TokenPulse/internal/domain/models"
	svcmetrics "TokenPulse/internal/service/metrics"
	"TokenPulse/internal/service/ratelimit"
	"TokenPulse/internal/usecase"
	xhttp "TokenPulse/pkg/http"
	xlogger "TokenPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Per-client budget for the evaluate endpoint.
const (
	rateCapacity     = 20
	rateRefillPerSec = 10
)

// SignalsHandler exposes the fusion engine over HTTP.
type SignalsHandler struct {
	logger    *xlogger.Logger
	evaluator *usecase.SignalEvaluator
	limiter   *ratelimit.Limiter
}

func NewSignalsHandler(logger *xlogger.Logger, evaluator *usecase.SignalEvaluator) *SignalsHandler {
	svcmetrics.Register()
	return &SignalsHandler{logger: logger, evaluator: evaluator, limiter: ratelimit.New()}
}

func (h *SignalsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/signal", h.Signal)
	g.GET("/health", h.Health)
}

// Signal evaluates one token's market data and returns the unified signal.
func (h *SignalsHandler) Signal(c echo.Context) error {
	start := time.Now()
	endpoint := "signal"
	defer func() {
		svcmetrics.EndpointLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	if !h.limiter.Allow(c.RealIP(), rateCapacity, rateRefillPerSec) {
		svcmetrics.EndpointErrors.WithLabelValues(endpoint).Inc()
		return xhttp.DataResponse(c, http.StatusTooManyRequests, nil)
	}

	req := &models.SignalRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		svcmetrics.EndpointErrors.WithLabelValues(endpoint).Inc()
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.evaluator.Evaluate(c.Request().Context(), req)
	return xhttp.SuccessResponse(c, res)
}

// Health reports liveness. The engine holds no state or connections, so
// being up is being healthy.
func (h *SignalsHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
