package usecase

import (
	"github.com/fiuber/gateway/internal/pkg/logger"
	"github.com/fiuber/gateway/internal/pkg/models"
	"github.com/fiuber/gateway/services/gateway"
)

// publishMetric sends an analytics event to the metrics queue. A failed
// publish must never fail the request that produced it.
func publishMetric(pub gateway.MetricsPublisher, event models.MetricEvent) {
	if err := pub.Publish(event); err != nil {
		logger.Warn("failed to publish metric event",
			logger.String("event", event.Event),
			logger.Err(err))
	}
}

// bestEffort runs an optional enrichment call. Its error is logged and
// discarded; required calls never go through here.
func bestEffort(op string, fn func() error) {
	if err := fn(); err != nil {
		logger.Debug("optional call failed",
			logger.String("op", op),
			logger.Err(err))
	}
}
