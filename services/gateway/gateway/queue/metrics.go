package gateway_queue

import (
	"github.com/fiuber/gateway/internal/pkg/models"
	nsqpkg "github.com/fiuber/gateway/internal/pkg/nsq"
)

// MetricsEmitter publishes analytics events to the metrics queue. The
// producer is process-wide, opened once at startup and injected here.
type MetricsEmitter struct {
	producer *nsqpkg.Producer
	topic    string
}

// NewMetricsEmitter creates a metrics emitter over an existing producer
func NewMetricsEmitter(producer *nsqpkg.Producer, topic string) *MetricsEmitter {
	return &MetricsEmitter{
		producer: producer,
		topic:    topic,
	}
}

// Publish enqueues one event. No delivery guarantee beyond a successful
// enqueue; callers treat failures as best-effort.
func (e *MetricsEmitter) Publish(event models.MetricEvent) error {
	return e.producer.Publish(e.topic, event)
}
