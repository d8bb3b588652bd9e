// Package collector provides a registry for managing health collectors.
// Collectors are registered at startup; CollectAll then runs them one at a
// time in registration order.
package collector

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Registry manages all registered collectors and orchestrates collection.
type Registry struct {
	collectors []Collector
	logger     *zap.Logger
}

// NewRegistry creates a new collector registry with the given logger.
// A nil logger disables logging.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		collectors: make([]Collector, 0),
		logger:     logger,
	}
}

// Register adds a collector if it is available. Unavailable collectors are
// logged and skipped.
func (r *Registry) Register(c Collector) {
	if c.IsAvailable() {
		r.collectors = append(r.collectors, c)
		r.logger.Debug("Registered collector", zap.String("name", c.Name()))
	} else {
		r.logger.Debug("Collector not enabled, skipping", zap.String("name", c.Name()))
	}
}

// CollectAll runs every registered collector sequentially and returns a map
// of collector name -> result. A collector that panics is logged and left
// out of the map.
func (r *Registry) CollectAll(ctx context.Context) map[string]interface{} {
	results := make(map[string]interface{}, len(r.collectors))

	for _, c := range r.collectors {
		start := time.Now()
		data, err := r.collectOne(ctx, c)
		if err != nil {
			r.logger.Error("Collection failed",
				zap.String("collector", c.Name()),
				zap.Error(err))
			continue
		}
		results[c.Name()] = data
		r.logger.Debug("Collected",
			zap.String("collector", c.Name()),
			zap.Duration("took", time.Since(start)))
	}

	return results
}

func (r *Registry) collectOne(ctx context.Context, c Collector) (data interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("collector panicked: %v", p)
		}
	}()
	return c.Collect(ctx), nil
}

// Collectors returns a copy of all registered collectors.
func (r *Registry) Collectors() []Collector {
	result := make([]Collector, len(r.collectors))
	copy(result, r.collectors)
	return result
}
