// Package collector defines the Collector interface and one implementation per
// health domain. Collectors shell out through a command.Runner, parse the
// free-form tool output and never fail: a domain that cannot be measured
// yields its error sentinel instead.
package collector

import (
	"context"
	"time"
)

// Collector is the interface that all health collectors implement.
type Collector interface {
	// Name returns the report key this collector fills.
	Name() string

	// Collect gathers and parses the domain's metrics. The concrete type of
	// the result is the domain's fragment (or record slice) from package models.
	Collect(ctx context.Context) interface{}

	// IsAvailable reports whether the collector should run at all.
	// Collectors that return false are not registered.
	IsAvailable() bool
}

// Timeouts bounds each external tool invocation.
type Timeouts struct {
	// Default applies to ordinary queries.
	Default time.Duration
	// Availability applies to lightweight "is it there" probes (docker info).
	Availability time.Duration
	// Sampling applies to tools that sample for a while (powermetrics).
	Sampling time.Duration
}

// DefaultTimeouts returns 10s / 5s / 15s.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Default:      10 * time.Second,
		Availability: 5 * time.Second,
		Sampling:     15 * time.Second,
	}
}
