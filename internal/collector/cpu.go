// CPU usage collector: parses the single zero-delay sample of top(1).
package collector

import (
	"context"
	"regexp"
	"time"

	"github.com/Guliveer/machealth/internal/command"
	"github.com/Guliveer/machealth/internal/models"
)

// Matches: CPU usage: 12.3% user, 5.1% sys, 82.6% idle
var cpuUsagePattern = regexp.MustCompile(`CPU usage:\s*([\d.]+)%\s*user,\s*([\d.]+)%\s*sys,\s*([\d.]+)%\s*idle`)

// CPUCollector collects overall CPU usage.
type CPUCollector struct {
	runner  command.Runner
	timeout time.Duration
}

// NewCPUCollector creates a new CPU collector.
func NewCPUCollector(r command.Runner, t Timeouts) *CPUCollector {
	return &CPUCollector{runner: r, timeout: t.Default}
}

// Name returns the collector identifier.
func (c *CPUCollector) Name() string { return "cpu" }

// Collect runs top and returns a models.CPUFragment.
func (c *CPUCollector) Collect(ctx context.Context) interface{} {
	res := c.runner.Run(ctx, c.timeout, "top", "-l", "1", "-s", "0", "-n", "0")
	if !res.OK {
		return models.CPUFragment{Error: "top command failed"}
	}
	return parseCPUFragment(res.Output)
}

// IsAvailable returns true.
func (c *CPUCollector) IsAvailable() bool { return true }

func parseCPUFragment(output string) models.CPUFragment {
	user, sys, idle, ok := parseCPUUsage(output)
	if !ok {
		return models.CPUFragment{Error: "could not parse top output"}
	}
	return models.CPUFragment{
		UserPercent:      models.Float64(user),
		SystemPercent:    models.Float64(sys),
		IdlePercent:      models.Float64(idle),
		TotalUsedPercent: models.Float64(round(user+sys, 1)),
	}
}

func parseCPUUsage(output string) (user, sys, idle float64, ok bool) {
	m := cpuUsagePattern.FindStringSubmatch(output)
	if m == nil {
		return 0, 0, 0, false
	}
	vals := make([]float64, 3)
	for i := range vals {
		v, err := parseFloat(m[i+1])
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], true
}
