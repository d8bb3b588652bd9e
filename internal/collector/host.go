// Host identity collector: hostname, OS release, uptime and load averages.
// Uses gopsutil rather than shelling out; these values are read straight from
// sysctl by the library.
package collector

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"

	"github.com/Guliveer/machealth/internal/models"
)

// HostCollector collects host identity and load.
type HostCollector struct {
	info    func(ctx context.Context) (*host.InfoStat, error)
	loadAvg func(ctx context.Context) (*load.AvgStat, error)
}

// NewHostCollector creates a new host collector.
func NewHostCollector() *HostCollector {
	return &HostCollector{
		info:    host.InfoWithContext,
		loadAvg: load.AvgWithContext,
	}
}

// Name returns the collector identifier.
func (c *HostCollector) Name() string { return "host" }

// Collect returns a models.HostFragment. Load averages are optional.
func (c *HostCollector) Collect(ctx context.Context) interface{} {
	info, err := c.info(ctx)
	if err != nil || info == nil {
		return models.HostFragment{Error: "host info unavailable"}
	}

	f := models.HostFragment{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		Arch:            info.KernelArch,
		UptimeSeconds:   models.Uint64(info.Uptime),
	}
	if info.BootTime > 0 {
		f.BootTime = time.Unix(int64(info.BootTime), 0).UTC().Format(time.RFC3339)
	}

	if avg, err := c.loadAvg(ctx); err == nil && avg != nil {
		f.Load1 = models.Float64(round(avg.Load1, 2))
		f.Load5 = models.Float64(round(avg.Load5, 2))
		f.Load15 = models.Float64(round(avg.Load15, 2))
	}
	return f
}

// IsAvailable returns true.
func (c *HostCollector) IsAvailable() bool { return true }
