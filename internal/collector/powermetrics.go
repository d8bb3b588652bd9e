// Deep CPU and GPU collectors: sample powermetrics once for one second.
// powermetrics requires root, so both collectors run only in deep mode.
package collector

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/Guliveer/machealth/internal/command"
	"github.com/Guliveer/machealth/internal/models"
)

var (
	eClusterPattern     = regexp.MustCompile(`E-Cluster HW active residency:\s*([\d.]+)%`)
	pClusterPattern     = regexp.MustCompile(`P\d?-Cluster HW active residency:\s*([\d.]+)%`)
	cpuPowerPattern     = regexp.MustCompile(`CPU Power:\s*([\d.]+)\s*mW`)
	packagePowerPattern = regexp.MustCompile(`Package Power:\s*([\d.]+)\s*mW`)

	gpuActivePattern    = regexp.MustCompile(`GPU HW active residency:\s*([\d.]+)%`)
	gpuIdlePattern      = regexp.MustCompile(`GPU idle residency:\s*([\d.]+)%`)
	gpuPowerPattern     = regexp.MustCompile(`GPU Power:\s*(\d+)\s*mW`)
	gpuFrequencyPattern = regexp.MustCompile(`GPU HW active frequency:\s*(\d+)\s*MHz`)
)

func powermetricsArgs(sampler string) []string {
	return []string{"powermetrics", "--samplers", sampler, "-n", "1", "-i", "1000"}
}

// CPUDeepCollector collects E/P cluster residency and CPU power.
type CPUDeepCollector struct {
	runner  command.Runner
	timeout time.Duration
	enabled bool
}

// NewCPUDeepCollector creates a deep CPU collector. It is only available
// when enabled is true.
func NewCPUDeepCollector(r command.Runner, t Timeouts, enabled bool) *CPUDeepCollector {
	return &CPUDeepCollector{runner: r, timeout: t.Sampling, enabled: enabled}
}

// Name returns the collector identifier.
func (c *CPUDeepCollector) Name() string { return "cpu_detailed" }

// Collect returns a models.CPUDeepFragment.
func (c *CPUDeepCollector) Collect(ctx context.Context) interface{} {
	res := c.runner.Run(ctx, c.timeout, "sudo", powermetricsArgs("cpu_power")...)
	if !res.OK {
		return models.CPUDeepFragment{Error: "powermetrics failed (need sudo?)"}
	}
	return parseCPUDeepFragment(res.Output)
}

// IsAvailable returns true in deep mode.
func (c *CPUDeepCollector) IsAvailable() bool { return c.enabled }

func parseCPUDeepFragment(output string) models.CPUDeepFragment {
	var f models.CPUDeepFragment
	found := false

	if v, ok := findFloat(eClusterPattern, output); ok {
		f.EClusterActivePercent = models.Float64(v)
		found = true
	}
	if avg, n, ok := parsePClusters(output); ok {
		f.PClusterActivePercent = models.Float64(avg)
		f.PClusterCount = models.Int(n)
		found = true
	}
	if v, ok := findFloat(cpuPowerPattern, output); ok {
		f.CPUPowerMW = models.Float64(v)
		found = true
	}
	if v, ok := findFloat(packagePowerPattern, output); ok {
		f.PackagePowerMW = models.Float64(v)
		found = true
	}

	if !found {
		return models.CPUDeepFragment{Error: "could not parse powermetrics output"}
	}
	return f
}

// parsePClusters averages every P-cluster residency line (P-Cluster,
// P0-Cluster, P1-Cluster, ...) to two decimals.
func parsePClusters(output string) (avg float64, count int, ok bool) {
	var sum float64
	for _, m := range pClusterPattern.FindAllStringSubmatch(output, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0, 0, false
	}
	return round(sum/float64(count), 2), count, true
}

// GPUDeepCollector collects GPU residency, power and frequency.
type GPUDeepCollector struct {
	runner  command.Runner
	timeout time.Duration
	enabled bool
}

// NewGPUDeepCollector creates a deep GPU collector. It is only available
// when enabled is true.
func NewGPUDeepCollector(r command.Runner, t Timeouts, enabled bool) *GPUDeepCollector {
	return &GPUDeepCollector{runner: r, timeout: t.Sampling, enabled: enabled}
}

// Name returns the collector identifier.
func (c *GPUDeepCollector) Name() string { return "gpu" }

// Collect returns a models.GPUFragment.
func (c *GPUDeepCollector) Collect(ctx context.Context) interface{} {
	res := c.runner.Run(ctx, c.timeout, "sudo", powermetricsArgs("gpu_power")...)
	if !res.OK {
		return models.GPUFragment{Error: "powermetrics gpu failed"}
	}
	return parseGPUFragment(res.Output)
}

// IsAvailable returns true in deep mode.
func (c *GPUDeepCollector) IsAvailable() bool { return c.enabled }

func parseGPUFragment(output string) models.GPUFragment {
	var f models.GPUFragment
	found := false

	if v, ok := findFloat(gpuActivePattern, output); ok {
		f.ActivePercent = models.Float64(v)
		found = true
	}
	if v, ok := findFloat(gpuIdlePattern, output); ok {
		f.IdlePercent = models.Float64(v)
		found = true
	}
	if v, ok := findInt(gpuPowerPattern, output); ok {
		f.PowerMW = models.Int(v)
		found = true
	}
	if v, ok := findInt(gpuFrequencyPattern, output); ok {
		f.FrequencyMHz = models.Int(v)
		found = true
	}

	if !found {
		return models.GPUFragment{Error: "could not parse GPU metrics"}
	}
	return f
}
