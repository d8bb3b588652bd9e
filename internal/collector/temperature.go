// SSD temperature collector: the NVMe drive's SMART temperature is the only
// thermal reading available without a kernel extension, so it stands in for
// system temperature.
package collector

import (
	"context"
	"strings"
	"time"

	"github.com/Guliveer/machealth/internal/command"
	"github.com/Guliveer/machealth/internal/models"
)

const (
	tempCriticalCelsius = 70
	tempWarnCelsius     = 60
)

// TemperatureCollector collects the internal SSD temperature.
type TemperatureCollector struct {
	runner  command.Runner
	timeout time.Duration
	device  string
}

// NewTemperatureCollector creates a temperature collector for device.
// An empty device defaults to DefaultInternalDevice.
func NewTemperatureCollector(r command.Runner, t Timeouts, device string) *TemperatureCollector {
	if device == "" {
		device = DefaultInternalDevice
	}
	return &TemperatureCollector{runner: r, timeout: t.Default, device: device}
}

// Name returns the collector identifier.
func (c *TemperatureCollector) Name() string { return "temperature" }

// Collect returns a models.TemperatureFragment.
func (c *TemperatureCollector) Collect(ctx context.Context) interface{} {
	res := c.runner.Run(ctx, c.timeout, "smartctl", smartctlArgs(c.device)...)
	return parseTemperatureFragment(res.Output)
}

// IsAvailable returns true.
func (c *TemperatureCollector) IsAvailable() bool { return true }

func parseTemperatureFragment(output string) models.TemperatureFragment {
	if output == "" || !strings.Contains(output, "Temperature") {
		return models.TemperatureFragment{Error: "smartctl failed (brew install smartmontools?)"}
	}
	celsius, ok := parseSMARTTemperature(output)
	if !ok {
		return models.TemperatureFragment{Error: "could not parse temperature"}
	}
	return models.TemperatureFragment{
		SSDCelsius: models.Int(celsius),
		Status:     ClassifyTemperature(celsius),
		Note:       "SSD temperature (system proxy)",
	}
}

// ClassifyTemperature grades an SSD reading: >= 70 critical, >= 60 warn.
func ClassifyTemperature(celsius int) models.ThermalStatus {
	switch {
	case celsius >= tempCriticalCelsius:
		return models.ThermalCritical
	case celsius >= tempWarnCelsius:
		return models.ThermalWarn
	default:
		return models.ThermalNormal
	}
}
