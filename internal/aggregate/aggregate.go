// Package aggregate merges collector results into a Report and derives its
// warnings and overall status. Everything here is a pure function of its
// inputs; the caller supplies the timestamp.
package aggregate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Guliveer/machealth/internal/models"
)

const (
	diskCriticalPercent = 90
	diskWarnPercent     = 80

	tempCriticalCelsius = 70
	tempWarnCelsius     = 60
)

// missing is the reason given for a domain whose collector produced nothing.
const missing = "collector did not run"

// Build assembles a Report from the registry's name -> result map, then
// computes warnings and status.
func Build(mode models.Mode, timestamp string, results map[string]interface{}) *models.Report {
	r := &models.Report{
		Timestamp:    timestamp,
		Mode:         mode,
		CPU:          models.CPUFragment{Error: missing},
		Memory:       models.MemoryFragment{Error: missing},
		Temperature:  models.TemperatureFragment{Error: missing},
		DiskInternal: models.DiskInternalFragment{Error: missing},
		DiskExternal: make([]models.DiskRecord, 0),
		Docker:       models.DockerFragment{Available: false},
		TopProcesses: make([]models.ProcessRecord, 0),
	}

	if cpu, ok := results["cpu"].(models.CPUFragment); ok {
		r.CPU = cpu
	}
	if mem, ok := results["memory"].(models.MemoryFragment); ok {
		r.Memory = mem
	}
	if temp, ok := results["temperature"].(models.TemperatureFragment); ok {
		r.Temperature = temp
	}
	if disk, ok := results["disk_internal"].(models.DiskInternalFragment); ok {
		r.DiskInternal = disk
	}
	if disks, ok := results["disk_external"].([]models.DiskRecord); ok && disks != nil {
		r.DiskExternal = disks
	}
	if docker, ok := results["docker"].(models.DockerFragment); ok {
		r.Docker = docker
	}
	if procs, ok := results["top_processes"].([]models.ProcessRecord); ok && procs != nil {
		r.TopProcesses = procs
	}
	if host, ok := results["host"].(models.HostFragment); ok {
		r.Host = &host
	}

	// Deep sections appear only in deep mode.
	if mode == models.ModeDeep {
		r.CPUDetailed = &models.CPUDeepFragment{Error: missing}
		if deep, ok := results["cpu_detailed"].(models.CPUDeepFragment); ok {
			r.CPUDetailed = &deep
		}
		r.GPU = &models.GPUFragment{Error: missing}
		if gpu, ok := results["gpu"].(models.GPUFragment); ok {
			r.GPU = &gpu
		}
	}

	r.Warnings = Warnings(r)
	r.Status = Verdict(r.Warnings)
	return r
}

// Warnings evaluates the fixed threshold rules in order: temperature, memory
// pressure, disk usage.
func Warnings(r *models.Report) []models.Warning {
	warnings := make([]models.Warning, 0)

	if w, ok := temperatureWarning(r.Temperature); ok {
		warnings = append(warnings, w)
	}
	if w, ok := memoryWarning(r.Memory); ok {
		warnings = append(warnings, w)
	}
	if w, ok := diskWarning(r.DiskInternal); ok {
		warnings = append(warnings, w)
	}
	return warnings
}

// Verdict is critical if any warning is critical, warn if any warning exists,
// healthy otherwise.
func Verdict(warnings []models.Warning) models.Status {
	status := models.StatusHealthy
	for _, w := range warnings {
		if w.Severity == models.SeverityCritical {
			return models.StatusCritical
		}
		status = models.StatusWarn
	}
	return status
}

func temperatureWarning(t models.TemperatureFragment) (models.Warning, bool) {
	if t.SSDCelsius == nil {
		return models.Warning{}, false
	}
	celsius := *t.SSDCelsius
	msg := fmt.Sprintf("SSD temperature %dC", celsius)
	switch {
	case celsius >= tempCriticalCelsius:
		return models.Warning{Severity: models.SeverityCritical, Message: msg}, true
	case celsius >= tempWarnCelsius:
		return models.Warning{Severity: models.SeverityWarn, Message: msg}, true
	}
	return models.Warning{}, false
}

func memoryWarning(m models.MemoryFragment) (models.Warning, bool) {
	switch m.Pressure {
	case models.PressureCritical:
		return models.Warning{Severity: models.SeverityCritical, Message: "Memory pressure critical"}, true
	case models.PressureWarn:
		return models.Warning{Severity: models.SeverityWarn, Message: "Memory pressure elevated"}, true
	}
	return models.Warning{}, false
}

func diskWarning(d models.DiskInternalFragment) (models.Warning, bool) {
	pct, ok := ParsePercent(d.UsedPercent)
	if !ok {
		return models.Warning{}, false
	}
	msg := fmt.Sprintf("Disk %d%% full", pct)
	switch {
	case pct >= diskCriticalPercent:
		return models.Warning{Severity: models.SeverityCritical, Message: msg}, true
	case pct >= diskWarnPercent:
		return models.Warning{Severity: models.SeverityWarn, Message: msg}, true
	}
	return models.Warning{}, false
}

// ParsePercent parses df's capacity column ("87%"). Anything unparsable
// reports false rather than failing the aggregation.
func ParsePercent(s string) (int, bool) {
	s = strings.TrimRight(strings.TrimSpace(s), "%")
	if s == "" {
		return 0, false
	}
	pct, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return pct, true
}
