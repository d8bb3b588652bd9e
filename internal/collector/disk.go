// Storage collectors: internal SSD health and free space, and enumeration of
// external physical disks.
package collector

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/Guliveer/machealth/internal/command"
	"github.com/Guliveer/machealth/internal/models"
)

var (
	diskIDPattern        = regexp.MustCompile(`(?m)^/dev/(disk\d+)`)
	diskMediaNamePattern = regexp.MustCompile(`Device / Media Name:\s*(.+)`)
	diskSizePattern      = regexp.MustCompile(`Disk Size:\s*([^\(]+)`)
)

// DiskInternalCollector collects SMART health and root filesystem usage for
// the boot disk.
type DiskInternalCollector struct {
	runner  command.Runner
	timeout time.Duration
	device  string
}

// NewDiskInternalCollector creates an internal disk collector for device.
// An empty device defaults to DefaultInternalDevice.
func NewDiskInternalCollector(r command.Runner, t Timeouts, device string) *DiskInternalCollector {
	if device == "" {
		device = DefaultInternalDevice
	}
	return &DiskInternalCollector{runner: r, timeout: t.Default, device: device}
}

// Name returns the collector identifier.
func (c *DiskInternalCollector) Name() string { return "disk_internal" }

// Collect returns a models.DiskInternalFragment. SMART attributes and df
// fields are each optional; only when neither yields anything is the error
// sentinel returned.
func (c *DiskInternalCollector) Collect(ctx context.Context) interface{} {
	var f models.DiskInternalFragment

	smart := c.runner.Run(ctx, c.timeout, "smartctl", smartctlArgs(c.device)...)
	applySMARTAttributes(&f, smart.Output)

	df := c.runner.Run(ctx, c.timeout, "df", "-h", "/")
	if df.OK {
		applyDiskUsage(&f, df.Output)
	}

	if f.IsZero() {
		return models.DiskInternalFragment{Error: "could not collect disk info"}
	}
	return f
}

// IsAvailable returns true.
func (c *DiskInternalCollector) IsAvailable() bool { return true }

func applySMARTAttributes(f *models.DiskInternalFragment, output string) {
	if !hasSMARTData(output) {
		return
	}
	if health, ok := parseSMARTHealth(output); ok {
		f.Health = health
	}
	if wear, ok := parseSMARTWear(output); ok {
		f.WearPercent = models.Int(wear)
	}
	if tb, ok := parseSMARTWritten(output); ok {
		f.DataWrittenTB = models.Float64(tb)
	}
}

// applyDiskUsage reads df's second line positionally:
// Filesystem Size Used Avail Capacity ...
func applyDiskUsage(f *models.DiskInternalFragment, output string) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 2 {
		return
	}
	parts := strings.Fields(lines[1])
	if len(parts) < 5 {
		return
	}
	f.Size = parts[1]
	f.Used = parts[2]
	f.Available = parts[3]
	f.UsedPercent = parts[4]
}

// DiskExternalCollector enumerates external physical disks. Synthesized APFS
// containers are excluded by asking diskutil for physical disks only.
type DiskExternalCollector struct {
	runner  command.Runner
	timeout time.Duration
}

// NewDiskExternalCollector creates a new external disk collector.
func NewDiskExternalCollector(r command.Runner, t Timeouts) *DiskExternalCollector {
	return &DiskExternalCollector{runner: r, timeout: t.Default}
}

// Name returns the collector identifier.
func (c *DiskExternalCollector) Name() string { return "disk_external" }

// Collect returns a []models.DiskRecord, empty when nothing is attached or
// diskutil is unavailable.
func (c *DiskExternalCollector) Collect(ctx context.Context) interface{} {
	disks := make([]models.DiskRecord, 0)

	list := c.runner.Run(ctx, c.timeout, "diskutil", "list", "external", "physical")
	if !list.OK || strings.Contains(list.Output, "No disks") || strings.TrimSpace(list.Output) == "" {
		return disks
	}

	for _, id := range parseDiskIDs(list.Output) {
		disks = append(disks, c.describe(ctx, id))
	}
	return disks
}

// IsAvailable returns true.
func (c *DiskExternalCollector) IsAvailable() bool { return true }

// describe gathers diskutil info and best-effort SMART data for one disk.
// External enclosures often do not pass SMART through; the disk is kept
// regardless.
func (c *DiskExternalCollector) describe(ctx context.Context, id string) models.DiskRecord {
	device := "/dev/" + id
	rec := models.DiskRecord{ID: id}

	info := c.runner.Run(ctx, c.timeout, "diskutil", "info", device)
	if name, ok := findString(diskMediaNamePattern, info.Output); ok {
		rec.Name = name
	}
	if size, ok := findString(diskSizePattern, info.Output); ok {
		rec.Size = size
	}

	smart := c.runner.Run(ctx, c.timeout, "smartctl", smartctlArgs(device)...)
	if hasSMARTData(smart.Output) {
		if health, ok := parseSMARTHealth(smart.Output); ok {
			rec.Health = health
		}
		if celsius, ok := parseSMARTTemperature(smart.Output); ok {
			rec.TemperatureCelsius = models.Int(celsius)
		}
	}
	return rec
}

func parseDiskIDs(output string) []string {
	var ids []string
	for _, m := range diskIDPattern.FindAllStringSubmatch(output, -1) {
		ids = append(ids, m[1])
	}
	return ids
}
