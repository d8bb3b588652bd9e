// RAM usage collector: combines sysctl hw.memsize, vm_stat page counts and
// memory_pressure's free percentage.
package collector

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Guliveer/machealth/internal/command"
	"github.com/Guliveer/machealth/internal/models"
)

// defaultPageSize is the Apple Silicon page size, used when vm_stat's header
// cannot be parsed.
const defaultPageSize = 16384

const bytesPerGiB = 1 << 30

var (
	pageSizePattern         = regexp.MustCompile(`page size of (\d+) bytes`)
	freePercentPattern      = regexp.MustCompile(`System-wide memory free percentage:\s*(\d+)%`)
	pagesFreePattern        = pagesPattern("Pages free")
	pagesActivePattern      = pagesPattern("Pages active")
	pagesInactivePattern    = pagesPattern("Pages inactive")
	pagesSpeculativePattern = pagesPattern("Pages speculative")
	pagesWiredPattern       = pagesPattern("Pages wired down")
	pagesCompressedPattern  = pagesPattern("Pages occupied by compressor")
)

const pressureMarker = "System-wide memory free percentage"

func pagesPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(name) + `:\s*(\d+)`)
}

// vmStat holds the page counters read from vm_stat.
type vmStat struct {
	PageSize    int
	Free        int
	Active      int
	Inactive    int
	Speculative int
	Wired       int
	Compressed  int
}

// usedBytes is active + wired + compressed pages. Inactive and free pages are
// reclaimable and not counted.
func (v vmStat) usedBytes() float64 {
	return float64(v.Active+v.Wired+v.Compressed) * float64(v.PageSize)
}

// MemoryCollector collects RAM usage and pressure.
type MemoryCollector struct {
	runner  command.Runner
	timeout time.Duration
}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector(r command.Runner, t Timeouts) *MemoryCollector {
	return &MemoryCollector{runner: r, timeout: t.Default}
}

// Name returns the collector identifier.
func (c *MemoryCollector) Name() string { return "memory" }

// Collect returns a models.MemoryFragment. If vm_stat fails the fragment
// still carries the total.
func (c *MemoryCollector) Collect(ctx context.Context) interface{} {
	total := parseMemSize(c.runner.Run(ctx, c.timeout, "sysctl", "-n", "hw.memsize").Output)
	totalGB := round(float64(total)/bytesPerGiB, 1)

	vm := c.runner.Run(ctx, c.timeout, "vm_stat")
	if !vm.OK {
		return models.MemoryFragment{
			TotalGB: models.Float64(totalGB),
			Error:   "vm_stat failed",
		}
	}
	stat := parseVMStat(vm.Output)

	pressure := parsePressure(c.runner.Run(ctx, c.timeout, "memory_pressure").Output)

	return buildMemoryFragment(totalGB, stat, pressure)
}

// IsAvailable returns true.
func (c *MemoryCollector) IsAvailable() bool { return true }

func buildMemoryFragment(totalGB float64, stat vmStat, pressure models.Pressure) models.MemoryFragment {
	usedGB := round(stat.usedBytes()/bytesPerGiB, 1)

	var usedPercent float64
	if totalGB > 0 {
		usedPercent = round(usedGB/totalGB*100, 1)
	}

	return models.MemoryFragment{
		UsedGB:      models.Float64(usedGB),
		TotalGB:     models.Float64(totalGB),
		UsedPercent: models.Float64(usedPercent),
		Pressure:    pressure,
	}
}

// parseMemSize parses sysctl's byte count; anything else is 0.
func parseMemSize(output string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(output), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseVMStat(output string) vmStat {
	stat := vmStat{PageSize: defaultPageSize}
	if v, ok := findInt(pageSizePattern, output); ok {
		stat.PageSize = v
	}
	stat.Free = pageCount(pagesFreePattern, output)
	stat.Active = pageCount(pagesActivePattern, output)
	stat.Inactive = pageCount(pagesInactivePattern, output)
	stat.Speculative = pageCount(pagesSpeculativePattern, output)
	stat.Wired = pageCount(pagesWiredPattern, output)
	stat.Compressed = pageCount(pagesCompressedPattern, output)
	return stat
}

func pageCount(re *regexp.Regexp, output string) int {
	v, _ := findInt(re, output)
	return v
}

// parsePressure classifies memory_pressure's free percentage:
// above 25% nominal, above 10% warn, otherwise critical.
func parsePressure(output string) models.Pressure {
	if !strings.Contains(output, pressureMarker) {
		return models.PressureUnknown
	}
	free, ok := findInt(freePercentPattern, output)
	if !ok {
		return models.PressureUnknown
	}
	switch {
	case free > 25:
		return models.PressureNominal
	case free > 10:
		return models.PressureWarn
	default:
		return models.PressureCritical
	}
}
