// Top N processes collector: parses ps aux and keeps the heaviest CPU users.
package collector

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Guliveer/machealth/internal/command"
	"github.com/Guliveer/machealth/internal/models"
)

const (
	// DefaultTopProcesses is the number of processes kept when unset.
	DefaultTopProcesses = 5

	// psFieldCount is USER PID %CPU %MEM VSZ RSS TT STAT STARTED TIME COMMAND.
	psFieldCount = 11

	maxCommandLength = 30

	// Processes at or below this CPU share are idle noise.
	minCPUPercent = 0.1
)

// ProcessCollector collects the top N processes by CPU usage.
type ProcessCollector struct {
	runner  command.Runner
	timeout time.Duration
	topN    int
}

// NewProcessCollector creates a new process collector that returns the top N
// processes sorted by CPU usage descending. A non-positive topN falls back to
// DefaultTopProcesses.
func NewProcessCollector(r command.Runner, t Timeouts, topN int) *ProcessCollector {
	if topN <= 0 {
		topN = DefaultTopProcesses
	}
	return &ProcessCollector{runner: r, timeout: t.Default, topN: topN}
}

// Name returns the collector identifier.
func (c *ProcessCollector) Name() string { return "top_processes" }

// Collect returns a []models.ProcessRecord.
func (c *ProcessCollector) Collect(ctx context.Context) interface{} {
	res := c.runner.Run(ctx, c.timeout, "ps", "aux")
	if !res.OK {
		return make([]models.ProcessRecord, 0)
	}
	return topProcesses(parseProcesses(res.Output), c.topN)
}

// IsAvailable returns true.
func (c *ProcessCollector) IsAvailable() bool { return true }

// parseProcesses parses every ps aux line after the header. Malformed lines
// are skipped, as are processes using negligible CPU.
func parseProcesses(output string) []models.ProcessRecord {
	procs := make([]models.ProcessRecord, 0)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 2 {
		return procs
	}

	for _, line := range lines[1:] {
		rec, ok := parseProcessLine(line)
		if !ok || rec.CPUPercent <= minCPUPercent {
			continue
		}
		procs = append(procs, rec)
	}
	return procs
}

func parseProcessLine(line string) (models.ProcessRecord, bool) {
	parts := splitN(line, psFieldCount)
	if len(parts) < psFieldCount {
		return models.ProcessRecord{}, false
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.ProcessRecord{}, false
	}
	cpu, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return models.ProcessRecord{}, false
	}
	mem, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return models.ProcessRecord{}, false
	}

	return models.ProcessRecord{
		Command:    shortCommand(parts[10]),
		PID:        pid,
		CPUPercent: cpu,
		MemPercent: mem,
	}, true
}

// shortCommand keeps the final path segment, truncated to maxCommandLength runes.
func shortCommand(cmdline string) string {
	if i := strings.LastIndex(cmdline, "/"); i >= 0 {
		cmdline = cmdline[i+1:]
	}
	return truncate(cmdline, maxCommandLength)
}

// topProcesses sorts by CPU descending (ties keep ps order) and keeps n.
func topProcesses(procs []models.ProcessRecord, n int) []models.ProcessRecord {
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].CPUPercent > procs[j].CPUPercent
	})
	if len(procs) > n {
		procs = procs[:n]
	}
	return procs
}
