package render

import (
	"fmt"
	"strings"

	"github.com/Guliveer/machealth/internal/models"
)

const (
	maxListedContainers = 5
	maxListedProcesses  = 3

	highCPUPercent     = 90.0
	busyProcessPercent = 10.0
	gpuActivePercent   = 5.0
)

var (
	border = strings.Repeat("=", 60)
	rule   = "  " + strings.Repeat("-", 56)
)

var statusIcons = map[string]string{
	"HEALTHY":  "OK",
	"WARN":     "!!",
	"CRITICAL": "XX",
}

// table accumulates lines; row writes a labelled line padded to 20 columns.
type table struct {
	lines []string
}

func (t *table) add(format string, args ...interface{}) {
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}

func (t *table) blank() { t.lines = append(t.lines, "") }

func (t *table) section(title string) {
	t.blank()
	t.add("  %s", title)
	t.lines = append(t.lines, rule)
}

func (t *table) row(label, format string, args ...interface{}) {
	t.add("  %-20s %s", label, fmt.Sprintf(format, args...))
}

// Table formats r for humans. The result has no trailing newline.
func Table(r *models.Report) string {
	t := &table{}

	status := strings.ToUpper(string(r.Status))
	if status == "" {
		status = "UNKNOWN"
	}
	icon, ok := statusIcons[status]
	if !ok {
		icon = "??"
	}
	mode := r.Mode
	if mode == "" {
		mode = models.ModeQuick
	}
	t.lines = append(t.lines, border)
	t.add("  MAC HEALTH REPORT  [%s %s]", icon, status)
	t.add("  %s  |  mode: %s", truncate(r.Timestamp, 19), mode)
	t.lines = append(t.lines, border)

	if len(r.Warnings) > 0 {
		t.blank()
		for _, w := range r.Warnings {
			t.add("  !!  %s", w)
		}
		t.blank()
	}

	t.cpu(r)
	t.gpu(r.GPU)
	t.memory(r.Memory)
	t.temperature(r.Temperature)
	t.storage(r.DiskInternal, r.DiskExternal)
	t.docker(r.Docker)
	t.processes(r.TopProcesses)

	t.blank()
	t.lines = append(t.lines, border)
	return strings.Join(t.lines, "\n")
}

func (t *table) cpu(r *models.Report) {
	total := deref(r.CPU.TotalUsedPercent)

	t.section("CPU")
	t.row("Usage", "%6.1f%%  (user: %.0f%%, sys: %.0f%%)",
		total, deref(r.CPU.UserPercent), deref(r.CPU.SystemPercent))

	if deep := r.CPUDetailed; deep != nil && deep.EClusterActivePercent != nil {
		t.row("E-cores", "%6.1f%%", *deep.EClusterActivePercent)
		t.row("P-cores", "%6.1f%%", deref(deep.PClusterActivePercent))
		t.row("Power", "%6.1fW", deref(deep.CPUPowerMW)/1000)
	}

	if total > highCPUPercent && len(r.TopProcesses) > 0 {
		top := r.TopProcesses[0]
		t.row("Note", "High CPU from: %s (%.0f%%)", truncate(top.Command, 25), top.CPUPercent)
	}
}

func (t *table) gpu(g *models.GPUFragment) {
	if g == nil || g.ActivePercent == nil {
		return
	}
	active := *g.ActivePercent
	state := "idle"
	if active > gpuActivePercent {
		state = "active"
	}
	t.section("GPU")
	t.row("Status", "%s (%.1f%% active, %dmW, %dMHz)",
		state, active, derefInt(g.PowerMW), derefInt(g.FrequencyMHz))
}

func (t *table) memory(m models.MemoryFragment) {
	pressure := m.Pressure
	if pressure == "" {
		pressure = models.PressureUnknown
	}
	t.section("MEMORY")
	t.row("Used", "%.1f GB / %.0f GB (%.0f%%)",
		deref(m.UsedGB), deref(m.TotalGB), deref(m.UsedPercent))
	t.row("Pressure", "%s", pressure)
}

func (t *table) temperature(temp models.TemperatureFragment) {
	t.section("TEMPERATURE")
	if temp.SSDCelsius == nil {
		t.row("SSD", "unavailable")
		return
	}
	status := string(temp.Status)
	if status == "" {
		status = "unknown"
	}
	t.row("SSD", "%dC (%s)", *temp.SSDCelsius, status)
}

func (t *table) storage(d models.DiskInternalFragment, external []models.DiskRecord) {
	t.section("STORAGE")

	wear := "?"
	if d.WearPercent != nil {
		wear = fmt.Sprint(*d.WearPercent)
	}
	t.row("Internal SSD", "%s used, %s free", orUnknown(d.UsedPercent), orUnknown(d.Available))
	t.row("", "health: %s, wear: %s%%", orUnknown(d.Health), wear)

	if len(external) == 0 {
		return
	}
	t.row("External", "%d drive(s):", len(external))
	for _, disk := range external {
		name := disk.Name
		if name == "" {
			name = "unknown"
		}
		health := ""
		if disk.Health != "" {
			health = " [" + disk.Health + "]"
		}
		t.row("  -", "%s (%s)%s", truncate(name, 20), orUnknown(disk.Size), health)
	}
}

func (t *table) docker(d models.DockerFragment) {
	t.section("DOCKER")
	if !d.Available {
		t.row("Status", "not running")
		return
	}

	count := derefInt(d.RunningCount)
	if count == 0 {
		t.row("Status", "running, no containers")
		return
	}

	healthy := 0
	for _, c := range d.Containers {
		if containerHealthy(c) {
			healthy++
		}
	}
	note := ""
	if healthy > 0 {
		note = fmt.Sprintf(", %d/%d healthy", healthy, count)
	}
	t.row("Containers", "%d running%s", count, note)

	for i, c := range d.Containers {
		if i == maxListedContainers {
			break
		}
		marker := "??"
		if containerHealthy(c) {
			marker = "OK"
		}
		name := c.Name
		if name == "" {
			name = "?"
		}
		t.row("  -", "[%s] %s", marker, truncate(name, 25))
	}
}

func (t *table) processes(procs []models.ProcessRecord) {
	if len(procs) == 0 || procs[0].CPUPercent <= busyProcessPercent {
		return
	}
	t.section("TOP PROCESSES")
	for i, p := range procs {
		if i == maxListedProcesses {
			break
		}
		cmd := p.Command
		if cmd == "" {
			cmd = "?"
		}
		t.add("  %-30s %7.1f%% CPU", truncate(cmd, 30), p.CPUPercent)
	}
}

// containerHealthy matches docker's "(healthy)" suffix but not "(unhealthy)".
func containerHealthy(c models.Container) bool {
	return strings.Contains(c.Status, "healthy") && !strings.Contains(c.Status, "unhealthy")
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func orUnknown(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
