// Package models defines the health report and the per-domain fragments the
// collectors produce. These structures are serialized to JSON and YAML by the
// render package.
//
// Optional fields are pointers (or omitempty strings) so "not found in the tool
// output" stays distinct from a measured zero.
package models

// Mode selects which collectors run.
type Mode string

const (
	ModeQuick Mode = "quick"
	ModeDeep  Mode = "deep"
)

// Status is the overall health verdict.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusWarn     Status = "warn"
	StatusCritical Status = "critical"
)

// Report is the single point-in-time health record emitted per run.
type Report struct {
	Timestamp    string               `json:"timestamp" yaml:"timestamp"`
	Mode         Mode                 `json:"mode" yaml:"mode"`
	CPU          CPUFragment          `json:"cpu" yaml:"cpu"`
	Memory       MemoryFragment       `json:"memory" yaml:"memory"`
	Temperature  TemperatureFragment  `json:"temperature" yaml:"temperature"`
	DiskInternal DiskInternalFragment `json:"disk_internal" yaml:"disk_internal"`
	DiskExternal []DiskRecord         `json:"disk_external" yaml:"disk_external"`
	Docker       DockerFragment       `json:"docker" yaml:"docker"`
	TopProcesses []ProcessRecord      `json:"top_processes" yaml:"top_processes"`
	CPUDetailed  *CPUDeepFragment     `json:"cpu_detailed,omitempty" yaml:"cpu_detailed,omitempty"`
	GPU          *GPUFragment         `json:"gpu,omitempty" yaml:"gpu,omitempty"`
	Host         *HostFragment        `json:"host,omitempty" yaml:"host,omitempty"`
	Warnings     []Warning            `json:"warnings" yaml:"warnings"`
	Status       Status               `json:"status" yaml:"status"`
}

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Uint64 returns a pointer to v.
func Uint64(v uint64) *uint64 { return &v }
