package models

// Pressure is the memory pressure classification.
type Pressure string

const (
	PressureNominal  Pressure = "nominal"
	PressureWarn     Pressure = "warn"
	PressureCritical Pressure = "critical"
	PressureUnknown  Pressure = "unknown"
)

// ThermalStatus classifies the SSD temperature reading.
type ThermalStatus string

const (
	ThermalNormal   ThermalStatus = "normal"
	ThermalWarn     ThermalStatus = "warn"
	ThermalCritical ThermalStatus = "critical"
)

// CPUFragment is the output of the basic CPU collector.
type CPUFragment struct {
	UserPercent      *float64 `json:"user_percent,omitempty" yaml:"user_percent,omitempty"`
	SystemPercent    *float64 `json:"system_percent,omitempty" yaml:"system_percent,omitempty"`
	IdlePercent      *float64 `json:"idle_percent,omitempty" yaml:"idle_percent,omitempty"`
	TotalUsedPercent *float64 `json:"total_used_percent,omitempty" yaml:"total_used_percent,omitempty"`
	Error            string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// CPUDeepFragment holds per-cluster residency and power from powermetrics.
type CPUDeepFragment struct {
	EClusterActivePercent *float64 `json:"e_cluster_active_percent,omitempty" yaml:"e_cluster_active_percent,omitempty"`
	PClusterActivePercent *float64 `json:"p_cluster_active_percent,omitempty" yaml:"p_cluster_active_percent,omitempty"`
	PClusterCount         *int     `json:"p_cluster_count,omitempty" yaml:"p_cluster_count,omitempty"`
	CPUPowerMW            *float64 `json:"cpu_power_mw,omitempty" yaml:"cpu_power_mw,omitempty"`
	PackagePowerMW        *float64 `json:"package_power_mw,omitempty" yaml:"package_power_mw,omitempty"`
	Error                 string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// GPUFragment holds GPU residency, power and frequency from powermetrics.
type GPUFragment struct {
	ActivePercent *float64 `json:"active_percent,omitempty" yaml:"active_percent,omitempty"`
	IdlePercent   *float64 `json:"idle_percent,omitempty" yaml:"idle_percent,omitempty"`
	PowerMW       *int     `json:"power_mw,omitempty" yaml:"power_mw,omitempty"`
	FrequencyMHz  *int     `json:"frequency_mhz,omitempty" yaml:"frequency_mhz,omitempty"`
	Error         string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// MemoryFragment is the output of the memory collector. When vm_stat fails
// it carries TotalGB alongside Error.
type MemoryFragment struct {
	UsedGB      *float64 `json:"used_gb,omitempty" yaml:"used_gb,omitempty"`
	TotalGB     *float64 `json:"total_gb,omitempty" yaml:"total_gb,omitempty"`
	UsedPercent *float64 `json:"used_percent,omitempty" yaml:"used_percent,omitempty"`
	Pressure    Pressure `json:"pressure,omitempty" yaml:"pressure,omitempty"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// TemperatureFragment reports the SSD temperature used as a system proxy.
type TemperatureFragment struct {
	SSDCelsius *int          `json:"ssd_celsius,omitempty" yaml:"ssd_celsius,omitempty"`
	Status     ThermalStatus `json:"status,omitempty" yaml:"status,omitempty"`
	Note       string        `json:"note,omitempty" yaml:"note,omitempty"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// DiskInternalFragment merges SMART attributes and df output for the boot disk.
// Size, Used, Available and UsedPercent keep df's literal text ("460Gi", "42%").
type DiskInternalFragment struct {
	Health        string   `json:"health,omitempty" yaml:"health,omitempty"`
	WearPercent   *int     `json:"wear_percent,omitempty" yaml:"wear_percent,omitempty"`
	DataWrittenTB *float64 `json:"data_written_tb,omitempty" yaml:"data_written_tb,omitempty"`
	Size          string   `json:"size,omitempty" yaml:"size,omitempty"`
	Used          string   `json:"used,omitempty" yaml:"used,omitempty"`
	Available     string   `json:"available,omitempty" yaml:"available,omitempty"`
	UsedPercent   string   `json:"used_percent,omitempty" yaml:"used_percent,omitempty"`
	Error         string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// IsZero reports whether no field at all was populated.
func (d DiskInternalFragment) IsZero() bool {
	return d == DiskInternalFragment{}
}

// DiskRecord describes one external physical disk.
type DiskRecord struct {
	ID                 string `json:"id" yaml:"id"`
	Name               string `json:"name,omitempty" yaml:"name,omitempty"`
	Size               string `json:"size,omitempty" yaml:"size,omitempty"`
	Health             string `json:"health,omitempty" yaml:"health,omitempty"`
	TemperatureCelsius *int   `json:"temperature_celsius,omitempty" yaml:"temperature_celsius,omitempty"`
}

// Container is one running container as listed by docker ps.
type Container struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Image  string `json:"image" yaml:"image"`
}

// DockerFragment reports container runtime availability and running containers.
type DockerFragment struct {
	Available    bool        `json:"available" yaml:"available"`
	RunningCount *int        `json:"running_count,omitempty" yaml:"running_count,omitempty"`
	Containers   []Container `json:"containers,omitempty" yaml:"containers,omitempty"`
	Error        string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// ProcessRecord is one entry of the top-CPU process list.
type ProcessRecord struct {
	Command    string  `json:"command" yaml:"command"`
	PID        int     `json:"pid" yaml:"pid"`
	CPUPercent float64 `json:"cpu_percent" yaml:"cpu_percent"`
	MemPercent float64 `json:"mem_percent" yaml:"mem_percent"`
}

// HostFragment identifies the machine the report was taken on.
type HostFragment struct {
	Hostname        string   `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	OS              string   `json:"os,omitempty" yaml:"os,omitempty"`
	Platform        string   `json:"platform,omitempty" yaml:"platform,omitempty"`
	PlatformVersion string   `json:"platform_version,omitempty" yaml:"platform_version,omitempty"`
	KernelVersion   string   `json:"kernel_version,omitempty" yaml:"kernel_version,omitempty"`
	Arch            string   `json:"arch,omitempty" yaml:"arch,omitempty"`
	UptimeSeconds   *uint64  `json:"uptime_seconds,omitempty" yaml:"uptime_seconds,omitempty"`
	BootTime        string   `json:"boot_time,omitempty" yaml:"boot_time,omitempty"`
	Load1           *float64 `json:"load_1,omitempty" yaml:"load_1,omitempty"`
	Load5           *float64 `json:"load_5,omitempty" yaml:"load_5,omitempty"`
	Load15          *float64 `json:"load_15,omitempty" yaml:"load_15,omitempty"`
	Error           string   `json:"error,omitempty" yaml:"error,omitempty"`
}
