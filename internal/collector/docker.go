// Container runtime collector: probes docker and lists running containers.
package collector

import (
	"context"
	"strings"
	"time"

	"github.com/Guliveer/machealth/internal/command"
	"github.com/Guliveer/machealth/internal/models"
)

// dockerPSFormat is tab-delimited so container status text ("Up 2 hours
// (healthy)") survives splitting.
const dockerPSFormat = "{{.Names}}\t{{.Status}}\t{{.Image}}"

// DockerCollector collects container runtime status.
type DockerCollector struct {
	runner       command.Runner
	probeTimeout time.Duration
	timeout      time.Duration
}

// NewDockerCollector creates a new docker collector.
func NewDockerCollector(r command.Runner, t Timeouts) *DockerCollector {
	return &DockerCollector{runner: r, probeTimeout: t.Availability, timeout: t.Default}
}

// Name returns the collector identifier.
func (c *DockerCollector) Name() string { return "docker" }

// Collect returns a models.DockerFragment.
func (c *DockerCollector) Collect(ctx context.Context) interface{} {
	if res := c.runner.Run(ctx, c.probeTimeout, "docker", "info"); !res.OK {
		return models.DockerFragment{Available: false}
	}

	ps := c.runner.Run(ctx, c.timeout, "docker", "ps", "--format", dockerPSFormat)
	if !ps.OK {
		return models.DockerFragment{Available: true, Error: "docker ps failed"}
	}

	containers := parseContainers(ps.Output)
	return models.DockerFragment{
		Available:    true,
		RunningCount: models.Int(len(containers)),
		Containers:   containers,
	}
}

// IsAvailable returns true; an absent runtime is reported, not skipped.
func (c *DockerCollector) IsAvailable() bool { return true }

// parseContainers splits each docker ps line on tabs. Lines with fewer than
// three fields are skipped.
func parseContainers(output string) []models.Container {
	containers := make([]models.Container, 0)
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		containers = append(containers, models.Container{
			Name:   parts[0],
			Status: parts[1],
			Image:  parts[2],
		})
	}
	return containers
}
