package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Guliveer/machealth/internal/models"
)

const dockerPSArgv = "docker ps --format {{.Names}}\t{{.Status}}\t{{.Image}}"

func TestDockerCollector_Unavailable(t *testing.T) {
	r := newFakeRunner()
	f := NewDockerCollector(r, DefaultTimeouts()).Collect(context.Background())

	assert.Equal(t, models.DockerFragment{Available: false}, f)
	assert.Equal(t, DefaultTimeouts().Availability, r.timeouts["docker info"])
	assert.Equal(t, []string{"docker info"}, r.calls)
}

func TestDockerCollector_PSFailed(t *testing.T) {
	r := newFakeRunner().ok("docker info", "Server Version: 26.1.1")
	f := NewDockerCollector(r, DefaultTimeouts()).Collect(context.Background())

	assert.Equal(t, models.DockerFragment{Available: true, Error: "docker ps failed"}, f)
}

func TestDockerCollector_Containers(t *testing.T) {
	ps := "web\tUp 2 hours (healthy)\tnginx:1.25\n" +
		"malformed line without tabs\n" +
		"db\tUp 3 days\tpostgres:16\n"
	r := newFakeRunner().
		ok("docker info", "Server Version: 26.1.1").
		ok(dockerPSArgv, ps)

	f := NewDockerCollector(r, DefaultTimeouts()).Collect(context.Background()).(models.DockerFragment)

	assert.True(t, f.Available)
	assert.Equal(t, 2, *f.RunningCount)
	assert.Equal(t, []models.Container{
		{Name: "web", Status: "Up 2 hours (healthy)", Image: "nginx:1.25"},
		{Name: "db", Status: "Up 3 days", Image: "postgres:16"},
	}, f.Containers)
}

func TestDockerCollector_NoContainers(t *testing.T) {
	r := newFakeRunner().
		ok("docker info", "Server Version: 26.1.1").
		ok(dockerPSArgv, "")

	f := NewDockerCollector(r, DefaultTimeouts()).Collect(context.Background()).(models.DockerFragment)

	assert.True(t, f.Available)
	assert.Equal(t, 0, *f.RunningCount)
	assert.Empty(t, f.Containers)
}
