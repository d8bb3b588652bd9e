package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guliveer/machealth/internal/models"
)

func TestProcessCollector_Collect(t *testing.T) {
	r := newFakeRunner().ok("ps aux", psOutput)
	procs := NewProcessCollector(r, DefaultTimeouts(), 0).Collect(context.Background()).([]models.ProcessRecord)

	require.Len(t, procs, 4)
	assert.Equal(t, models.ProcessRecord{Command: "node server.js", PID: 2211, CPUPercent: 98.5, MemPercent: 2.0}, procs[0])
	assert.Equal(t, models.ProcessRecord{Command: "WindowServer -daemon", PID: 412, CPUPercent: 35.2, MemPercent: 1.1}, procs[1])
	assert.Equal(t, models.ProcessRecord{Command: "Google Chrome", PID: 1301, CPUPercent: 12.0, MemPercent: 4.7}, procs[2])
	assert.Equal(t, "a-very-long-process-name-excee", procs[3].Command)
}

func TestProcessCollector_TopN(t *testing.T) {
	r := newFakeRunner().ok("ps aux", psOutput)
	procs := NewProcessCollector(r, DefaultTimeouts(), 2).Collect(context.Background()).([]models.ProcessRecord)

	require.Len(t, procs, 2)
	assert.Equal(t, 2211, procs[0].PID)
	assert.Equal(t, 412, procs[1].PID)
}

func TestProcessCollector_Failure(t *testing.T) {
	procs := NewProcessCollector(newFakeRunner(), DefaultTimeouts(), 5).Collect(context.Background())
	assert.Equal(t, []models.ProcessRecord{}, procs)
}

func TestParseProcesses_HeaderOnly(t *testing.T) {
	assert.Empty(t, parseProcesses("USER PID %CPU %MEM VSZ RSS TT STAT STARTED TIME COMMAND\n"))
}

func TestTopProcesses_StableOnTies(t *testing.T) {
	procs := []models.ProcessRecord{
		{Command: "a", CPUPercent: 5},
		{Command: "b", CPUPercent: 9},
		{Command: "c", CPUPercent: 5},
	}
	got := topProcesses(procs, 5)
	assert.Equal(t, []string{"b", "a", "c"}, []string{got[0].Command, got[1].Command, got[2].Command})
}

func TestSplitN(t *testing.T) {
	tests := []struct {
		line string
		n    int
		want []string
	}{
		{"a b c", 5, []string{"a", "b", "c"}},
		{"  a   b  c d  e", 3, []string{"a", "b", "c d  e"}},
		{"a\tb\tc", 2, []string{"a", "b\tc"}},
		{"", 3, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitN(tt.line, tt.n), "line=%q", tt.line)
	}
}

func TestShortCommand(t *testing.T) {
	assert.Equal(t, "launchd", shortCommand("/sbin/launchd"))
	assert.Equal(t, "kernel_task", shortCommand("kernel_task"))
	assert.Equal(t, "héllo", shortCommand("/bin/héllo"))
}
