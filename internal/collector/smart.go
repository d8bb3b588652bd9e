package collector

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultInternalDevice is the boot NVMe device on Apple Silicon.
const DefaultInternalDevice = "/dev/disk0"

// NVMe data units are 1000 * 512 bytes.
const bytesPerDataUnit = 512000

const bytesPerTiB = 1 << 40

var (
	smartHealthPattern      = regexp.MustCompile(`SMART overall-health.*?:\s*(\w+)`)
	smartTemperaturePattern = regexp.MustCompile(`Temperature:\s*(\d+)\s*Celsius`)
	smartWearPattern        = regexp.MustCompile(`Percentage Used:\s*(\d+)%`)
	smartWrittenPattern     = regexp.MustCompile(`Data Units Written:\s*([\d,]+)`)
)

func smartctlArgs(device string) []string {
	return []string{"-a", device}
}

// hasSMARTData reports whether smartctl printed an attribute section. smartctl
// exits non-zero on advisory conditions, so its exit code is not consulted.
func hasSMARTData(output string) bool {
	return output != "" && strings.Contains(output, "SMART")
}

func parseSMARTHealth(output string) (string, bool) {
	return findString(smartHealthPattern, output)
}

func parseSMARTTemperature(output string) (int, bool) {
	return findInt(smartTemperaturePattern, output)
}

func parseSMARTWear(output string) (int, bool) {
	return findInt(smartWearPattern, output)
}

// parseSMARTWritten converts "Data Units Written: 12,345,678 [6.32 TB]" to TiB.
func parseSMARTWritten(output string) (float64, bool) {
	raw, ok := submatch(smartWrittenPattern, output)
	if !ok {
		return 0, false
	}
	units, err := strconv.ParseUint(strings.ReplaceAll(raw, ",", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return round(float64(units)*bytesPerDataUnit/bytesPerTiB, 1), true
}
