package collector

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// submatch returns the first capture group of re in s.
func submatch(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}

func findFloat(re *regexp.Regexp, s string) (float64, bool) {
	raw, ok := submatch(re, s)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func findInt(re *regexp.Regexp, s string) (int, bool) {
	raw, ok := submatch(re, s)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func findString(re *regexp.Regexp, s string) (string, bool) {
	raw, ok := submatch(re, s)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

// round rounds v to the given number of decimal places.
func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// splitN splits s on runs of whitespace into at most n fields. Unlike
// strings.Fields the last field keeps its inner whitespace intact.
func splitN(s string, n int) []string {
	var fields []string
	s = strings.TrimLeft(s, " \t")
	for len(fields) < n-1 && s != "" {
		i := strings.IndexAny(s, " \t")
		if i < 0 {
			break
		}
		fields = append(fields, s[:i])
		s = strings.TrimLeft(s[i:], " \t")
	}
	s = strings.TrimRight(s, " \t\r")
	if s != "" {
		fields = append(fields, s)
	}
	return fields
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
